// Command seed fills a Postgres database with demo colleges, users, events and ads.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"campushub/config"
	"campushub/internal/cache"
	"campushub/internal/domain"
	"campushub/internal/repository/postgres"
)

type options struct {
	colleges int
	students int
	events   int
	sponsors int
	seed     int64
}

func main() {
	var opts options
	flag.IntVar(&opts.colleges, "colleges", 3, "Number of colleges to create")
	flag.IntVar(&opts.students, "students", 10, "Students per college")
	flag.IntVar(&opts.events, "events", 4, "Events per college")
	flag.IntVar(&opts.sponsors, "sponsors", 2, "Number of sponsors, each with one ad")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (0 uses the current time)")
	flag.Parse()

	logger := config.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := run(ctx, db, opts, logger); err != nil {
		logger.Error("seeding failed", "err", err)
		os.Exit(1)
	}

	// A new admin was inserted, so a cached admin list is stale.
	admins := cache.NewAdminDirectory(postgres.NewAdminDirectory(db), cache.NewClient(ctx, cfg.RedisAddr, logger), cfg.AdminCacheTTL, logger)
	if err := admins.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate admin directory cache", "err", err)
	}
}

func run(ctx context.Context, db *sql.DB, opts options, logger *slog.Logger) error {
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(opts.seed)
	s := postgres.NewSeeder(db)

	admin := &domain.User{Name: "System Admin", Email: "admin@campushub.test", Role: domain.RoleAdmin, Status: domain.UserActive}
	if err := s.InsertUser(ctx, admin); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	logger.Info("admin created", "user_id", admin.ID, "email", admin.Email)

	statuses := []domain.Status{domain.CollegeApproved, domain.CollegePending, domain.CollegeApproved}
	eventStatuses := []domain.Status{domain.EventDraft, domain.EventPublished, domain.EventPublished, domain.EventCompleted}
	for i := 0; i < opts.colleges; i++ {
		college := &domain.College{
			Name:   faker.Company() + " College",
			Code:   strings.ToUpper(faker.LetterN(4)),
			Status: statuses[i%len(statuses)],
		}
		if err := s.InsertCollege(ctx, college); err != nil {
			return fmt.Errorf("insert college: %w", err)
		}

		leader := &domain.User{
			Name: faker.Name(), Email: faker.Email(), Role: domain.RoleOrganizer,
			Status: domain.UserActive, CollegeID: &college.ID,
		}
		if err := s.InsertUser(ctx, leader); err != nil {
			return fmt.Errorf("insert organizer: %w", err)
		}
		team := &domain.Team{Name: faker.Adjective() + " " + faker.Animal() + " Club", LeaderID: &leader.ID}
		if err := s.InsertTeam(ctx, team); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}

		for j := 0; j < opts.students; j++ {
			student := &domain.User{
				Name: faker.Name(), Email: faker.Email(), Role: domain.RoleStudent,
				Status: domain.UserActive, CollegeID: &college.ID,
			}
			if err := s.InsertUser(ctx, student); err != nil {
				return fmt.Errorf("insert student: %w", err)
			}
		}
		for j := 0; j < opts.events; j++ {
			event := &domain.Event{
				Title:     faker.HipsterWord() + " " + faker.RandomString([]string{"Hackathon", "Workshop", "Meetup", "Fest"}),
				Status:    eventStatuses[j%len(eventStatuses)],
				CollegeID: &college.ID,
				CreatedBy: &team.ID,
			}
			if err := s.InsertEvent(ctx, event); err != nil {
				return fmt.Errorf("insert event: %w", err)
			}
		}
		logger.Info("college seeded",
			"college_id", college.ID, "name", college.Name, "status", college.Status,
			"students", opts.students, "events", opts.events)
	}

	for i := 0; i < opts.sponsors; i++ {
		sponsor := &domain.User{Name: faker.Company(), Email: faker.Email(), Role: domain.RoleSponsor, Status: domain.UserActive}
		if err := s.InsertUser(ctx, sponsor); err != nil {
			return fmt.Errorf("insert sponsor: %w", err)
		}
		ad := &domain.SponsorAd{
			Title:     fmt.Sprintf("%s: %s", sponsor.Name, faker.BuzzWord()),
			SponsorID: sponsor.ID,
			Status:    domain.AdPublished,
		}
		if err := s.InsertSponsorAd(ctx, ad); err != nil {
			return fmt.Errorf("insert ad: %w", err)
		}
	}

	logger.Info("seeding done", "seed", opts.seed)
	return nil
}
