package postgres

import (
	"context"
	"database/sql"

	"campushub/internal/domain"
)

// Seeder inserts fixture records for local development. It is used by cmd/seed only.
type Seeder struct {
	DB *sql.DB
}

func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{DB: db}
}

func (s *Seeder) InsertCollege(ctx context.Context, c *domain.College) error {
	query := `
		INSERT INTO colleges (name, code, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return s.DB.QueryRowContext(ctx, query, c.Name, c.Code, string(c.Status)).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (s *Seeder) InsertUser(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (name, email, role, status, college_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return s.DB.QueryRowContext(ctx, query, u.Name, u.Email, u.Role, string(u.Status), nullString(u.CollegeID)).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (s *Seeder) InsertTeam(ctx context.Context, t *domain.Team) error {
	query := `
		INSERT INTO teams (name, leader_id)
		VALUES ($1, $2)
		RETURNING id
	`
	return s.DB.QueryRowContext(ctx, query, t.Name, nullString(t.LeaderID)).Scan(&t.ID)
}

func (s *Seeder) InsertEvent(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, status, college_id, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return s.DB.QueryRowContext(ctx, query, e.Title, string(e.Status), nullString(e.CollegeID), nullString(e.CreatedBy)).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (s *Seeder) InsertSponsorAd(ctx context.Context, a *domain.SponsorAd) error {
	query := `
		INSERT INTO sponsor_ads (title, sponsor_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return s.DB.QueryRowContext(ctx, query, a.Title, a.SponsorID, string(a.Status)).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
