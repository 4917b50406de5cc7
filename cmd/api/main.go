// Command api serves the CampusHub admin moderation API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"campushub/config"
	_ "campushub/docs"
	"campushub/internal/adapters/auth"
	"campushub/internal/adapters/email"
	"campushub/internal/cache"
	deliveryhttp "campushub/internal/delivery/http"
	"campushub/internal/delivery/http/controllers"
	"campushub/internal/delivery/http/middleware"
	"campushub/internal/domain"
	"campushub/internal/realtime"
	"campushub/internal/repository/mongodb"
	"campushub/internal/repository/postgres"
	"campushub/internal/services"
)

// @title CampusHub Admin API
// @version 1.0
// @description Admin moderation for colleges, users, events and sponsor ads.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// stores bundles the repositories of one storage backend.
type stores struct {
	status        domain.StatusStore
	admins        domain.AdminDirectory
	teams         domain.TeamRepository
	notifications domain.NotificationRepository
	reports       domain.ReportRepository
	close         func(context.Context) error
}

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			logger.Warn("close store", "err", err)
		}
	}()

	rdb := cache.NewClient(ctx, cfg.RedisAddr, logger)
	if rdb != nil {
		defer rdb.Close()
	}
	admins := cache.NewAdminDirectory(st.admins, rdb, cfg.AdminCacheTTL, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to load email templates", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	moderationService := services.NewModerationService(
		st.status,
		admins,
		st.teams,
		st.notifications,
		st.reports,
		realtime.NewNotifier(rdb),
		emailService,
		logger,
		cfg.ContextTimeout,
	)
	inboxService := services.NewInboxService(st.notifications, cfg.ContextTimeout)

	router := deliveryhttp.NewRouter(
		controllers.NewModerationController(logger, moderationService),
		controllers.NewInboxController(logger, inboxService),
		auth.NewJWTVerifier(cfg.JWTSecret),
		logger,
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "err", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "store", cfg.StoreDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMongo {
		db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.MongoURI, Database: cfg.MongoDatabase})
		if err != nil {
			return nil, err
		}
		logger.Info("mongo connected", "database", cfg.MongoDatabase)
		return &stores{
			status:        mongodb.NewStatusStore(db),
			admins:        mongodb.NewAdminDirectory(db),
			teams:         mongodb.NewTeamRepository(db),
			notifications: mongodb.NewNotificationRepository(db),
			reports:       mongodb.NewReportRepository(db),
			close:         func(ctx context.Context) error { return disconnect(ctx, db.Client()) },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("postgres connected")
	return &stores{
		status:        postgres.NewStatusStore(db),
		admins:        postgres.NewAdminDirectory(db),
		teams:         postgres.NewTeamRepository(db),
		notifications: postgres.NewNotificationRepository(db),
		reports:       postgres.NewReportRepository(db),
		close:         func(context.Context) error { return db.Close() },
	}, nil
}

func disconnect(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
