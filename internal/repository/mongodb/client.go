package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	collColleges      = "colleges"
	collUsers         = "users"
	collEvents        = "events"
	collSponsorAds    = "sponsorads"
	collTeams         = "teams"
	collNotifications = "notifications"
	collReports       = "reports"
)

// Config holds the MongoDB connection settings.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
}

// Connect dials MongoDB, pings it and returns the configured database.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database is required")
	}
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return cli.Database(cfg.Database), nil
}
