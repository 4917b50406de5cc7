package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"campushub/internal/domain"
	"campushub/internal/observability"
)

const adminIDsKey = "campushub:admins:ids"

// AdminDirectory is a cache-aside wrapper around the store's admin directory.
// Redis errors fall through to the store.
type AdminDirectory struct {
	next   domain.AdminDirectory
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewAdminDirectory wraps next. A nil client disables caching.
func NewAdminDirectory(next domain.AdminDirectory, client *redis.Client, ttl time.Duration, logger *slog.Logger) *AdminDirectory {
	return &AdminDirectory{next: next, client: client, ttl: ttl, logger: logger}
}

func (d *AdminDirectory) ListAdminIDs(ctx context.Context) ([]string, error) {
	var ids []string
	found, err := GetJSON(ctx, d.client, adminIDsKey, &ids)
	if err != nil {
		d.logger.WarnContext(ctx, "read admin directory cache", "err", err)
	}
	if found {
		observability.AdminDirectoryLookups.WithLabelValues("cache").Inc()
		return ids, nil
	}

	ids, err = d.next.ListAdminIDs(ctx)
	if err != nil {
		return nil, err
	}
	observability.AdminDirectoryLookups.WithLabelValues("store").Inc()
	if err := SetJSON(ctx, d.client, adminIDsKey, ids, d.ttl); err != nil {
		d.logger.WarnContext(ctx, "write admin directory cache", "err", err)
	}
	return ids, nil
}

// Invalidate drops the cached admin list.
func (d *AdminDirectory) Invalidate(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	return d.client.Del(ctx, adminIDsKey).Err()
}
