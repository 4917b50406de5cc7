// Package realtime publishes inbox updates to per-user Redis channels.
package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// UserChannel is the pub/sub channel of one user.
func UserChannel(userID string) string {
	return "notifications:user:" + userID
}

// Notifier publishes notification payloads into Redis channels.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier returns a Notifier. A nil client makes every publish a no-op.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends payload to the user's channel.
func (n *Notifier) PublishUser(ctx context.Context, userID string, payload []byte) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}
