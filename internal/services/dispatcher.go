package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"campushub/internal/domain"
	"campushub/internal/observability"
)

// DispatchRequest is one notification addressed to a recipient set.
type DispatchRequest struct {
	Kind       domain.NotificationKind
	Title      string
	Summary    string
	From       string
	Recipients []string
	Subject    domain.SubjectRef
}

// NotificationDispatcher persists fan-out notifications and pushes them to realtime channels.
type NotificationDispatcher struct {
	repo      domain.NotificationRepository
	publisher domain.NotificationPublisher
	logger    *slog.Logger
}

// NewNotificationDispatcher returns a dispatcher. publisher may be nil.
func NewNotificationDispatcher(repo domain.NotificationRepository, publisher domain.NotificationPublisher, logger *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{repo: repo, publisher: publisher, logger: logger}
}

// realtimePayload is the JSON pushed to each recipient channel.
type realtimePayload struct {
	Type         string                `json:"type"`
	Notification *domain.Notification `json:"notification"`
}

// Dispatch persists exactly one notification for the whole recipient set.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, req DispatchRequest) (*domain.Notification, error) {
	if len(req.Recipients) == 0 {
		return nil, domain.NewInvalidInput("notification has no recipients")
	}
	n := &domain.Notification{
		Kind:       req.Kind,
		Title:      req.Title,
		Summary:    req.Summary,
		From:       req.From,
		Recipients: req.Recipients,
		Subject:    req.Subject,
	}
	if err := d.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	observability.RecordNotification(n.Kind, len(n.Recipients))
	d.publish(ctx, n)
	return n, nil
}

func (d *NotificationDispatcher) publish(ctx context.Context, n *domain.Notification) {
	if d.publisher == nil {
		return
	}
	payload, err := json.Marshal(realtimePayload{Type: "notification", Notification: n})
	if err != nil {
		d.logger.WarnContext(ctx, "encode realtime notification", "notification_id", n.ID, "err", err)
		return
	}
	for _, userID := range n.Recipients {
		if err := d.publisher.PublishUser(ctx, userID, payload); err != nil {
			d.logger.WarnContext(ctx, "publish realtime notification",
				"notification_id", n.ID, "user_id", userID, "err", err)
		}
	}
}
