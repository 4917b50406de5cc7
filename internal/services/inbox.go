package services

import (
	"context"
	"time"

	"campushub/internal/domain"
)

type inboxService struct {
	notifications  domain.NotificationRepository
	contextTimeout time.Duration
}

// NewInboxService returns an InboxService over the notification repository.
func NewInboxService(notifications domain.NotificationRepository, timeout time.Duration) domain.InboxService {
	return &inboxService{notifications: notifications, contextTimeout: timeout}
}

func (s *inboxService) ListInbox(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, 0, domain.NewInvalidInput("user id is required")
	}
	return s.notifications.ListByRecipient(ctx, userID, params)
}
