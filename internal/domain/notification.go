package domain

import (
	"context"
	"time"
)

// NotificationKind classifies inbox entries created by moderation actions.
type NotificationKind string

const (
	NotificationSuspension   NotificationKind = "suspension_notice"
	NotificationReactivation NotificationKind = "reactivation_notice"
	NotificationReport       NotificationKind = "report"
)

// SubjectRef points at the record a notification or report is about.
type SubjectRef struct {
	Kind EntityKind `json:"kind"`
	ID   string     `json:"id"`
}

// Notification is a single inbox entry addressed to a deduplicated recipient set.
// swagger:model Notification
type Notification struct {
	ID         string           `json:"id"`
	Kind       NotificationKind `json:"kind"`
	Title      string           `json:"title"`
	Summary    string           `json:"summary"`
	From       string           `json:"from"`
	Recipients []string         `json:"recipients"`
	Subject    SubjectRef       `json:"subject"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NotificationRepository persists notifications. Create sets ID and CreatedAt.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, userID string, params PaginationParams) ([]*Notification, int, error)
}

// NotificationPublisher pushes a payload to a user's realtime channel.
type NotificationPublisher interface {
	PublishUser(ctx context.Context, userID string, payload []byte) error
}

// Report is an admin-filed complaint about a user, event or ad.
// swagger:model Report
type Report struct {
	ID         string     `json:"id"`
	ReporterID string     `json:"reporter_id"`
	Target     SubjectRef `json:"target"`
	Reason     string     `json:"reason"`
	// NotificationID is the inbox entry sent out when the report was filed.
	NotificationID string    `json:"notification_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReportRepository persists reports. Create sets ID and CreatedAt.
type ReportRepository interface {
	Create(ctx context.Context, r *Report) error
	List(ctx context.Context, params PaginationParams) ([]*Report, int, error)
}
