package domain

import "context"

// Target statuses accepted by the generic suspension toggle.
const (
	TargetSuspended = "suspended"
	TargetActive    = "active"
)

// SuspensionResult is returned by ToggleSuspension.
type SuspensionResult struct {
	Message        string
	Document       Document
	NotificationID string
}

// ReportReceipt is returned by CreateReport.
type ReportReceipt struct {
	Message  string `json:"message"`
	ReportID string `json:"reportId"`
}

// ModerationService is the admin moderation façade.
type ModerationService interface {
	// HandleCollegeRegistration approves or rejects a Pending college.
	HandleCollegeRegistration(ctx context.Context, collegeID string, decision Status, actorID string) (*College, error)
	// SuspendCollege suspends an Approved college and its users and events.
	// When the college is already suspended the cascade is re-applied and the
	// summary is returned together with a conflict error.
	SuspendCollege(ctx context.Context, collegeID, actorID string) (*CascadeSummary, error)
	// UnsuspendCollege restores a Suspended college and its users and events.
	UnsuspendCollege(ctx context.Context, collegeID, actorID string) (*CascadeSummary, error)
	// ToggleSuspension suspends or reactivates a single user, event or ad and notifies.
	ToggleSuspension(ctx context.Context, modelType, id, targetStatus, actorID string) (*SuspensionResult, error)
	// CreateReport files a report against a user, event or ad and notifies.
	CreateReport(ctx context.Context, modelType, id, reason, reporterID string) (*ReportReceipt, error)
	// ListReports returns filed reports, newest first.
	ListReports(ctx context.Context, params PaginationParams) ([]*Report, int, error)
}

// InboxService lists notifications addressed to a user.
type InboxService interface {
	ListInbox(ctx context.Context, userID string, params PaginationParams) ([]*Notification, int, error)
}
