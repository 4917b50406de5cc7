package domain

import "context"

// OutgoingEmail is a rendered message ready for delivery. HTML or Text may be empty, not both.
type OutgoingEmail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers rendered emails.
type Mailer interface {
	Send(ctx context.Context, msg OutgoingEmail) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ModerationNoticeEmailData holds data for the moderation notice email sent to a stakeholder.
type ModerationNoticeEmailData struct {
	Email      string
	Name       string
	Title      string
	Message    string
	EntityName string
	EntityKind string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendModerationNotice(ctx context.Context, data *ModerationNoticeEmailData) error
}
