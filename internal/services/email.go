package services

import (
	"context"
	"fmt"
	"log/slog"

	"campushub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendModerationNotice sends a suspension or reactivation notice using the "moderation_notice" template.
func (s *emailService) SendModerationNotice(ctx context.Context, data *domain.ModerationNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("moderation notice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("moderation_notice", data)
	if err != nil {
		return fmt.Errorf("failed to render moderation_notice template: %w", err)
	}
	if err := s.mailer.Send(ctx, domain.OutgoingEmail{To: data.Email, Subject: subject, HTML: htmlBody, Text: textBody}); err != nil {
		return fmt.Errorf("failed to send moderation notice: %w", err)
	}
	s.logger.InfoContext(ctx, "moderation notice sent", "to", data.Email, "entity_kind", data.EntityKind)
	return nil
}
