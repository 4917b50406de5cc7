package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"campushub/internal/domain"
)

type moderationService struct {
	store          domain.StatusStore
	teams          domain.TeamRepository
	reports        domain.ReportRepository
	emailService   domain.EmailService
	executor       *TransitionExecutor
	cascade        *CascadeOrchestrator
	resolver       *RecipientResolver
	dispatcher     *NotificationDispatcher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewModerationService wires the admin moderation core. publisher and emailService may be nil.
func NewModerationService(
	store domain.StatusStore,
	admins domain.AdminDirectory,
	teams domain.TeamRepository,
	notifications domain.NotificationRepository,
	reports domain.ReportRepository,
	publisher domain.NotificationPublisher,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ModerationService {
	return &moderationService{
		store:          store,
		teams:          teams,
		reports:        reports,
		emailService:   emailService,
		executor:       NewTransitionExecutor(store),
		cascade:        NewCascadeOrchestrator(store, logger),
		resolver:       NewRecipientResolver(admins),
		dispatcher:     NewNotificationDispatcher(notifications, publisher, logger),
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *moderationService) HandleCollegeRegistration(ctx context.Context, collegeID string, decision domain.Status, actorID string) (*domain.College, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if decision != domain.CollegeApproved && decision != domain.CollegeRejected {
		return nil, domain.NewInvalidInput("invalid status %q: must be %s or %s", decision, domain.CollegeApproved, domain.CollegeRejected)
	}

	res, err := s.executor.Transition(ctx, domain.TransitionRequest{
		Kind:    domain.KindCollege,
		ID:      collegeID,
		From:    []domain.Status{domain.CollegePending},
		To:      decision,
		ActorID: actorID,
	})
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	college, err := asCollege(res)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "college registration decided",
		"college_id", college.ID, "status", college.Status, "actor_id", actorID)
	return college, nil
}

func (s *moderationService) SuspendCollege(ctx context.Context, collegeID, actorID string) (*domain.CascadeSummary, error) {
	return s.moveCollege(ctx, collegeID, actorID, domain.CollegeApproved, domain.CollegeSuspended, domain.CascadeSuspend)
}

func (s *moderationService) UnsuspendCollege(ctx context.Context, collegeID, actorID string) (*domain.CascadeSummary, error) {
	return s.moveCollege(ctx, collegeID, actorID, domain.CollegeSuspended, domain.CollegeApproved, domain.CascadeUnsuspend)
}

// moveCollege transitions the college and then cascades. When the college is already in the
// target state the cascade still runs to repair a previously partial cascade, and the summary
// is returned together with the conflict.
func (s *moderationService) moveCollege(ctx context.Context, collegeID, actorID string, from, to domain.Status, direction domain.CascadeDirection) (*domain.CascadeSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	res, err := s.executor.Transition(ctx, domain.TransitionRequest{
		Kind:    domain.KindCollege,
		ID:      collegeID,
		From:    []domain.Status{from},
		To:      to,
		ActorID: actorID,
	})
	if err != nil {
		return nil, err
	}

	switch r := res.(type) {
	case domain.Transitioned:
		summary, err := s.runCascade(ctx, collegeID, direction)
		if err != nil {
			return summary, fmt.Errorf("college %s is %s but cascade is incomplete: %w", collegeID, to, err)
		}
		s.logger.InfoContext(ctx, "college status changed",
			"college_id", collegeID, "status", to, "actor_id", actorID)
		return summary, nil
	case domain.TransitionConflict:
		if r.Actual != to {
			return nil, r.Err()
		}
		summary, err := s.runCascade(ctx, collegeID, direction)
		if err != nil {
			return summary, errors.Join(r.Err(), fmt.Errorf("repair cascade: %w", err))
		}
		if summary.Users > 0 || summary.Events > 0 {
			s.logger.WarnContext(ctx, "repaired partial cascade",
				"college_id", collegeID, "direction", direction, "users", summary.Users, "events", summary.Events)
		}
		return summary, r.Err()
	}
	return nil, res.Err()
}

func (s *moderationService) runCascade(ctx context.Context, collegeID string, direction domain.CascadeDirection) (*domain.CascadeSummary, error) {
	counts, err := s.cascade.Cascade(ctx, collegeID, direction)
	return &domain.CascadeSummary{
		CollegeID: collegeID,
		Direction: direction,
		Users:     counts.Users,
		Events:    counts.Events,
	}, err
}

func (s *moderationService) ToggleSuspension(ctx context.Context, modelType, id, targetStatus, actorID string) (*domain.SuspensionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	target, err := targetFor(modelType)
	if err != nil {
		return nil, err
	}
	status, err := target.statusFor(targetStatus)
	if err != nil {
		return nil, err
	}

	res, err := s.executor.Overwrite(ctx, target.kind, id, status, actorID)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	doc := res.(domain.Transitioned).Document

	stakeholderID, err := target.stakeholder(ctx, s.teams, doc)
	if err != nil {
		return nil, err
	}
	recipients, err := s.resolver.Resolve(ctx, RecipientQuery{ActorID: actorID, StakeholderID: stakeholderID})
	if err != nil {
		return nil, err
	}

	kind := domain.NotificationReactivation
	action := "reactivated"
	if targetStatus == domain.TargetSuspended {
		kind = domain.NotificationSuspension
		action = "suspended"
	}
	title, body := moderationNotice(doc, action)
	n, err := s.dispatcher.Dispatch(ctx, DispatchRequest{
		Kind:       kind,
		Title:      title,
		Summary:    body,
		From:       actorID,
		Recipients: recipients.IDs,
		Subject:    domain.SubjectRef{Kind: target.kind, ID: doc.DocumentID()},
	})
	if err != nil {
		return nil, err
	}
	s.emailStakeholder(ctx, stakeholderID, doc, title, body)

	s.logger.InfoContext(ctx, "suspension toggled",
		"entity", target.kind, "id", doc.DocumentID(), "status", status, "actor_id", actorID)
	return &domain.SuspensionResult{
		Message:        fmt.Sprintf("%s status successfully updated to %s. Notification queued.", modelType, status),
		Document:       doc,
		NotificationID: n.ID,
	}, nil
}

func moderationNotice(doc domain.Document, action string) (title, body string) {
	name := doc.DisplayName()
	if action == "suspended" {
		title = fmt.Sprintf("URGENT: %s Halted", name)
	} else {
		title = fmt.Sprintf("%s is Active Again", name)
	}
	body = fmt.Sprintf("Your associated entity (%s, type: %s) has been forcibly %s by a System Administrator. Please contact the Admin for details.",
		name, doc.DocumentKind(), action)
	return title, body
}

// emailStakeholder mails the notice to the stakeholder. Failures are logged only.
func (s *moderationService) emailStakeholder(ctx context.Context, stakeholderID string, doc domain.Document, title, body string) {
	if s.emailService == nil || stakeholderID == "" {
		return
	}
	found, err := s.store.Find(ctx, domain.KindUser, stakeholderID)
	if err != nil {
		s.logger.WarnContext(ctx, "lookup stakeholder for email", "user_id", stakeholderID, "err", err)
		return
	}
	user, ok := found.(*domain.User)
	if !ok || user.Email == "" {
		return
	}
	err = s.emailService.SendModerationNotice(ctx, &domain.ModerationNoticeEmailData{
		Email:      user.Email,
		Name:       user.DisplayName(),
		Title:      title,
		Message:    body,
		EntityName: doc.DisplayName(),
		EntityKind: string(doc.DocumentKind()),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "send moderation notice", "user_id", stakeholderID, "err", err)
	}
}

func (s *moderationService) CreateReport(ctx context.Context, modelType, id, reason, reporterID string) (*domain.ReportReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewInvalidInput("a reason for the report is required")
	}
	target, err := targetFor(modelType)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Find(ctx, target.kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return nil, err
		}
		return nil, fmt.Errorf("get %s: %w", target.kind, err)
	}

	stakeholderID, err := target.stakeholder(ctx, s.teams, doc)
	if err != nil {
		return nil, err
	}
	recipients, err := s.resolver.Resolve(ctx, RecipientQuery{
		ActorID:       reporterID,
		IncludeActor:  true,
		StakeholderID: stakeholderID,
	})
	if err != nil {
		return nil, err
	}

	// Dispatch precedes the insert: every saved report references a delivered notification.
	subject := domain.SubjectRef{Kind: target.kind, ID: doc.DocumentID()}
	n, err := s.dispatcher.Dispatch(ctx, DispatchRequest{
		Kind:       domain.NotificationReport,
		Title:      fmt.Sprintf("Report Filed: %s - %s", strings.ToUpper(string(target.kind)), doc.DisplayName()),
		Summary:    "Reason: " + reason,
		From:       reporterID,
		Recipients: recipients.IDs,
		Subject:    subject,
	})
	if err != nil {
		return nil, err
	}

	report := &domain.Report{ReporterID: reporterID, Target: subject, Reason: reason, NotificationID: n.ID}
	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.ErrorContext(ctx, "report notification sent but report not saved",
			"notification_id", n.ID, "entity", target.kind, "id", doc.DocumentID(), "err", err)
		return nil, fmt.Errorf("create report: %w", err)
	}

	message := "Admins have been notified."
	if recipients.StakeholderFound {
		message = fmt.Sprintf("Admin and %s have been notified.", target.stakeholderRole)
	}
	s.logger.InfoContext(ctx, "report filed",
		"report_id", report.ID, "entity", target.kind, "id", doc.DocumentID(), "reporter_id", reporterID)
	return &domain.ReportReceipt{Message: message, ReportID: report.ID}, nil
}

func (s *moderationService) ListReports(ctx context.Context, params domain.PaginationParams) ([]*domain.Report, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.reports.List(ctx, params)
}

func asCollege(res domain.TransitionResult) (*domain.College, error) {
	t, ok := res.(domain.Transitioned)
	if !ok {
		return nil, fmt.Errorf("unexpected transition result %T", res)
	}
	college, ok := t.Document.(*domain.College)
	if !ok {
		return nil, fmt.Errorf("unexpected %T for college", t.Document)
	}
	return college, nil
}
