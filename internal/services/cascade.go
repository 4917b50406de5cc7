package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campushub/internal/domain"
	"campushub/internal/observability"
)

// CascadeCounts is the number of users and events moved by one cascade.
type CascadeCounts struct {
	Users  int64
	Events int64
}

// CascadeOrchestrator applies a college's suspension state to its users and events.
type CascadeOrchestrator struct {
	store  domain.StatusStore
	logger *slog.Logger
}

// NewCascadeOrchestrator returns an orchestrator backed by store.
func NewCascadeOrchestrator(store domain.StatusStore, logger *slog.Logger) *CascadeOrchestrator {
	return &CascadeOrchestrator{store: store, logger: logger}
}

// cascadeSteps lists the bulk updates of each direction. Filters select only records not yet
// in the target state, so every step can be re-run safely.
func cascadeSteps(collegeID string, direction domain.CascadeDirection) ([]domain.BulkStatusUpdate, error) {
	switch direction {
	case domain.CascadeSuspend:
		return []domain.BulkStatusUpdate{
			{Kind: domain.KindUser, CollegeID: collegeID, From: []domain.Status{domain.UserActive}, To: domain.UserSuspended},
			{Kind: domain.KindEvent, CollegeID: collegeID, From: []domain.Status{domain.EventDraft, domain.EventPublished}, To: domain.EventSuspended, RememberPrior: true},
		}, nil
	case domain.CascadeUnsuspend:
		return []domain.BulkStatusUpdate{
			{Kind: domain.KindUser, CollegeID: collegeID, From: []domain.Status{domain.UserSuspended}, To: domain.UserActive},
			{Kind: domain.KindEvent, CollegeID: collegeID, From: []domain.Status{domain.EventSuspended}, To: domain.EventPublished, RestorePrior: true},
		}, nil
	}
	return nil, domain.NewInvalidInput("unknown cascade direction %q", direction)
}

// Cascade runs every step of direction for collegeID. A failed step does not stop the next one;
// the counts of the steps that succeeded are returned with the joined errors.
func (o *CascadeOrchestrator) Cascade(ctx context.Context, collegeID string, direction domain.CascadeDirection) (CascadeCounts, error) {
	steps, err := cascadeSteps(collegeID, direction)
	if err != nil {
		return CascadeCounts{}, err
	}

	var counts CascadeCounts
	var errs []error
	for _, step := range steps {
		n, err := o.store.SetStatusWhere(ctx, step)
		if err != nil {
			observability.RecordCascadeFailure(step.Kind, direction)
			o.logger.ErrorContext(ctx, "cascade step failed",
				"college_id", collegeID, "entity", step.Kind, "direction", direction, "err", err)
			errs = append(errs, fmt.Errorf("%s %ss: %w", direction, step.Kind, err))
			continue
		}
		observability.RecordCascade(step.Kind, direction, n)
		switch step.Kind {
		case domain.KindUser:
			counts.Users = n
		case domain.KindEvent:
			counts.Events = n
		}
	}
	if len(errs) > 0 {
		return counts, errors.Join(errs...)
	}
	o.logger.InfoContext(ctx, "cascade applied",
		"college_id", collegeID, "direction", direction, "users", counts.Users, "events", counts.Events)
	return counts, nil
}
