package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"campushub/internal/domain"
	"campushub/internal/observability"
)

// TransitionExecutor applies compare-and-swap status transitions and classifies misses.
type TransitionExecutor struct {
	store domain.StatusStore
}

// NewTransitionExecutor returns an executor backed by store.
func NewTransitionExecutor(store domain.StatusStore) *TransitionExecutor {
	return &TransitionExecutor{store: store}
}

// Transition moves req.ID from any of req.From to req.To in a single conditional update.
// Every From -> To pair must be registered in the entity's lifecycle, except From == To which
// makes the update an idempotent overwrite.
func (e *TransitionExecutor) Transition(ctx context.Context, req domain.TransitionRequest) (domain.TransitionResult, error) {
	if err := validateTransition(req); err != nil {
		return nil, err
	}
	return e.apply(ctx, req)
}

// Overwrite sets the record to to whatever state it is in now. Only the id has to match, so
// the result is Transitioned or TransitionMissing.
func (e *TransitionExecutor) Overwrite(ctx context.Context, kind domain.EntityKind, id string, to domain.Status, actorID string) (domain.TransitionResult, error) {
	l, err := domain.LifecycleOf(kind)
	if err != nil {
		return nil, err
	}
	if !l.Has(to) {
		return nil, domain.NewInvalidInput("unknown %s status %q", kind, to)
	}
	return e.apply(ctx, domain.TransitionRequest{
		Kind:    kind,
		ID:      id,
		From:    slices.Clone(l.States),
		To:      to,
		ActorID: actorID,
	})
}

func (e *TransitionExecutor) apply(ctx context.Context, req domain.TransitionRequest) (domain.TransitionResult, error) {
	doc, err := e.store.CompareAndSetStatus(ctx, domain.ConditionalUpdate{
		Kind:    req.Kind,
		ID:      req.ID,
		From:    req.From,
		To:      req.To,
		ActorID: req.ActorID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return nil, err
		}
		return nil, fmt.Errorf("update %s status: %w", req.Kind, err)
	}
	if doc != nil {
		observability.RecordTransition(req.Kind, "updated")
		return domain.Transitioned{Document: doc}, nil
	}

	current, err := e.store.Find(ctx, req.Kind, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			observability.RecordTransition(req.Kind, "missing")
			return domain.TransitionMissing{Kind: req.Kind, ID: req.ID}, nil
		}
		if errors.Is(err, domain.ErrInvalidID) {
			return nil, err
		}
		return nil, fmt.Errorf("get %s: %w", req.Kind, err)
	}
	observability.RecordTransition(req.Kind, "conflict")
	return domain.TransitionConflict{
		Kind:     req.Kind,
		ID:       req.ID,
		Actual:   current.DocumentStatus(),
		Expected: req.From,
		Target:   req.To,
	}, nil
}

func validateTransition(req domain.TransitionRequest) error {
	l, err := domain.LifecycleOf(req.Kind)
	if err != nil {
		return err
	}
	if !l.Has(req.To) {
		return domain.NewInvalidInput("unknown %s status %q", req.Kind, req.To)
	}
	if len(req.From) == 0 {
		return domain.NewInvalidInput("no source status given for %s transition", req.Kind)
	}
	for _, from := range req.From {
		if from == req.To {
			continue
		}
		if !l.CanTransition(from, req.To) {
			return domain.NewInvalidInput("%s cannot move from %s to %s", req.Kind, from, req.To)
		}
	}
	return nil
}
