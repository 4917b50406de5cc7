package services

import (
	"context"
	"errors"
	"fmt"

	"campushub/internal/domain"
)

// RecipientQuery describes who should hear about one moderation action.
type RecipientQuery struct {
	ActorID string
	// IncludeActor keeps the acting admin in the admin set.
	IncludeActor bool
	// StakeholderID is the affected non-admin party, empty when none was resolved.
	StakeholderID string
}

// Recipients is a deduplicated, non-empty recipient set.
type Recipients struct {
	IDs              []string
	StakeholderFound bool
}

// RecipientResolver computes notification recipients from the admin directory.
type RecipientResolver struct {
	admins domain.AdminDirectory
}

// NewRecipientResolver returns a resolver over admins.
func NewRecipientResolver(admins domain.AdminDirectory) *RecipientResolver {
	return &RecipientResolver{admins: admins}
}

// Resolve returns the admins (minus the actor unless q.IncludeActor) plus the stakeholder,
// in that order, without duplicates. An empty result falls back to the actor.
func (r *RecipientResolver) Resolve(ctx context.Context, q RecipientQuery) (*Recipients, error) {
	adminIDs, err := r.admins.ListAdminIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}

	seen := make(map[string]struct{}, len(adminIDs)+1)
	ids := make([]string, 0, len(adminIDs)+1)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, id := range adminIDs {
		if id == q.ActorID && !q.IncludeActor {
			continue
		}
		add(id)
	}
	add(q.StakeholderID)

	if len(ids) == 0 {
		add(q.ActorID)
	}
	if len(ids) == 0 {
		return nil, errors.New("no notification recipients could be resolved")
	}
	return &Recipients{IDs: ids, StakeholderFound: q.StakeholderID != ""}, nil
}
