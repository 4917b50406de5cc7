package services

import (
	"context"
	"errors"
	"fmt"

	"campushub/internal/domain"
)

// moderationTarget is the per-kind behaviour shared by ToggleSuspension and CreateReport.
type moderationTarget struct {
	kind            domain.EntityKind
	activeStatus    domain.Status
	suspendedStatus domain.Status
	// stakeholderRole names the stakeholder in user-facing messages.
	stakeholderRole string
	// stakeholder returns the id of the affected party, or "" when none can be resolved.
	stakeholder func(ctx context.Context, teams domain.TeamRepository, doc domain.Document) (string, error)
}

var moderationTargets = map[domain.EntityKind]moderationTarget{
	domain.KindUser: {
		kind:            domain.KindUser,
		activeStatus:    domain.UserActive,
		suspendedStatus: domain.UserSuspended,
		stakeholderRole: "User",
		stakeholder: func(_ context.Context, _ domain.TeamRepository, doc domain.Document) (string, error) {
			return doc.DocumentID(), nil
		},
	},
	domain.KindEvent: {
		kind:            domain.KindEvent,
		activeStatus:    domain.EventPublished,
		suspendedStatus: domain.EventSuspended,
		stakeholderRole: "Team Leader",
		stakeholder:     eventTeamLeader,
	},
	domain.KindSponsorAd: {
		kind:            domain.KindSponsorAd,
		activeStatus:    domain.AdPublished,
		suspendedStatus: domain.AdSuspended,
		stakeholderRole: "Sponsor",
		stakeholder: func(_ context.Context, _ domain.TeamRepository, doc domain.Document) (string, error) {
			ad, ok := doc.(*domain.SponsorAd)
			if !ok {
				return "", fmt.Errorf("unexpected %T for ad", doc)
			}
			return ad.SponsorID, nil
		},
	},
}

// targetFor resolves the admin route segment to its moderation target.
func targetFor(modelType string) (moderationTarget, error) {
	kind, err := domain.ParseModelType(modelType)
	if err != nil {
		return moderationTarget{}, err
	}
	return moderationTargets[kind], nil
}

// statusFor maps the generic toggle target (suspended, active) to the kind's stored value.
func (t moderationTarget) statusFor(targetStatus string) (domain.Status, error) {
	switch targetStatus {
	case domain.TargetSuspended:
		return t.suspendedStatus, nil
	case domain.TargetActive:
		return t.activeStatus, nil
	}
	return "", domain.NewInvalidInput("invalid targetStatus %q: must be suspended or active", targetStatus)
}

func eventTeamLeader(ctx context.Context, teams domain.TeamRepository, doc domain.Document) (string, error) {
	ev, ok := doc.(*domain.Event)
	if !ok {
		return "", fmt.Errorf("unexpected %T for event", doc)
	}
	if ev.CreatedBy == nil || *ev.CreatedBy == "" {
		return "", nil
	}
	team, err := teams.GetByID(ctx, *ev.CreatedBy)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return "", nil
		}
		return "", fmt.Errorf("get team: %w", err)
	}
	if team.LeaderID == nil {
		return "", nil
	}
	return *team.LeaderID, nil
}
