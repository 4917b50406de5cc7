package domain

import (
	"context"
	"time"
)

// Event is a college event created by an organizer team.
// SuspendedFrom holds the state the event had before it was suspended.
// swagger:model Event
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Status        Status    `json:"status"`
	SuspendedFrom *Status   `json:"suspended_from,omitempty"`
	CollegeID     *string   `json:"college_id,omitempty"`
	CreatedBy     *string   `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e *Event) DocumentID() string       { return e.ID }
func (e *Event) DocumentKind() EntityKind { return KindEvent }
func (e *Event) DocumentStatus() Status   { return e.Status }

// DisplayName returns the title, or the id for untitled events.
func (e *Event) DisplayName() string {
	if e.Title != "" {
		return e.Title
	}
	return e.ID
}

// SponsorAd is an advertisement published by a sponsor account.
// swagger:model SponsorAd
type SponsorAd struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	SponsorID string    `json:"sponsor_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *SponsorAd) DocumentID() string       { return a.ID }
func (a *SponsorAd) DocumentKind() EntityKind { return KindSponsorAd }
func (a *SponsorAd) DocumentStatus() Status   { return a.Status }

func (a *SponsorAd) DisplayName() string {
	if a.Title != "" {
		return a.Title
	}
	return a.ID
}

// Team is an organizer team; its leader is the stakeholder of the team's events.
// swagger:model Team
type Team struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LeaderID *string `json:"leader_id,omitempty"`
}

// TeamRepository is a read-only lookup of organizer teams.
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (*Team, error)
}
