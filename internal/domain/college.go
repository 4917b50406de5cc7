package domain

import "time"

// College is an institution whose registration is moderated by system admins.
// swagger:model College
type College struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Status     Status    `json:"status"`
	ApprovedBy *string   `json:"approved_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *College) DocumentID() string       { return c.ID }
func (c *College) DocumentKind() EntityKind { return KindCollege }
func (c *College) DocumentStatus() Status   { return c.Status }
func (c *College) DisplayName() string      { return c.Name }

// CascadeDirection selects the bulk rule applied to a college's users and events.
type CascadeDirection string

const (
	CascadeSuspend   CascadeDirection = "suspend"
	CascadeUnsuspend CascadeDirection = "unsuspend"
)

// CascadeSummary is the outcome of a college suspend or unsuspend.
// Users and Events count the dependent records moved in Direction.
type CascadeSummary struct {
	CollegeID string
	Direction CascadeDirection
	Users     int64
	Events    int64
}
