package domain

import "context"

// Document is implemented by every moderated record (*College, *User, *Event, *SponsorAd).
type Document interface {
	DocumentID() string
	DocumentKind() EntityKind
	DocumentStatus() Status
	DisplayName() string
}

// ConditionalUpdate sets Kind/ID to To only if its current status is one of From.
// ActorID is written as the approving admin on colleges and ignored elsewhere.
type ConditionalUpdate struct {
	Kind    EntityKind
	ID      string
	From    []Status
	To      Status
	ActorID string
}

// BulkStatusUpdate moves every record of Kind owned by CollegeID whose status is in From to To.
// With RememberPrior the previous status is recorded on the record; with RestorePrior the
// recorded status wins over To and is cleared. Only events keep a prior status.
type BulkStatusUpdate struct {
	Kind          EntityKind
	CollegeID     string
	From          []Status
	To            Status
	RememberPrior bool
	RestorePrior  bool
}

// StatusStore is the document store consumed by the moderation core.
type StatusStore interface {
	// Find returns the record, ErrNotFound when absent, or ErrInvalidID for a malformed id.
	Find(ctx context.Context, kind EntityKind, id string) (Document, error)
	// CompareAndSetStatus applies u atomically and returns the updated record.
	// It returns (nil, nil) when no record matched the id and status filter.
	CompareAndSetStatus(ctx context.Context, u ConditionalUpdate) (Document, error)
	// SetStatusWhere applies u as one bulk update and returns the number of modified records.
	SetStatusWhere(ctx context.Context, u BulkStatusUpdate) (int64, error)
}

// TransitionRequest asks the executor to move one record from any of From to To.
type TransitionRequest struct {
	Kind    EntityKind
	ID      string
	From    []Status
	To      Status
	ActorID string
}

// TransitionResult is one of Transitioned, TransitionMissing or TransitionConflict.
type TransitionResult interface {
	// Err is nil for Transitioned, ErrNotFound for TransitionMissing and a
	// *StatusConflictError for TransitionConflict.
	Err() error
	transitionResult()
}

// Transitioned carries the record after a successful transition.
type Transitioned struct {
	Document Document
}

// TransitionMissing means no record exists for the requested id.
type TransitionMissing struct {
	Kind EntityKind
	ID   string
}

// TransitionConflict means the record exists in a state outside the requested sources.
type TransitionConflict struct {
	Kind     EntityKind
	ID       string
	Actual   Status
	Expected []Status
	Target   Status
}

func (Transitioned) Err() error { return nil }

func (TransitionMissing) Err() error { return ErrNotFound }

func (c TransitionConflict) Err() error {
	return &StatusConflictError{Kind: c.Kind, ID: c.ID, Actual: c.Actual, Expected: c.Expected, Target: c.Target}
}

func (Transitioned) transitionResult()       {}
func (TransitionMissing) transitionResult()  {}
func (TransitionConflict) transitionResult() {}
