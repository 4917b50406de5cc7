package domain

import "slices"

// EntityKind tags a moderated collection.
type EntityKind string

const (
	KindCollege   EntityKind = "college"
	KindUser      EntityKind = "user"
	KindEvent     EntityKind = "event"
	KindSponsorAd EntityKind = "ad"
)

// Status is a lifecycle state value as stored on the record.
type Status string

// College states.
const (
	CollegePending   Status = "Pending"
	CollegeApproved  Status = "Approved"
	CollegeRejected  Status = "Rejected"
	CollegeSuspended Status = "Suspended"
)

// User states.
const (
	UserActive    Status = "active"
	UserSuspended Status = "suspended"
)

// Event states.
const (
	EventDraft     Status = "draft"
	EventPublished Status = "published"
	EventSuspended Status = "suspended"
	EventCompleted Status = "completed"
)

// SponsorAd states.
const (
	AdDrafted   Status = "Drafted"
	AdPublished Status = "Published"
	AdSuspended Status = "Suspended"
	AdExpired   Status = "Expired"
)

// Lifecycle is the fixed state machine of one entity kind.
type Lifecycle struct {
	Kind        EntityKind
	States      []Status
	transitions map[Status][]Status
}

var lifecycles = map[EntityKind]Lifecycle{
	KindCollege: {
		Kind:   KindCollege,
		States: []Status{CollegePending, CollegeApproved, CollegeRejected, CollegeSuspended},
		transitions: map[Status][]Status{
			CollegePending:   {CollegeApproved, CollegeRejected},
			CollegeApproved:  {CollegeSuspended},
			CollegeSuspended: {CollegeApproved},
		},
	},
	KindUser: {
		Kind:   KindUser,
		States: []Status{UserActive, UserSuspended},
		transitions: map[Status][]Status{
			UserActive:    {UserSuspended},
			UserSuspended: {UserActive},
		},
	},
	KindEvent: {
		Kind:   KindEvent,
		States: []Status{EventDraft, EventPublished, EventSuspended, EventCompleted},
		transitions: map[Status][]Status{
			EventDraft:     {EventPublished, EventSuspended},
			EventPublished: {EventCompleted, EventSuspended},
			// suspended -> draft only happens when a cascade restores a remembered state.
			EventSuspended: {EventPublished, EventDraft},
		},
	},
	KindSponsorAd: {
		Kind:   KindSponsorAd,
		States: []Status{AdDrafted, AdPublished, AdSuspended, AdExpired},
		transitions: map[Status][]Status{
			AdDrafted:   {AdPublished},
			AdPublished: {AdSuspended, AdExpired},
			AdSuspended: {AdPublished},
		},
	},
}

// LifecycleOf returns the state machine registered for kind.
func LifecycleOf(kind EntityKind) (Lifecycle, error) {
	l, ok := lifecycles[kind]
	if !ok {
		return Lifecycle{}, NewInvalidInput("unknown entity type %q", kind)
	}
	return l, nil
}

// Has reports whether s is a valid state of the lifecycle.
func (l Lifecycle) Has(s Status) bool {
	return slices.Contains(l.States, s)
}

// CanTransition reports whether from -> to is a registered transition.
func (l Lifecycle) CanTransition(from, to Status) bool {
	return slices.Contains(l.transitions[from], to)
}

// SourcesFor returns every state from which to is reachable, in registry order.
func (l Lifecycle) SourcesFor(to Status) ([]Status, error) {
	if !l.Has(to) {
		return nil, NewInvalidInput("unknown %s status %q", l.Kind, to)
	}
	var out []Status
	for _, s := range l.States {
		if l.CanTransition(s, to) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ParseModelType maps the admin route segment (user, event, ad) to an entity kind.
// Colleges are moderated through their own endpoints and are rejected here.
func ParseModelType(modelType string) (EntityKind, error) {
	switch EntityKind(modelType) {
	case KindUser, KindEvent, KindSponsorAd:
		return EntityKind(modelType), nil
	}
	return "", NewInvalidInput("invalid model type %q", modelType)
}
