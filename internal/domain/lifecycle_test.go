package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleOf(t *testing.T) {
	for _, kind := range []EntityKind{KindCollege, KindUser, KindEvent, KindSponsorAd} {
		l, err := LifecycleOf(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, l.Kind)
		assert.NotEmpty(t, l.States)
	}

	_, err := LifecycleOf("team")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestLifecycle_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		kind EntityKind
		from Status
		to   Status
		want bool
	}{
		{"college pending to approved", KindCollege, CollegePending, CollegeApproved, true},
		{"college pending to rejected", KindCollege, CollegePending, CollegeRejected, true},
		{"college approved to suspended", KindCollege, CollegeApproved, CollegeSuspended, true},
		{"college suspended to approved", KindCollege, CollegeSuspended, CollegeApproved, true},
		{"college rejected is terminal", KindCollege, CollegeRejected, CollegeApproved, false},
		{"college pending cannot be suspended", KindCollege, CollegePending, CollegeSuspended, false},
		{"user active to suspended", KindUser, UserActive, UserSuspended, true},
		{"user suspended to active", KindUser, UserSuspended, UserActive, true},
		{"event completed cannot be suspended", KindEvent, EventCompleted, EventSuspended, false},
		{"event draft to suspended", KindEvent, EventDraft, EventSuspended, true},
		{"ad expired cannot be published", KindSponsorAd, AdExpired, AdPublished, false},
		{"ad published to suspended", KindSponsorAd, AdPublished, AdSuspended, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := LifecycleOf(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.CanTransition(tt.from, tt.to))
		})
	}
}

func TestLifecycle_SourcesFor(t *testing.T) {
	l, err := LifecycleOf(KindEvent)
	require.NoError(t, err)

	sources, err := l.SourcesFor(EventSuspended)
	require.NoError(t, err)
	assert.Equal(t, []Status{EventDraft, EventPublished}, sources)

	sources, err = l.SourcesFor(EventPublished)
	require.NoError(t, err)
	assert.Equal(t, []Status{EventDraft, EventSuspended}, sources)

	_, err = l.SourcesFor("archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParseModelType(t *testing.T) {
	for _, in := range []string{"user", "event", "ad"} {
		kind, err := ParseModelType(in)
		require.NoError(t, err)
		assert.Equal(t, EntityKind(in), kind)
	}
	for _, in := range []string{"", "college", "team", "USER"} {
		_, err := ParseModelType(in)
		assert.True(t, errors.Is(err, ErrInvalidInput), in)
	}
}

func TestTransitionResult_Err(t *testing.T) {
	assert.NoError(t, Transitioned{Document: &User{ID: "u1"}}.Err())
	assert.ErrorIs(t, TransitionMissing{Kind: KindCollege, ID: "c1"}.Err(), ErrNotFound)

	err := TransitionConflict{
		Kind:     KindCollege,
		ID:       "c1",
		Actual:   CollegeApproved,
		Expected: []Status{CollegePending},
		Target:   CollegeRejected,
	}.Err()
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Approved")

	var conflict *StatusConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, CollegeApproved, conflict.Actual)

	already := TransitionConflict{Kind: KindCollege, Actual: CollegeSuspended, Target: CollegeSuspended}.Err()
	assert.Equal(t, "college is already Suspended", already.Error())
}
