package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"campushub/internal/domain"
)

const malformedID = "not-an-id"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// fakeStore implements domain.StatusStore in memory. Conditional updates are
// serialised by mu, which gives the same single-winner guarantee as the real stores.
type fakeStore struct {
	mu       sync.Mutex
	colleges map[string]*domain.College
	users    map[string]*domain.User
	events   map[string]*domain.Event
	ads      map[string]*domain.SponsorAd
	findErr  error
	casErr   error
	bulkErr  map[domain.EntityKind]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		colleges: make(map[string]*domain.College),
		users:    make(map[string]*domain.User),
		events:   make(map[string]*domain.Event),
		ads:      make(map[string]*domain.SponsorAd),
		bulkErr:  make(map[domain.EntityKind]error),
	}
}

func (f *fakeStore) lookup(kind domain.EntityKind, id string) (domain.Document, bool) {
	switch kind {
	case domain.KindCollege:
		c, ok := f.colleges[id]
		return c, ok
	case domain.KindUser:
		u, ok := f.users[id]
		return u, ok
	case domain.KindEvent:
		e, ok := f.events[id]
		return e, ok
	case domain.KindSponsorAd:
		a, ok := f.ads[id]
		return a, ok
	}
	return nil, false
}

func cloneDocument(doc domain.Document) domain.Document {
	switch d := doc.(type) {
	case *domain.College:
		cp := *d
		return &cp
	case *domain.User:
		cp := *d
		return &cp
	case *domain.Event:
		cp := *d
		return &cp
	case *domain.SponsorAd:
		cp := *d
		return &cp
	}
	panic(fmt.Sprintf("unexpected document %T", doc))
}

func (f *fakeStore) Find(ctx context.Context, kind domain.EntityKind, id string) (domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	if id == malformedID {
		return nil, domain.ErrInvalidID
	}
	doc, ok := f.lookup(kind, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (f *fakeStore) CompareAndSetStatus(ctx context.Context, u domain.ConditionalUpdate) (domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.casErr != nil {
		return nil, f.casErr
	}
	if u.ID == malformedID {
		return nil, domain.ErrInvalidID
	}
	doc, ok := f.lookup(u.Kind, u.ID)
	if !ok || !slices.Contains(u.From, doc.DocumentStatus()) {
		return nil, nil
	}
	switch d := doc.(type) {
	case *domain.College:
		d.Status = u.To
		if u.ActorID != "" {
			d.ApprovedBy = strPtr(u.ActorID)
		}
		d.UpdatedAt = time.Now()
	case *domain.User:
		d.Status = u.To
		d.UpdatedAt = time.Now()
	case *domain.Event:
		if u.To != domain.EventSuspended {
			d.SuspendedFrom = nil
		} else if d.Status != domain.EventSuspended {
			prior := d.Status
			d.SuspendedFrom = &prior
		}
		d.Status = u.To
		d.UpdatedAt = time.Now()
	case *domain.SponsorAd:
		d.Status = u.To
		d.UpdatedAt = time.Now()
	}
	return cloneDocument(doc), nil
}

func (f *fakeStore) SetStatusWhere(ctx context.Context, u domain.BulkStatusUpdate) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bulkErr[u.Kind]; err != nil {
		return 0, err
	}
	var n int64
	switch u.Kind {
	case domain.KindUser:
		for _, usr := range f.users {
			if usr.CollegeID == nil || *usr.CollegeID != u.CollegeID || !slices.Contains(u.From, usr.Status) {
				continue
			}
			usr.Status = u.To
			n++
		}
	case domain.KindEvent:
		for _, ev := range f.events {
			if ev.CollegeID == nil || *ev.CollegeID != u.CollegeID || !slices.Contains(u.From, ev.Status) {
				continue
			}
			switch {
			case u.RememberPrior:
				prior := ev.Status
				ev.SuspendedFrom = &prior
				ev.Status = u.To
			case u.RestorePrior && ev.SuspendedFrom != nil:
				ev.Status = *ev.SuspendedFrom
				ev.SuspendedFrom = nil
			default:
				ev.Status = u.To
				ev.SuspendedFrom = nil
			}
			n++
		}
	default:
		return 0, fmt.Errorf("bulk update not supported for %s", u.Kind)
	}
	return n, nil
}

// fakeAdmins implements domain.AdminDirectory.
type fakeAdmins struct {
	ids []string
	err error
}

func (f *fakeAdmins) ListAdminIDs(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.ids), nil
}

// fakeTeams implements domain.TeamRepository.
type fakeTeams struct {
	byID map[string]*domain.Team
	err  error
}

func (f *fakeTeams) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

// fakeNotifications implements domain.NotificationRepository.
type fakeNotifications struct {
	mu        sync.Mutex
	created   []*domain.Notification
	createErr error
}

func (f *fakeNotifications) Create(ctx context.Context, n *domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	n.ID = fmt.Sprintf("notification-%d", len(f.created)+1)
	n.CreatedAt = time.Now()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifications) ListByRecipient(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Notification
	for _, n := range f.created {
		if slices.Contains(n.Recipients, userID) {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

// fakeReports implements domain.ReportRepository.
type fakeReports struct {
	created   []*domain.Report
	createErr error
}

func (f *fakeReports) Create(ctx context.Context, r *domain.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = fmt.Sprintf("report-%d", len(f.created)+1)
	r.CreatedAt = time.Now()
	f.created = append(f.created, r)
	return nil
}

func (f *fakeReports) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Report, int, error) {
	return f.created, len(f.created), nil
}

// fakePublisher implements domain.NotificationPublisher.
type fakePublisher struct {
	mu       sync.Mutex
	channels []string
	err      error
}

func (f *fakePublisher) PublishUser(ctx context.Context, userID string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels = append(f.channels, userID)
	return f.err
}

// fakeEmailService implements domain.EmailService.
type fakeEmailService struct {
	sent []*domain.ModerationNoticeEmailData
	err  error
}

func (f *fakeEmailService) SendModerationNotice(ctx context.Context, data *domain.ModerationNoticeEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}
