package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campushub/internal/domain"
)

type collegeRecord struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	Code       string             `bson:"code"`
	Status     string             `bson:"status"`
	ApprovedBy string             `bson:"approved_by,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *collegeRecord) toDomain() *domain.College {
	c := &domain.College{
		ID:        r.ID.Hex(),
		Name:      r.Name,
		Code:      r.Code,
		Status:    domain.Status(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.ApprovedBy != "" {
		c.ApprovedBy = &r.ApprovedBy
	}
	return c
}

type userRecord struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Name      string              `bson:"name"`
	Email     string              `bson:"email"`
	Role      string              `bson:"role"`
	Status    string              `bson:"status"`
	CollegeID *primitive.ObjectID `bson:"college_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID.Hex(),
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		Status:    domain.Status(r.Status),
		CollegeID: hexPtr(r.CollegeID),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type eventRecord struct {
	ID            primitive.ObjectID  `bson:"_id"`
	Title         string              `bson:"title"`
	Status        string              `bson:"status"`
	SuspendedFrom string              `bson:"suspended_from,omitempty"`
	CollegeID     *primitive.ObjectID `bson:"college_id,omitempty"`
	CreatedBy     *primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}

func (r *eventRecord) toDomain() *domain.Event {
	e := &domain.Event{
		ID:        r.ID.Hex(),
		Title:     r.Title,
		Status:    domain.Status(r.Status),
		CollegeID: hexPtr(r.CollegeID),
		CreatedBy: hexPtr(r.CreatedBy),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.SuspendedFrom != "" {
		prior := domain.Status(r.SuspendedFrom)
		e.SuspendedFrom = &prior
	}
	return e
}

type sponsorAdRecord struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	SponsorID primitive.ObjectID `bson:"sponsor_id"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *sponsorAdRecord) toDomain() *domain.SponsorAd {
	a := &domain.SponsorAd{
		ID:        r.ID.Hex(),
		Title:     r.Title,
		Status:    domain.Status(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if !r.SponsorID.IsZero() {
		a.SponsorID = r.SponsorID.Hex()
	}
	return a
}

type teamRecord struct {
	ID       primitive.ObjectID  `bson:"_id"`
	Name     string              `bson:"name"`
	LeaderID *primitive.ObjectID `bson:"leader_id,omitempty"`
}

func (r *teamRecord) toDomain() *domain.Team {
	return &domain.Team{ID: r.ID.Hex(), Name: r.Name, LeaderID: hexPtr(r.LeaderID)}
}

type notificationRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Kind        string             `bson:"kind"`
	Title       string             `bson:"title"`
	Summary     string             `bson:"summary"`
	From        string             `bson:"from"`
	Recipients  []string           `bson:"recipients"`
	SubjectKind string             `bson:"subject_kind"`
	SubjectID   string             `bson:"subject_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func newNotificationRecord(n *domain.Notification) *notificationRecord {
	return &notificationRecord{
		ID:          primitive.NewObjectID(),
		Kind:        string(n.Kind),
		Title:       n.Title,
		Summary:     n.Summary,
		From:        n.From,
		Recipients:  n.Recipients,
		SubjectKind: string(n.Subject.Kind),
		SubjectID:   n.Subject.ID,
		CreatedAt:   time.Now().UTC(),
	}
}

func (r *notificationRecord) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:         r.ID.Hex(),
		Kind:       domain.NotificationKind(r.Kind),
		Title:      r.Title,
		Summary:    r.Summary,
		From:       r.From,
		Recipients: r.Recipients,
		Subject:    domain.SubjectRef{Kind: domain.EntityKind(r.SubjectKind), ID: r.SubjectID},
		CreatedAt:  r.CreatedAt,
	}
}

type reportRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ReporterID string             `bson:"reporter_id"`
	TargetKind string             `bson:"target_kind"`
	TargetID   string             `bson:"target_id"`
	Reason     string             `bson:"reason"`
	// hex id of the notification document
	NotificationID string    `bson:"notification_id"`
	CreatedAt      time.Time `bson:"created_at"`
}

func newReportRecord(rep *domain.Report) *reportRecord {
	return &reportRecord{
		ID:             primitive.NewObjectID(),
		ReporterID:     rep.ReporterID,
		TargetKind:     string(rep.Target.Kind),
		TargetID:       rep.Target.ID,
		Reason:         rep.Reason,
		NotificationID: rep.NotificationID,
		CreatedAt:      time.Now().UTC(),
	}
}

func (r *reportRecord) toDomain() *domain.Report {
	return &domain.Report{
		ID:             r.ID.Hex(),
		ReporterID:     r.ReporterID,
		Target:         domain.SubjectRef{Kind: domain.EntityKind(r.TargetKind), ID: r.TargetID},
		Reason:         r.Reason,
		NotificationID: r.NotificationID,
		CreatedAt:      r.CreatedAt,
	}
}

func hexPtr(id *primitive.ObjectID) *string {
	if id == nil || id.IsZero() {
		return nil
	}
	s := id.Hex()
	return &s
}

// objectID parses a hex id, mapping malformed input to ErrInvalidID.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
