package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campushub/internal/domain"
)

type kindCollection struct {
	name   string
	decode func(*mongo.SingleResult) (domain.Document, error)
}

var kindCollections = map[domain.EntityKind]kindCollection{
	domain.KindCollege: {name: collColleges, decode: func(res *mongo.SingleResult) (domain.Document, error) {
		var rec collegeRecord
		if err := res.Decode(&rec); err != nil {
			return nil, err
		}
		return rec.toDomain(), nil
	}},
	domain.KindUser: {name: collUsers, decode: func(res *mongo.SingleResult) (domain.Document, error) {
		var rec userRecord
		if err := res.Decode(&rec); err != nil {
			return nil, err
		}
		return rec.toDomain(), nil
	}},
	domain.KindEvent: {name: collEvents, decode: func(res *mongo.SingleResult) (domain.Document, error) {
		var rec eventRecord
		if err := res.Decode(&rec); err != nil {
			return nil, err
		}
		return rec.toDomain(), nil
	}},
	domain.KindSponsorAd: {name: collSponsorAds, decode: func(res *mongo.SingleResult) (domain.Document, error) {
		var rec sponsorAdRecord
		if err := res.Decode(&rec); err != nil {
			return nil, err
		}
		return rec.toDomain(), nil
	}},
}

type statusStore struct {
	DB *mongo.Database
}

// NewStatusStore returns a StatusStore over the colleges, users, events and sponsorads collections.
func NewStatusStore(db *mongo.Database) domain.StatusStore {
	return &statusStore{DB: db}
}

func collectionFor(kind domain.EntityKind) (kindCollection, error) {
	c, ok := kindCollections[kind]
	if !ok {
		return kindCollection{}, domain.NewInvalidInput("unknown entity kind %q", kind)
	}
	return c, nil
}

func (s *statusStore) Find(ctx context.Context, kind domain.EntityKind, id string) (domain.Document, error) {
	c, err := collectionFor(kind)
	if err != nil {
		return nil, err
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	doc, err := c.decode(s.DB.Collection(c.name).FindOne(ctx, bson.M{"_id": oid}))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *statusStore) CompareAndSetStatus(ctx context.Context, u domain.ConditionalUpdate) (domain.Document, error) {
	c, err := collectionFor(u.Kind)
	if err != nil {
		return nil, err
	}
	oid, err := objectID(u.ID)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"_id": oid, "status": bson.M{"$in": statusStrings(u.From)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	doc, err := c.decode(s.DB.Collection(c.name).FindOneAndUpdate(ctx, filter, casUpdate(u, time.Now().UTC()), opts))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// casUpdate builds the update document of a conditional status change. Events use an
// aggregation pipeline so the prior status is read from the matched document.
func casUpdate(u domain.ConditionalUpdate, now time.Time) any {
	switch u.Kind {
	case domain.KindCollege:
		set := bson.M{"status": string(u.To), "updated_at": now}
		if u.ActorID != "" {
			set["approved_by"] = u.ActorID
		}
		return bson.M{"$set": set}
	case domain.KindEvent:
		if u.To != domain.EventSuspended {
			return mongo.Pipeline{
				{{Key: "$set", Value: bson.D{{Key: "status", Value: string(u.To)}, {Key: "updated_at", Value: now}}}},
				{{Key: "$unset", Value: "suspended_from"}},
			}
		}
		return mongo.Pipeline{
			{{Key: "$set", Value: bson.D{
				{Key: "suspended_from", Value: bson.M{"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", string(domain.EventSuspended)}},
					"$suspended_from",
					"$status",
				}}},
				{Key: "status", Value: string(u.To)},
				{Key: "updated_at", Value: now},
			}}},
		}
	}
	return bson.M{"$set": bson.M{"status": string(u.To), "updated_at": now}}
}

func (s *statusStore) SetStatusWhere(ctx context.Context, u domain.BulkStatusUpdate) (int64, error) {
	oid, err := objectID(u.CollegeID)
	if err != nil {
		return 0, err
	}
	var coll string
	switch u.Kind {
	case domain.KindUser:
		coll = collUsers
	case domain.KindEvent:
		coll = collEvents
	default:
		return 0, domain.NewInvalidInput("bulk status update not supported for %s", u.Kind)
	}

	filter := bson.M{"college_id": oid, "status": bson.M{"$in": statusStrings(u.From)}}
	res, err := s.DB.Collection(coll).UpdateMany(ctx, filter, bulkUpdate(u, time.Now().UTC()))
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func bulkUpdate(u domain.BulkStatusUpdate, now time.Time) any {
	switch {
	case u.RememberPrior:
		return mongo.Pipeline{
			{{Key: "$set", Value: bson.D{
				{Key: "suspended_from", Value: "$status"},
				{Key: "status", Value: string(u.To)},
				{Key: "updated_at", Value: now},
			}}},
		}
	case u.RestorePrior:
		return mongo.Pipeline{
			{{Key: "$set", Value: bson.D{
				{Key: "status", Value: bson.M{"$ifNull": bson.A{"$suspended_from", string(u.To)}}},
				{Key: "updated_at", Value: now},
			}}},
			{{Key: "$unset", Value: "suspended_from"}},
		}
	}
	return bson.M{"$set": bson.M{"status": string(u.To), "updated_at": now}}
}

func statusStrings(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}

type adminDirectory struct {
	DB *mongo.Database
}

// NewAdminDirectory returns an AdminDirectory reading admin accounts from the users collection.
func NewAdminDirectory(db *mongo.Database) domain.AdminDirectory {
	return &adminDirectory{DB: db}
}

func (r *adminDirectory) ListAdminIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.DB.Collection(collUsers).Find(ctx, bson.M{"role": domain.RoleAdmin}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	ids := make([]string, 0)
	for cur.Next(ctx) {
		var rec struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		ids = append(ids, rec.ID.Hex())
	}
	return ids, cur.Err()
}

type teamRepository struct {
	DB *mongo.Database
}

func NewTeamRepository(db *mongo.Database) domain.TeamRepository {
	return &teamRepository{DB: db}
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var rec teamRecord
	if err := r.DB.Collection(collTeams).FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}
