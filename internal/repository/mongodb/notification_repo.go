package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campushub/internal/domain"
)

type notificationRepository struct {
	DB *mongo.Database
}

func NewNotificationRepository(db *mongo.Database) domain.NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	rec := newNotificationRecord(n)
	if _, err := r.DB.Collection(collNotifications).InsertOne(ctx, rec); err != nil {
		return err
	}
	n.ID = rec.ID.Hex()
	n.CreatedAt = rec.CreatedAt
	return nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	coll := r.DB.Collection(collNotifications)
	filter := bson.M{"recipients": userID}
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := coll.Find(ctx, filter, pageOptions(params))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	out := make([]*domain.Notification, 0)
	for cur.Next(ctx) {
		var rec notificationRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, 0, err
		}
		out = append(out, rec.toDomain())
	}
	return out, int(total), cur.Err()
}

type reportRepository struct {
	DB *mongo.Database
}

func NewReportRepository(db *mongo.Database) domain.ReportRepository {
	return &reportRepository{DB: db}
}

func (r *reportRepository) Create(ctx context.Context, rep *domain.Report) error {
	rec := newReportRecord(rep)
	if _, err := r.DB.Collection(collReports).InsertOne(ctx, rec); err != nil {
		return err
	}
	rep.ID = rec.ID.Hex()
	rep.CreatedAt = rec.CreatedAt
	return nil
}

func (r *reportRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Report, int, error) {
	coll := r.DB.Collection(collReports)
	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	cur, err := coll.Find(ctx, bson.M{}, pageOptions(params))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	out := make([]*domain.Report, 0)
	for cur.Next(ctx) {
		var rec reportRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, 0, err
		}
		out = append(out, rec.toDomain())
	}
	return out, int(total), cur.Err()
}

// pageOptions sorts newest first and applies offset pagination.
func pageOptions(params domain.PaginationParams) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.PageSize))
}
