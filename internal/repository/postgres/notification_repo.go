package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"campushub/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (kind, title, summary, from_user_id, recipients, subject_kind, subject_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		string(n.Kind), n.Title, n.Summary, n.From, pq.Array(n.Recipients), string(n.Subject.Kind), n.Subject.ID,
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE $1 = ANY(recipients)`, userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, kind, title, summary, from_user_id, recipients, subject_kind, subject_id, created_at
		FROM notifications
		WHERE $1 = ANY(recipients)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.Kind, &n.Title, &n.Summary, &n.From, pq.Array(&n.Recipients),
			&n.Subject.Kind, &n.Subject.ID, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}
