package postgres

import (
	"context"
	"database/sql"

	"campushub/internal/domain"
)

type reportRepository struct {
	DB *sql.DB
}

func NewReportRepository(db *sql.DB) domain.ReportRepository {
	return &reportRepository{
		DB: db,
	}
}

func (r *reportRepository) Create(ctx context.Context, rep *domain.Report) error {
	query := `
		INSERT INTO reports (reporter_id, target_kind, target_id, reason, notification_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		rep.ReporterID, string(rep.Target.Kind), rep.Target.ID, rep.Reason, rep.NotificationID,
	).Scan(&rep.ID, &rep.CreatedAt)
}

func (r *reportRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Report, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, reporter_id, target_kind, target_id, reason, notification_id, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]*domain.Report, 0)
	for rows.Next() {
		rep := &domain.Report{}
		if err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.Target.Kind, &rep.Target.ID, &rep.Reason, &rep.NotificationID, &rep.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, rep)
	}
	return out, total, rows.Err()
}
