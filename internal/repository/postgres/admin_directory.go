package postgres

import (
	"context"
	"database/sql"

	"campushub/internal/domain"
)

type adminDirectory struct {
	DB *sql.DB
}

// NewAdminDirectory returns an AdminDirectory reading admin accounts from the users table.
func NewAdminDirectory(db *sql.DB) domain.AdminDirectory {
	return &adminDirectory{
		DB: db,
	}
}

func (r *adminDirectory) ListAdminIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT id
		FROM users
		WHERE role = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
