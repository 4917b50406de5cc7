package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campushub/internal/domain"
)

type teamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{
		DB: db,
	}
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	query := `
		SELECT id, name, leader_id
		FROM teams
		WHERE id = $1
	`
	t := &domain.Team{}
	var leaderID sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &leaderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if leaderID.Valid {
		t.LeaderID = &leaderID.String
	}
	return t, nil
}
