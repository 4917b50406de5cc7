package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"campushub/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type kindTable struct {
	table   string
	columns string
	scan    func(rowScanner) (domain.Document, error)
}

var kindTables = map[domain.EntityKind]kindTable{
	domain.KindCollege: {
		table:   "colleges",
		columns: "id, name, code, status, approved_by, created_at, updated_at",
		scan:    scanCollege,
	},
	domain.KindUser: {
		table:   "users",
		columns: "id, name, email, role, status, college_id, created_at, updated_at",
		scan:    scanUser,
	},
	domain.KindEvent: {
		table:   "events",
		columns: "id, title, status, suspended_from, college_id, created_by, created_at, updated_at",
		scan:    scanEvent,
	},
	domain.KindSponsorAd: {
		table:   "sponsor_ads",
		columns: "id, title, sponsor_id, status, created_at, updated_at",
		scan:    scanSponsorAd,
	},
}

type statusStore struct {
	DB *sql.DB
}

// NewStatusStore returns a StatusStore over the colleges, users, events and sponsor_ads tables.
func NewStatusStore(db *sql.DB) domain.StatusStore {
	return &statusStore{
		DB: db,
	}
}

func tableFor(kind domain.EntityKind) (kindTable, error) {
	t, ok := kindTables[kind]
	if !ok {
		return kindTable{}, domain.NewInvalidInput("unknown entity kind %q", kind)
	}
	return t, nil
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

// mapError translates driver errors into domain sentinels.
func mapError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == "22P02" {
		return domain.ErrInvalidID
	}
	return err
}

func (r *statusStore) Find(ctx context.Context, kind domain.EntityKind, id string) (domain.Document, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	if err := parseID(id); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.columns, t.table)
	doc, err := t.scan(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return doc, nil
}

func (r *statusStore) CompareAndSetStatus(ctx context.Context, u domain.ConditionalUpdate) (domain.Document, error) {
	t, err := tableFor(u.Kind)
	if err != nil {
		return nil, err
	}
	if err := parseID(u.ID); err != nil {
		return nil, err
	}

	set := "status = $1, updated_at = NOW()"
	args := []any{string(u.To), u.ID, pq.Array(statusStrings(u.From))}
	switch u.Kind {
	case domain.KindCollege:
		if u.ActorID != "" {
			set += ", approved_by = $4"
			args = append(args, u.ActorID)
		}
	case domain.KindEvent:
		// SET expressions read the pre-update row.
		set = `suspended_from = CASE
				WHEN $1 <> 'suspended' THEN NULL
				WHEN status = 'suspended' THEN suspended_from
				ELSE status
			END, ` + set
	}
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE id = $2 AND status = ANY($3)
		RETURNING %s
	`, t.table, set, t.columns)

	doc, err := t.scan(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	return doc, nil
}

func (r *statusStore) SetStatusWhere(ctx context.Context, u domain.BulkStatusUpdate) (int64, error) {
	if err := parseID(u.CollegeID); err != nil {
		return 0, err
	}

	var query string
	switch {
	case u.Kind == domain.KindUser:
		query = `
			UPDATE users
			SET status = $1, updated_at = NOW()
			WHERE college_id = $2 AND status = ANY($3)
		`
	case u.Kind == domain.KindEvent && u.RememberPrior:
		query = `
			UPDATE events
			SET suspended_from = status, status = $1, updated_at = NOW()
			WHERE college_id = $2 AND status = ANY($3)
		`
	case u.Kind == domain.KindEvent && u.RestorePrior:
		query = `
			UPDATE events
			SET status = COALESCE(suspended_from, $1), suspended_from = NULL, updated_at = NOW()
			WHERE college_id = $2 AND status = ANY($3)
		`
	case u.Kind == domain.KindEvent:
		query = `
			UPDATE events
			SET status = $1, suspended_from = NULL, updated_at = NOW()
			WHERE college_id = $2 AND status = ANY($3)
		`
	default:
		return 0, domain.NewInvalidInput("bulk status update not supported for %s", u.Kind)
	}

	res, err := r.DB.ExecContext(ctx, query, string(u.To), u.CollegeID, pq.Array(statusStrings(u.From)))
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func statusStrings(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanCollege(row rowScanner) (domain.Document, error) {
	c := &domain.College{}
	var approvedBy sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Status, &approvedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if approvedBy.Valid {
		c.ApprovedBy = &approvedBy.String
	}
	return c, nil
}

func scanUser(row rowScanner) (domain.Document, error) {
	u := &domain.User{}
	var name, collegeID sql.NullString
	if err := row.Scan(&u.ID, &name, &u.Email, &u.Role, &u.Status, &collegeID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Name = name.String
	if collegeID.Valid {
		u.CollegeID = &collegeID.String
	}
	return u, nil
}

func scanEvent(row rowScanner) (domain.Document, error) {
	e := &domain.Event{}
	var suspendedFrom, collegeID, createdBy sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &e.Status, &suspendedFrom, &collegeID, &createdBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if suspendedFrom.Valid {
		prior := domain.Status(suspendedFrom.String)
		e.SuspendedFrom = &prior
	}
	if collegeID.Valid {
		e.CollegeID = &collegeID.String
	}
	if createdBy.Valid {
		e.CreatedBy = &createdBy.String
	}
	return e, nil
}

func scanSponsorAd(row rowScanner) (domain.Document, error) {
	a := &domain.SponsorAd{}
	if err := row.Scan(&a.ID, &a.Title, &a.SponsorID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}
