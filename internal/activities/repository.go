package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mergington/activities/internal/models"
)

const (
	selectActivityColumns = `SELECT name, description, schedule, schedule_days, start_time, end_time, max_participants, participants FROM activities`
	insertActivityQuery   = `INSERT INTO activities (name, description, schedule, schedule_days, start_time, end_time, max_participants, participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO NOTHING`
	updateParticipantsQuery = `UPDATE activities SET participants = $2, updated_at = NOW() WHERE name = $1`

	pgCheckViolation = "23514"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// Repository is the PostgreSQL Store.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an activities repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	var a models.Activity
	if err := row.Scan(&a.Name, &a.Description, &a.Schedule, &a.ScheduleDays, &a.StartTime, &a.EndTime, &a.MaxParticipants, &a.Participants); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActivity returns an activity by name.
func (r *Repository) GetActivity(ctx context.Context, name string) (*models.Activity, error) {
	a, err := scanActivity(r.pool.QueryRow(ctx, selectActivityColumns+` WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// ListActivities returns all activities ordered by name.
func (r *Repository) ListActivities(ctx context.Context) ([]models.Activity, error) {
	rows, err := r.pool.Query(ctx, selectActivityColumns+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []models.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

// UpdateParticipants locks the activity row, applies mutate and writes the
// result in the same transaction. Concurrent writers on one activity queue on
// the row lock; other activities are unaffected.
func (r *Repository) UpdateParticipants(ctx context.Context, name string, mutate MutateFunc) (*models.Activity, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	a, err := scanActivity(tx.QueryRow(ctx, selectActivityColumns+` WHERE name = $1 FOR UPDATE`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock activity: %w", err)
	}

	next, err := mutate(a.Clone())
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = []string{}
	}

	if _, err := tx.Exec(ctx, updateParticipantsQuery, name, next); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return nil, models.ErrCapacityExceeded
		}
		return nil, fmt.Errorf("update participants: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	a.Participants = next
	return a, nil
}

// CreateActivity validates and inserts an activity; returns ErrActivityExists when the name is taken.
func (r *Repository) CreateActivity(ctx context.Context, in *models.Activity) error {
	a, err := normalizeActivity(in)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, insertActivityQuery, a.Name, a.Description, a.Schedule, a.ScheduleDays, a.StartTime, a.EndTime, a.MaxParticipants, a.Participants)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrActivityExists
	}
	return nil
}
