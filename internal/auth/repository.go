package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mergington/activities/internal/models"
)

// TeacherStore looks up and provisions teacher accounts.
type TeacherStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
	Create(ctx context.Context, t *models.Teacher) error
}

// Repository handles teacher persistence in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an auth repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByUsername returns a teacher by username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	const q = `SELECT username, display_name, password_hash, role FROM teachers WHERE username = $1`
	var t models.Teacher
	err := r.pool.QueryRow(ctx, q, username).Scan(&t.Username, &t.DisplayName, &t.PasswordHash, &t.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return &t, nil
}

// Create inserts a teacher; returns ErrTeacherExists when the username is taken.
func (r *Repository) Create(ctx context.Context, t *models.Teacher) error {
	const q = `INSERT INTO teachers (username, display_name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING`
	tag, err := r.pool.Exec(ctx, q, t.Username, t.DisplayName, t.PasswordHash, string(t.Role))
	if err != nil {
		return fmt.Errorf("insert teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrTeacherExists
	}
	return nil
}

// MemoryRepository is an in-process TeacherStore.
type MemoryRepository struct {
	mu       sync.RWMutex
	teachers map[string]models.Teacher
}

// NewMemoryRepository creates an empty in-memory teacher store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{teachers: make(map[string]models.Teacher)}
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.teachers[username]
	if !ok {
		return nil, models.ErrTeacherNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Create(_ context.Context, t *models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teachers[t.Username]; ok {
		return models.ErrTeacherExists
	}
	r.teachers[t.Username] = *t
	return nil
}
