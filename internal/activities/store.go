// Package activities serves the read side of the activity catalog and owns activity persistence.
package activities

import (
	"context"
	"time"

	"github.com/mergington/activities/internal/models"
)

// MutateFunc computes the next participant list from the current record.
// Returning an error aborts the update and leaves the record unchanged.
type MutateFunc func(current models.Activity) ([]string, error)

// Store is the persistence contract for activities. UpdateParticipants must run
// mutate and write its result as one atomic unit per activity.
type Store interface {
	GetActivity(ctx context.Context, name string) (*models.Activity, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	UpdateParticipants(ctx context.Context, name string, mutate MutateFunc) (*models.Activity, error)
	CreateActivity(ctx context.Context, a *models.Activity) error
}

// timeoutStore bounds every call with a deadline and reports driver failures as ErrStorageUnavailable.
type timeoutStore struct {
	next    Store
	timeout time.Duration
}

// WithTimeout wraps a store so that no call outlives timeout.
func WithTimeout(next Store, timeout time.Duration) Store {
	return &timeoutStore{next: next, timeout: timeout}
}

func (s *timeoutStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *timeoutStore) GetActivity(ctx context.Context, name string) (*models.Activity, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	a, err := s.next.GetActivity(ctx, name)
	return a, models.StorageError(err)
}

func (s *timeoutStore) ListActivities(ctx context.Context) ([]models.Activity, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	list, err := s.next.ListActivities(ctx)
	return list, models.StorageError(err)
}

func (s *timeoutStore) UpdateParticipants(ctx context.Context, name string, mutate MutateFunc) (*models.Activity, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	a, err := s.next.UpdateParticipants(ctx, name, mutate)
	return a, models.StorageError(err)
}

func (s *timeoutStore) CreateActivity(ctx context.Context, a *models.Activity) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return models.StorageError(s.next.CreateActivity(ctx, a))
}
