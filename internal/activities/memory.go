package activities

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mergington/activities/internal/models"
)

// memoryEntry holds the latest committed snapshot of one activity. Writers
// serialize on lock; readers load the snapshot without waiting.
type memoryEntry struct {
	lock chan struct{}
	snap atomic.Pointer[models.Activity]
}

// MemoryStore is an in-process Store for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

// NewMemoryStore creates an empty in-memory activity store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) entry(name string) (*memoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	return e, ok
}

// GetActivity returns a copy of the activity.
func (s *MemoryStore) GetActivity(ctx context.Context, name string) (*models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s.entry(name)
	if !ok {
		return nil, models.ErrActivityNotFound
	}
	a := e.snap.Load().Clone()
	return &a, nil
}

// ListActivities returns copies of all activities ordered by name.
func (s *MemoryStore) ListActivities(ctx context.Context) ([]models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	list := make([]models.Activity, 0, len(s.entries))
	for _, e := range s.entries {
		list = append(list, e.snap.Load().Clone())
	}
	s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// UpdateParticipants applies mutate under the activity's lock. Waiting for the
// lock honours ctx so a stuck writer cannot hang callers.
func (s *MemoryStore) UpdateParticipants(ctx context.Context, name string, mutate MutateFunc) (*models.Activity, error) {
	e, ok := s.entry(name)
	if !ok {
		return nil, models.ErrActivityNotFound
	}
	select {
	case e.lock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-e.lock }()
	// The lock can win the select against an already expired ctx.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current := e.snap.Load().Clone()
	next, err := mutate(current.Clone())
	if err != nil {
		return nil, err
	}
	if len(next) > current.MaxParticipants {
		return nil, models.ErrCapacityExceeded
	}
	current.Participants = append(make([]string, 0, len(next)), next...)
	e.snap.Store(&current)

	out := current.Clone()
	return &out, nil
}

// CreateActivity validates and inserts a new activity; the name must be free.
func (s *MemoryStore) CreateActivity(ctx context.Context, a *models.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored, err := normalizeActivity(a)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[stored.Name]; ok {
		return models.ErrActivityExists
	}
	e := &memoryEntry{lock: make(chan struct{}, 1)}
	e.snap.Store(&stored)
	s.entries[stored.Name] = e
	return nil
}
