package registrations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/models"
)

func newEngine(t *testing.T, list ...models.Activity) (*Engine, activities.Store) {
	t.Helper()
	store := activities.NewMemoryStore()
	for i := range list {
		require.NoError(t, store.CreateActivity(context.Background(), &list[i]))
	}
	return NewEngine(store, zap.NewNop()), store
}

func chessClub(max int, participants ...string) models.Activity {
	return models.Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		ScheduleDays:    []string{"Monday", "Friday"},
		StartTime:       "15:15",
		EndTime:         "16:45",
		MaxParticipants: max,
		Participants:    participants,
	}
}

func participants(t *testing.T, store activities.Store, name string) []string {
	t.Helper()
	a, err := store.GetActivity(context.Background(), name)
	require.NoError(t, err)
	return a.Participants
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name          string
		activity      models.Activity
		target        string
		student       string
		authenticated bool
		wantErr       error
		wantAfter     []string
	}{
		{
			name:          "adds student",
			activity:      chessClub(12, "michael@mergington.edu"),
			target:        "Chess Club",
			student:       "emma@mergington.edu",
			authenticated: true,
			wantAfter:     []string{"michael@mergington.edu", "emma@mergington.edu"},
		},
		{
			name:          "normalizes email",
			activity:      chessClub(12),
			target:        "Chess Club",
			student:       "  Emma@Mergington.EDU ",
			authenticated: true,
			wantAfter:     []string{"emma@mergington.edu"},
		},
		{
			name:      "anonymous caller",
			activity:  chessClub(12, "michael@mergington.edu"),
			target:    "Chess Club",
			student:   "emma@mergington.edu",
			wantErr:   models.ErrUnauthorized,
			wantAfter: []string{"michael@mergington.edu"},
		},
		{
			name:          "unknown activity",
			activity:      chessClub(12),
			target:        "Underwater Basket Weaving",
			student:       "emma@mergington.edu",
			authenticated: true,
			wantErr:       models.ErrActivityNotFound,
			wantAfter:     []string{},
		},
		{
			name:          "already registered",
			activity:      chessClub(12, "michael@mergington.edu"),
			target:        "Chess Club",
			student:       "MICHAEL@mergington.edu",
			authenticated: true,
			wantErr:       models.ErrAlreadyRegistered,
			wantAfter:     []string{"michael@mergington.edu"},
		},
		{
			name:          "full",
			activity:      chessClub(1, "michael@mergington.edu"),
			target:        "Chess Club",
			student:       "emma@mergington.edu",
			authenticated: true,
			wantErr:       models.ErrCapacityExceeded,
			wantAfter:     []string{"michael@mergington.edu"},
		},
		{
			name:          "registered student of a full activity",
			activity:      chessClub(1, "michael@mergington.edu"),
			target:        "Chess Club",
			student:       "michael@mergington.edu",
			authenticated: true,
			wantErr:       models.ErrAlreadyRegistered,
			wantAfter:     []string{"michael@mergington.edu"},
		},
		{
			name:          "blank student",
			activity:      chessClub(12),
			target:        "Chess Club",
			student:       "   ",
			authenticated: true,
			wantErr:       models.ErrInvalidStudent,
			wantAfter:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := newEngine(t, tt.activity)

			a, err := e.Signup(context.Background(), tt.target, tt.student, tt.authenticated)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAfter, a.Participants)
			}
			assert.Equal(t, tt.wantAfter, participants(t, store, "Chess Club"))
		})
	}
}

func TestUnregister(t *testing.T) {
	tests := []struct {
		name          string
		activity      models.Activity
		student       string
		authenticated bool
		wantErr       error
		wantAfter     []string
	}{
		{
			name:          "removes student",
			activity:      chessClub(12, "michael@mergington.edu", "daniel@mergington.edu"),
			student:       "michael@mergington.edu",
			authenticated: true,
			wantAfter:     []string{"daniel@mergington.edu"},
		},
		{
			name:          "removes last student",
			activity:      chessClub(12, "michael@mergington.edu"),
			student:       "Michael@Mergington.edu",
			authenticated: true,
			wantAfter:     []string{},
		},
		{
			name:      "anonymous caller",
			activity:  chessClub(12, "michael@mergington.edu"),
			student:   "michael@mergington.edu",
			wantErr:   models.ErrUnauthorized,
			wantAfter: []string{"michael@mergington.edu"},
		},
		{
			name:          "not registered",
			activity:      chessClub(12, "michael@mergington.edu"),
			student:       "emma@mergington.edu",
			authenticated: true,
			wantErr:       models.ErrNotRegistered,
			wantAfter:     []string{"michael@mergington.edu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := newEngine(t, tt.activity)

			_, err := e.Unregister(context.Background(), "Chess Club", tt.student, tt.authenticated)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAfter, participants(t, store, "Chess Club"))
		})
	}
}

func TestUnregister_UnknownActivity(t *testing.T) {
	e, _ := newEngine(t, chessClub(12))
	_, err := e.Unregister(context.Background(), "Drama Club", "emma@mergington.edu", true)
	require.ErrorIs(t, err, models.ErrActivityNotFound)
}

func TestSignup_LogsSpotsLeft(t *testing.T) {
	store := activities.NewMemoryStore()
	a := chessClub(3, "michael@mergington.edu")
	require.NoError(t, store.CreateActivity(context.Background(), &a))
	core, logs := observer.New(zapcore.InfoLevel)
	e := NewEngine(store, zap.New(core))

	_, err := e.Signup(context.Background(), "Chess Club", "emma@mergington.edu", true)
	require.NoError(t, err)

	entries := logs.FilterMessage("student signed up").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["spots_left"])
}

func TestSignupUnregister_RoundTrip(t *testing.T) {
	e, store := newEngine(t, chessClub(12, "michael@mergington.edu"))
	ctx := context.Background()
	before := participants(t, store, "Chess Club")

	_, err := e.Signup(ctx, "Chess Club", "emma@mergington.edu", true)
	require.NoError(t, err)
	_, err = e.Signup(ctx, "Chess Club", "emma@mergington.edu", true)
	require.ErrorIs(t, err, models.ErrAlreadyRegistered)

	_, err = e.Unregister(ctx, "Chess Club", "emma@mergington.edu", true)
	require.NoError(t, err)
	_, err = e.Unregister(ctx, "Chess Club", "emma@mergington.edu", true)
	require.ErrorIs(t, err, models.ErrNotRegistered)

	assert.Equal(t, before, participants(t, store, "Chess Club"))
}

func TestSignup_LastSeatRace(t *testing.T) {
	for round := 0; round < 50; round++ {
		e, store := newEngine(t, chessClub(2, "michael@mergington.edu"))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = e.Signup(context.Background(), "Chess Club", fmt.Sprintf("student%d@mergington.edu", i), true)
			}(i)
		}
		wg.Wait()

		var ok, full int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, models.ErrCapacityExceeded):
				full++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, 1, full)
		require.Len(t, participants(t, store, "Chess Club"), 2)
	}
}

func TestSignup_ConcurrentDuplicate(t *testing.T) {
	e, store := newEngine(t, chessClub(30))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok int
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Signup(context.Background(), "Chess Club", "emma@mergington.edu", true)
			if err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, models.ErrAlreadyRegistered)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, []string{"emma@mergington.edu"}, participants(t, store, "Chess Club"))
}

type unavailableStore struct {
	activities.Store
}

func (unavailableStore) UpdateParticipants(ctx context.Context, _ string, _ activities.MutateFunc) (*models.Activity, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestSignup_StorageUnavailable(t *testing.T) {
	store := activities.WithTimeout(unavailableStore{}, 20*time.Millisecond)
	e := NewEngine(store, zap.NewNop())

	start := time.Now()
	_, err := e.Signup(context.Background(), "Chess Club", "emma@mergington.edu", true)
	require.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.Less(t, time.Since(start), time.Second)

	_, err = e.Unregister(context.Background(), "Chess Club", "emma@mergington.edu", true)
	require.ErrorIs(t, err, models.ErrStorageUnavailable)
}

// Random sequences of signups and unregisters never break capacity or uniqueness,
// and the participant list always matches a sequential model.
func TestEngine_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		max := rapid.IntRange(1, 5).Draw(rt, "max")
		store := activities.NewMemoryStore()
		a := chessClub(max)
		if err := store.CreateActivity(context.Background(), &a); err != nil {
			rt.Fatalf("create: %v", err)
		}
		e := NewEngine(store, zap.NewNop())
		students := []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu", "d@mergington.edu", "e@mergington.edu", "f@mergington.edu"}

		var model []string
		contains := func(s string) bool {
			for _, p := range model {
				if p == s {
					return true
				}
			}
			return false
		}

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			student := rapid.SampledFrom(students).Draw(rt, "student")
			authenticated := rapid.Bool().Draw(rt, "authenticated")
			signup := rapid.Bool().Draw(rt, "signup")

			var err error
			var want error
			if signup {
				_, err = e.Signup(context.Background(), "Chess Club", student, authenticated)
				switch {
				case !authenticated:
					want = models.ErrUnauthorized
				case contains(student):
					want = models.ErrAlreadyRegistered
				case len(model) >= max:
					want = models.ErrCapacityExceeded
				default:
					model = append(model, student)
				}
			} else {
				_, err = e.Unregister(context.Background(), "Chess Club", student, authenticated)
				switch {
				case !authenticated:
					want = models.ErrUnauthorized
				case !contains(student):
					want = models.ErrNotRegistered
				default:
					next := model[:0:0]
					for _, p := range model {
						if p != student {
							next = append(next, p)
						}
					}
					model = next
				}
			}
			if want == nil && err != nil {
				rt.Fatalf("step %d: unexpected error %v", i, err)
			}
			if want != nil && !errors.Is(err, want) {
				rt.Fatalf("step %d: got %v, want %v", i, err, want)
			}

			got, gerr := store.GetActivity(context.Background(), "Chess Club")
			if gerr != nil {
				rt.Fatalf("get: %v", gerr)
			}
			if len(got.Participants) > max {
				rt.Fatalf("capacity exceeded: %d > %d", len(got.Participants), max)
			}
			if fmt.Sprint(got.Participants) != fmt.Sprint(model) {
				rt.Fatalf("participants %v, model %v", got.Participants, model)
			}
		}
	})
}
