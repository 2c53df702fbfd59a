// Package registrations applies signup and unregister mutations to activity participant lists.
package registrations

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/models"
)

// Engine validates registration changes against the capacity and duplicate
// rules. It keeps no state between calls: every mutation re-reads the record
// inside the store's atomic update.
type Engine struct {
	store  activities.Store
	logger *zap.Logger
}

// NewEngine creates a registration engine.
func NewEngine(store activities.Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, logger: logger}
}

// Signup enrolls student in the activity.
func (e *Engine) Signup(ctx context.Context, activity, student string, authenticated bool) (*models.Activity, error) {
	if !authenticated {
		return nil, models.ErrUnauthorized
	}
	student = models.NormalizeStudent(student)
	if student == "" {
		return nil, models.ErrInvalidStudent
	}

	a, err := e.store.UpdateParticipants(ctx, activity, func(cur models.Activity) ([]string, error) {
		if cur.HasParticipant(student) {
			return nil, models.ErrAlreadyRegistered
		}
		if cur.IsFull() {
			return nil, models.ErrCapacityExceeded
		}
		return append(cur.Participants, student), nil
	})
	if err != nil {
		e.logRejected("signup", activity, student, err)
		return nil, err
	}

	e.logger.Info("student signed up",
		zap.String("activity", activity),
		zap.String("student", student),
		zap.Int("participants", len(a.Participants)),
		zap.Int("spots_left", a.SpotsLeft()),
	)
	return a, nil
}

// Unregister removes student from the activity.
func (e *Engine) Unregister(ctx context.Context, activity, student string, authenticated bool) (*models.Activity, error) {
	if !authenticated {
		return nil, models.ErrUnauthorized
	}
	student = models.NormalizeStudent(student)
	if student == "" {
		return nil, models.ErrInvalidStudent
	}

	a, err := e.store.UpdateParticipants(ctx, activity, func(cur models.Activity) ([]string, error) {
		if !cur.HasParticipant(student) {
			return nil, models.ErrNotRegistered
		}
		next := make([]string, 0, len(cur.Participants)-1)
		for _, p := range cur.Participants {
			if p != student {
				next = append(next, p)
			}
		}
		return next, nil
	})
	if err != nil {
		e.logRejected("unregister", activity, student, err)
		return nil, err
	}

	e.logger.Info("student unregistered",
		zap.String("activity", activity),
		zap.String("student", student),
		zap.Int("participants", len(a.Participants)),
		zap.Int("spots_left", a.SpotsLeft()),
	)
	return a, nil
}

func (e *Engine) logRejected(op, activity, student string, err error) {
	if errors.Is(err, models.ErrStorageUnavailable) {
		e.logger.Error(op+" failed", zap.String("activity", activity), zap.String("student", student), zap.Error(err))
		return
	}
	e.logger.Debug(op+" rejected", zap.String("activity", activity), zap.String("student", student), zap.Error(err))
}
