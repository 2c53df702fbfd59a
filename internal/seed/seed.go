// Package seed loads the initial activities and teacher accounts.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/auth"
	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/pkg/utils"
)

// Options tunes a seed run.
type Options struct {
	// BcryptCost is the hashing cost for teacher passwords; 0 uses bcrypt.DefaultCost.
	BcryptCost int
}

// Result counts what a run inserted.
type Result struct {
	Activities int
	Teachers   int
}

// Run inserts every missing seed activity and teacher. Existing records,
// including their participant lists, are left untouched, so Run is safe on every start.
func Run(ctx context.Context, store activities.Store, teacherStore auth.TeacherStore, opts Options, logger *zap.Logger) (Result, error) {
	var res Result
	for i := range Activities {
		a := Activities[i].Clone()
		err := store.CreateActivity(ctx, &a)
		switch {
		case err == nil:
			res.Activities++
		case errors.Is(err, models.ErrActivityExists):
		default:
			return res, fmt.Errorf("seed activity %q: %w", a.Name, err)
		}
	}

	for _, ts := range teachers {
		if _, err := teacherStore.GetByUsername(ctx, ts.Username); err == nil {
			continue
		} else if !errors.Is(err, models.ErrTeacherNotFound) {
			return res, fmt.Errorf("seed teacher %q: %w", ts.Username, err)
		}
		hash, err := utils.HashPassword(ts.Password, opts.BcryptCost)
		if err != nil {
			return res, fmt.Errorf("hash password for %q: %w", ts.Username, err)
		}
		err = teacherStore.Create(ctx, &models.Teacher{
			Username:     ts.Username,
			DisplayName:  ts.DisplayName,
			PasswordHash: hash,
			Role:         ts.Role,
		})
		switch {
		case err == nil:
			res.Teachers++
		case errors.Is(err, models.ErrTeacherExists):
		default:
			return res, fmt.Errorf("seed teacher %q: %w", ts.Username, err)
		}
	}

	logger.Info("seed complete", zap.Int("activities_added", res.Activities), zap.Int("teachers_added", res.Teachers))
	return res, nil
}
