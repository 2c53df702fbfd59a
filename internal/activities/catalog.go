package activities

import (
	"context"

	"go.uber.org/zap"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/schedule"
)

// Catalog is the read side: listing, schedule filtering, day aggregation.
type Catalog struct {
	store  Store
	logger *zap.Logger
}

// NewCatalog creates a catalog over store.
func NewCatalog(store Store, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{store: store, logger: logger}
}

// List returns every activity matching f, keyed by name.
func (c *Catalog) List(ctx context.Context, f schedule.Filter) (map[string]models.ActivityView, error) {
	list, err := c.store.ListActivities(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.ActivityView, len(list))
	for i := range list {
		if !f.IsEmpty() && !f.Matches(&list[i]) {
			continue
		}
		out[list[i].Name] = list[i].ToView()
	}
	c.logger.Debug("activities listed", zap.Stringer("filter", f), zap.Int("matched", len(out)), zap.Int("total", len(list)))
	return out, nil
}

// Days returns the distinct weekday tokens used by any activity, in no particular order.
func (c *Catalog) Days(ctx context.Context) ([]string, error) {
	list, err := c.store.ListActivities(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	days := make([]string, 0, len(schedule.Weekdays))
	for _, a := range list {
		for _, d := range a.ScheduleDays {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	c.logger.Debug("activity days listed", zap.Strings("days", days))
	return days, nil
}

// Get returns one activity or ErrActivityNotFound.
func (c *Catalog) Get(ctx context.Context, name string) (*models.Activity, error) {
	return c.store.GetActivity(ctx, name)
}
