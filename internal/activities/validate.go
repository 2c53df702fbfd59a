package activities

import (
	"fmt"
	"strings"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/schedule"
)

// normalizeActivity checks a new record against the activity invariants and
// returns a copy with canonical day tokens, clock times and student identifiers.
func normalizeActivity(in *models.Activity) (models.Activity, error) {
	a := in.Clone()
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return a, invalid("name is required")
	}
	if a.MaxParticipants <= 0 {
		return a, invalid("max_participants must be positive, got %d", a.MaxParticipants)
	}
	if len(a.Participants) > a.MaxParticipants {
		return a, invalid("%d participants exceed max_participants %d", len(a.Participants), a.MaxParticipants)
	}

	seenDays := make(map[string]bool, len(a.ScheduleDays))
	for i, d := range a.ScheduleDays {
		day, err := schedule.ParseDay(d)
		if err != nil {
			return a, invalid("schedule day %q", d)
		}
		if seenDays[day] {
			return a, invalid("schedule day %q listed twice", day)
		}
		seenDays[day] = true
		a.ScheduleDays[i] = day
	}

	var err error
	var start, end schedule.Clock
	if a.StartTime, start, err = canonicalClock(a.StartTime); err != nil {
		return a, err
	}
	if a.EndTime, end, err = canonicalClock(a.EndTime); err != nil {
		return a, err
	}
	if a.StartTime != "" && a.EndTime != "" && end < start {
		return a, invalid("end_time %s is before start_time %s", a.EndTime, a.StartTime)
	}

	seen := make(map[string]bool, len(a.Participants))
	for i, p := range a.Participants {
		student := models.NormalizeStudent(p)
		if student == "" {
			return a, invalid("empty participant")
		}
		if seen[student] {
			return a, invalid("participant %q listed twice", student)
		}
		seen[student] = true
		a.Participants[i] = student
	}
	return a, nil
}

func canonicalClock(s string) (string, schedule.Clock, error) {
	if strings.TrimSpace(s) == "" {
		return "", 0, nil
	}
	c, err := schedule.ParseClock(s)
	if err != nil {
		return "", 0, invalid("time %q must be HH:MM", s)
	}
	return c.String(), c, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{models.ErrInvalidActivity}, args...)...)
}
