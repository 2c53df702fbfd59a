// Package schedule matches activity schedules against day and time-of-day constraints.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mergington/activities/internal/models"
)

// Weekdays lists the accepted day tokens in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(Weekdays))
	for i, d := range Weekdays {
		m[d] = i
	}
	return m
}()

// Clock is a time of day in minutes after midnight.
type Clock int

// ParseClock parses "HH:MM" (24h, hour may have one digit).
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", models.ErrInvalidFilter, s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ParseDay returns the canonical token for a weekday name, case-insensitively.
func ParseDay(s string) (string, error) {
	day := cases.Title(language.English).String(strings.TrimSpace(s))
	if _, ok := weekdayIndex[day]; !ok {
		return "", fmt.Errorf("%w: unknown day %q", models.ErrInvalidFilter, s)
	}
	return day, nil
}

// Filter holds optional constraints. Zero value matches every activity.
type Filter struct {
	Day   string
	Start *Clock
	End   *Clock
}

// NewFilter validates raw query values. Empty strings mean "no constraint".
func NewFilter(day, start, end string) (Filter, error) {
	var f Filter
	if day != "" {
		d, err := ParseDay(day)
		if err != nil {
			return Filter{}, err
		}
		f.Day = d
	}
	if start != "" {
		c, err := ParseClock(start)
		if err != nil {
			return Filter{}, err
		}
		f.Start = &c
	}
	if end != "" {
		c, err := ParseClock(end)
		if err != nil {
			return Filter{}, err
		}
		f.End = &c
	}
	return f, nil
}

// IsEmpty reports whether no constraint is set.
func (f Filter) IsEmpty() bool {
	return f.Day == "" && f.Start == nil && f.End == nil
}

// String renders the constraints for logs, e.g. "day=Monday start=15:00 end=*".
func (f Filter) String() string {
	if f.IsEmpty() {
		return "none"
	}
	day := f.Day
	if day == "" {
		day = "*"
	}
	return fmt.Sprintf("day=%s start=%s end=%s", day, clockOrAny(f.Start), clockOrAny(f.End))
}

func clockOrAny(c *Clock) string {
	if c == nil {
		return "*"
	}
	return c.String()
}

// Matches reports whether the activity satisfies every set constraint.
// Activities without a fixed day or time never satisfy a constraint on it.
func (f Filter) Matches(a *models.Activity) bool {
	if f.Day != "" && !hasDay(a.ScheduleDays, f.Day) {
		return false
	}
	if f.Start != nil {
		c, ok := activityClock(a.StartTime)
		if !ok || c < *f.Start {
			return false
		}
	}
	if f.End != nil {
		c, ok := activityClock(a.EndTime)
		if !ok || c > *f.End {
			return false
		}
	}
	return true
}

// SortDays orders day tokens Monday→Sunday in place.
func SortDays(days []string) {
	sort.SliceStable(days, func(i, j int) bool {
		return weekdayIndex[days[i]] < weekdayIndex[days[j]]
	})
}

func hasDay(days []string, day string) bool {
	for _, d := range days {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}

func activityClock(s string) (Clock, bool) {
	if s == "" {
		return 0, false
	}
	c, err := ParseClock(s)
	if err != nil {
		return 0, false
	}
	return c, true
}
