package models

import "strings"

// NormalizeStudent trims and lowercases a student email so that the same
// address cannot be enrolled twice under different casing.
func NormalizeStudent(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Activity is an extracurricular offering with a capacity-bounded participant list.
// Name is the stable key and never changes after creation.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule,omitempty"` // display text, e.g. "Mondays and Fridays, 3:15 PM - 4:45 PM"
	ScheduleDays    []string `json:"schedule_days"`
	StartTime       string   `json:"start_time,omitempty"` // "HH:MM", empty when the activity has no fixed time
	EndTime         string   `json:"end_time,omitempty"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityView is the listing shape keyed by activity name in API responses.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule,omitempty"`
	ScheduleDays    []string `json:"schedule_days"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ToView converts Activity to ActivityView.
func (a *Activity) ToView() ActivityView {
	return ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		ScheduleDays:    nonNil(a.ScheduleDays),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		MaxParticipants: a.MaxParticipants,
		Participants:    nonNil(a.Participants),
	}
}

// HasParticipant reports whether student is enrolled.
func (a *Activity) HasParticipant(student string) bool {
	for _, p := range a.Participants {
		if p == student {
			return true
		}
	}
	return false
}

// IsFull reports whether no seat is left.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// SpotsLeft returns the number of free seats.
func (a *Activity) SpotsLeft() int {
	if n := a.MaxParticipants - len(a.Participants); n > 0 {
		return n
	}
	return 0
}

// Clone returns a deep copy so callers never share slices with a store.
func (a Activity) Clone() Activity {
	a.ScheduleDays = cloneStrings(a.ScheduleDays)
	a.Participants = cloneStrings(a.Participants)
	return a
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
