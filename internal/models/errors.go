package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when a mutation is attempted without an authenticated teacher.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned on signup of an enrolled student.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrCapacityExceeded is returned when the activity has no free seat.
	ErrCapacityExceeded = errors.New("activity is full")
	// ErrNotRegistered is returned on unregister of a student who is not enrolled.
	ErrNotRegistered = errors.New("student is not signed up for this activity")
	// ErrStorageUnavailable signals a timed out or failed persistence call. Nothing was committed.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidFilter signals a malformed day or time-of-day query parameter.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidStudent signals an empty or malformed student identifier.
	ErrInvalidStudent = errors.New("invalid student identifier")
	// ErrInvalidActivity is returned when a new activity record breaks the data-model invariants.
	ErrInvalidActivity = errors.New("invalid activity")
	// ErrActivityExists is returned when inserting an activity under a taken name.
	ErrActivityExists = errors.New("activity exists")
	// ErrTeacherNotFound is returned when no teacher has the requested username.
	ErrTeacherNotFound = errors.New("teacher not found")
	// ErrTeacherExists is returned when inserting a teacher under a taken username.
	ErrTeacherExists = errors.New("teacher exists")
)

var domainErrors = []error{
	ErrUnauthorized,
	ErrActivityNotFound,
	ErrAlreadyRegistered,
	ErrCapacityExceeded,
	ErrNotRegistered,
	ErrStorageUnavailable,
	ErrInvalidFilter,
	ErrInvalidStudent,
	ErrInvalidActivity,
	ErrActivityExists,
	ErrTeacherNotFound,
	ErrTeacherExists,
}

// StorageError passes domain errors through and wraps anything else
// (driver errors, deadline exceeded) as ErrStorageUnavailable.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	for _, d := range domainErrors {
		if errors.Is(err, d) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
