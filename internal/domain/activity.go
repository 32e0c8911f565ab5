// Package domain defines the business logic for the extracurricular activities service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the roster.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotRegistered indicates the student is not on the activity's roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
)

// Activity describes one extracurricular offering. Participants is the
// signup-ordered list of student emails; MaxParticipants is informational
// and not enforced at signup.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Repository captures roster storage operations. Signup and Unregister are
// atomic check-then-mutate calls returning the sentinel errors above and,
// on success, a copy of the activity after the mutation.
type Repository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, email string) (Activity, error)
	Unregister(ctx context.Context, activityName, email string) (Activity, error)
}
