// Package registry stores the activity roster in memory.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// InMemoryStore holds the activity roster for the lifetime of the process.
// All access goes through the mutex; a restart resets to seed state.
type InMemoryStore struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryStore constructs a store populated with the seed roster.
func NewInMemoryStore() *InMemoryStore {
	store := &InMemoryStore{
		activities: make(map[string]domain.Activity),
	}
	store.seed()
	return store
}

func (s *InMemoryStore) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, activity := range seedActivities() {
		s.activities[activity.Name] = activity
	}
}

// List implements domain.Repository. It returns a deep copy so callers
// cannot alias internal state.
func (s *InMemoryStore) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = copyActivity(activity)
	}
	return out, nil
}

// Signup implements domain.Repository. The membership check and the append
// happen under one lock so duplicate signups cannot race in.
func (s *InMemoryStore) Signup(ctx context.Context, activityName, email string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.Activity{}, domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	s.activities[activityName] = activity
	return copyActivity(activity), nil
}

// Unregister implements domain.Repository.
func (s *InMemoryStore) Unregister(ctx context.Context, activityName, email string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.Activity{}, domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), idx, idx+1)
	s.activities[activityName] = activity
	return copyActivity(activity), nil
}

func copyActivity(activity domain.Activity) domain.Activity {
	activity.Participants = slices.Clone(activity.Participants)
	return activity
}
