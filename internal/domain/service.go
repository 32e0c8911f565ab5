package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/observability"
)

// Service orchestrates roster operations: storage, metrics, and event publishing.
type Service struct {
	repo      Repository
	publisher events.Publisher
}

// NewService constructs a Service.
func NewService(repo Repository, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{repo: repo, publisher: publisher}
}

// ListActivities returns the full roster keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup adds the student's email to the activity's roster.
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	activity, err := s.repo.Signup(ctx, activityName, email)
	if err != nil {
		recordRejection(err)
		return err
	}

	observability.RecordSignup(activityName, len(activity.Participants))
	s.publish(ctx, events.TypeSignup, activityName, email)
	return nil
}

// Unregister removes the student's email from the activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	activity, err := s.repo.Unregister(ctx, activityName, email)
	if err != nil {
		recordRejection(err)
		return err
	}

	observability.RecordUnregister(activityName, len(activity.Participants))
	s.publish(ctx, events.TypeUnregister, activityName, email)
	return nil
}

// publish emits a roster change. Delivery is best-effort: a publish failure
// is logged but never surfaced to the student.
func (s *Service) publish(ctx context.Context, eventType, activityName, email string) {
	change := events.Change{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Activity:   activityName,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, change); err != nil {
		log.Printf("roster event publish failed (event_type=%s, activity=%s): %v", eventType, activityName, err)
	}
}

func recordRejection(err error) {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		observability.RecordRejection("activity_not_found")
	case errors.Is(err, ErrAlreadySignedUp):
		observability.RecordRejection("already_signed_up")
	case errors.Is(err, ErrNotRegistered):
		observability.RecordRejection("not_registered")
	}
}
