// Package events publishes roster changes to Kafka for downstream consumers.
package events

import (
	"context"
	"time"
)

// Event type values carried in the event_type header and payload.
const (
	TypeSignup     = "roster.signup"
	TypeUnregister = "roster.unregister"
)

// Change is the message body emitted whenever an activity roster mutates.
type Change struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher defines the roster change publishing contract.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// NoopPublisher is a no-op implementation used when eventing is disabled.
type NoopPublisher struct{}

// Publish performs no action.
func (NoopPublisher) Publish(context.Context, Change) error { return nil }
