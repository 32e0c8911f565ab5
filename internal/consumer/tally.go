package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"example.com/extracurricular/internal/events"
)

// TallyHandler keeps running signup/unregister counts per activity and
// mirrors them into the roster change gauge.
type TallyHandler struct {
	mu      sync.Mutex
	tallies map[string]map[string]int // activity -> event type -> count
	logger  *log.Logger
}

// NewTallyHandler constructs a TallyHandler.
func NewTallyHandler(logger *log.Logger) *TallyHandler {
	if logger == nil {
		logger = log.New(log.Writer(), "[rostermon] ", log.LstdFlags)
	}
	return &TallyHandler{
		tallies: make(map[string]map[string]int),
		logger:  logger,
	}
}

// Handle decodes the roster change and updates the tally for its activity.
func (h *TallyHandler) Handle(ctx context.Context, msg Message) error {
	var change events.Change
	if err := json.Unmarshal(msg.Payload, &change); err != nil {
		return fmt.Errorf("unmarshal roster change: %w", err)
	}

	switch change.EventType {
	case events.TypeSignup, events.TypeUnregister:
	default:
		return fmt.Errorf("unknown event type %q", change.EventType)
	}

	h.mu.Lock()
	byType, ok := h.tallies[change.Activity]
	if !ok {
		byType = make(map[string]int)
		h.tallies[change.Activity] = byType
	}
	byType[change.EventType]++
	count := byType[change.EventType]
	h.mu.Unlock()

	rosterChangeGauge.WithLabelValues(change.Activity, change.EventType).Set(float64(count))
	h.logger.Printf("%s %s (activity=%s, event_id=%s)", change.EventType, change.Email, change.Activity, change.EventID)
	return nil
}

// Tally returns the observed count for the activity and event type.
func (h *TallyHandler) Tally(activity, eventType string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tallies[activity][eventType]
}
