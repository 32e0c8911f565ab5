package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes roster changes to a single Kafka topic. The writer
// is constructed lazily on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string

	mu     sync.Mutex
	writer messageWriter
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic}
}

// Publish serializes the change as JSON and writes it keyed by activity name
// so per-activity ordering is preserved.
func (p *KafkaPublisher) Publish(ctx context.Context, change Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(change.Activity),
		Value: payload,
		Time:  change.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(change.EventType)},
			{Key: "activity", Value: []byte(change.Activity)},
		},
	}

	return p.getWriter().WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) getWriter() messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
