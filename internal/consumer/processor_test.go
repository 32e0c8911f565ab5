package consumer

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestProcessorCommitsOnSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := []byte(`{"event_id":"evt-1","event_type":"roster.signup","activity":"Chess Club","email":"new@mergington.edu"}`)

	msg := kafka.Message{
		Topic:     "roster_events",
		Partition: 0,
		Offset:    10,
		Time:      time.Now().UTC(),
		Value:     payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster.signup")},
			{Key: "activity", Value: []byte("Chess Club")},
		},
	}

	reader := &stubReader{
		messages: []kafka.Message{msg},
		after:    contextCanceled,
	}
	handler := &stubHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, "roster.signup", handler.last.EventType)
	require.Equal(t, "Chess Club", handler.last.Activity)
	require.JSONEq(t, string(payload), string(handler.last.Payload))
}

func TestProcessorSkipsCommitOnHandlerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := kafka.Message{
		Topic:     "roster_events",
		Partition: 0,
		Offset:    20,
		Time:      time.Now().UTC(),
		Value:     []byte(`{"event_type":"roster.unregister","activity":"Gym Class"}`),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster.unregister")},
			{Key: "activity", Value: []byte("Gym Class")},
		},
	}

	reader := &stubReader{
		messages: []kafka.Message{msg},
		after:    contextCanceled,
	}
	handler := &stubHandler{err: errors.New("boom")}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 0, reader.commitCalls)
}

func TestProcessorCommitsMalformedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Missing headers and invalid JSON both count as decode failures.
	malformed := []kafka.Message{
		{
			Topic:  "roster_events",
			Offset: 1,
			Value:  []byte(`{"event_type":"roster.signup"}`),
		},
		{
			Topic:  "roster_events",
			Offset: 2,
			Value:  []byte(`not-json`),
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte("roster.signup")},
				{Key: "activity", Value: []byte("Chess Club")},
			},
		},
	}

	reader := &stubReader{
		messages: malformed,
		after:    contextCanceled,
	}
	handler := &stubHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 0, handler.calls)
	require.Equal(t, 2, reader.commitCalls)
}

type stubReader struct {
	messages    []kafka.Message
	index       int
	commitCalls int
	after       func() error
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.index >= len(r.messages) {
		if r.after != nil {
			return kafka.Message{}, r.after()
		}
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[r.index]
	r.index++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCalls++
	return nil
}

func (r *stubReader) Close() error { return nil }

func contextCanceled() error { return context.Canceled }

type stubHandler struct {
	calls int
	err   error
	last  Message
}

func (h *stubHandler) Handle(_ context.Context, msg Message) error {
	h.calls++
	h.last = msg
	return h.err
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
