package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
	"github.com/Kirizan/kitt-sub000/pkg/bus"
)

// EventService appends log and status events to the durable stream and
// fans them out to live SSE subscribers through the bus. The database id
// is the event's sequence number: monotonically increasing, so clients
// reconnect with Last-Event-ID and catch up from where they left off.
type EventService struct {
	client *ent.Client
	bus    *bus.Bus
	logger *slog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client, b *bus.Bus, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{client: client, bus: b, logger: logger}
}

// Append persists one event and publishes it to live subscribers.
// Persistence failures are returned; publish never blocks.
func (s *EventService) Append(ctx context.Context, streamID string, kind bus.Kind, payload map[string]interface{}) (*ent.StreamEvent, error) {
	if streamID == "" {
		return nil, NewValidationError("stream_id", "required")
	}

	ev, err := s.client.StreamEvent.Create().
		SetStreamID(streamID).
		SetKind(streamevent.Kind(kind)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append stream event: %w", err)
	}

	s.bus.Publish(bus.Event{
		StreamID:  streamID,
		Kind:      kind,
		Sequence:  int64(ev.ID),
		Payload:   payload,
		Timestamp: ev.CreatedAt,
	})
	return ev, nil
}

// AppendLog is a convenience for single log lines.
func (s *EventService) AppendLog(ctx context.Context, streamID, line string) (*ent.StreamEvent, error) {
	return s.Append(ctx, streamID, bus.KindLog, map[string]interface{}{"line": line})
}

// AppendStatus records a status change event.
func (s *EventService) AppendStatus(ctx context.Context, streamID, status string, extra map[string]interface{}) (*ent.StreamEvent, error) {
	payload := map[string]interface{}{"status": status}
	for k, v := range extra {
		payload[k] = v
	}
	return s.Append(ctx, streamID, bus.KindStatus, payload)
}

// CatchUp returns persisted events on a stream with sequence greater
// than afterSeq, oldest first. Used to replay history to reconnecting
// SSE clients before switching to live delivery.
func (s *EventService) CatchUp(ctx context.Context, streamID string, afterSeq int64, limit int) ([]*ent.StreamEvent, error) {
	if limit <= 0 || limit > 1000 {
		limit = 500
	}
	events, err := s.client.StreamEvent.Query().
		Where(
			streamevent.StreamIDEQ(streamID),
			streamevent.IDGT(int(afterSeq)),
		).
		Order(ent.Asc(streamevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stream events: %w", err)
	}
	return events, nil
}

// Subscribe attaches a live subscriber to a stream.
func (s *EventService) Subscribe(streamID string) *bus.Subscription {
	return s.bus.Subscribe(streamID)
}

// Unsubscribe detaches a live subscriber.
func (s *EventService) Unsubscribe(sub *bus.Subscription) {
	s.bus.Unsubscribe(sub)
}

// Prune deletes stream events older than ttl. Reconnecting SSE clients
// only ever replay recent history; old events are debugging material.
func (s *EventService) Prune(ctx context.Context, ttl time.Duration) (int, error) {
	n, err := s.client.StreamEvent.Delete().
		Where(streamevent.CreatedAtLT(time.Now().Add(-ttl))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune stream events: %w", err)
	}
	return n, nil
}
