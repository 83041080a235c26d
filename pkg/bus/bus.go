// Package bus provides the in-process publish/subscribe event bus that
// fans log and status events out to SSE subscribers.
//
// Topics are created lazily per stream id (a campaign id or run id).
// Subscribers receive on a bounded channel; a subscriber that cannot keep
// up has its oldest events dropped and receives a dropped=n marker the
// next time it drains. Publishers never block.
package bus

import (
	"sync"
	"time"
)

// Kind classifies an event on the bus.
type Kind string

// Event kinds.
const (
	KindLog    Kind = "log"
	KindStatus Kind = "status"
	// KindDropped marks a gap: Dropped events were discarded for this
	// subscriber since its last successful receive.
	KindDropped Kind = "dropped"
)

// DefaultSubscriberCapacity is the per-subscriber channel buffer size.
const DefaultSubscriberCapacity = 128

// Event is a single log or status event on a stream.
type Event struct {
	StreamID  string                 `json:"stream_id"`
	Kind      Kind                   `json:"kind"`
	Sequence  int64                  `json:"sequence,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Dropped   int                    `json:"dropped,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Subscription is one subscriber's handle on a stream topic.
type Subscription struct {
	// C delivers events in publish order, with possible dropped markers.
	C <-chan Event

	streamID string
	ch       chan Event

	mu      sync.Mutex
	closed  bool
	pending int // events dropped since the last delivered marker
}

// offer delivers an event without ever blocking the caller.
func (s *Subscription) offer(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	// Deliver an outstanding dropped marker first, if there is room.
	if s.pending > 0 {
		marker := Event{
			StreamID:  s.streamID,
			Kind:      KindDropped,
			Dropped:   s.pending,
			Timestamp: time.Now(),
		}
		select {
		case s.ch <- marker:
			s.pending = 0
		default:
		}
	}

	select {
	case s.ch <- ev:
		return
	default:
	}

	// Channel full: drop the oldest event to make room for the newest.
	select {
	case <-s.ch:
		s.pending++
	default:
	}
	select {
	case s.ch <- ev:
	default:
		s.pending++
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

type topic struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// Bus is the process-wide event bus.
type Bus struct {
	capacity int

	mu     sync.Mutex
	topics map[string]*topic
	closed bool
}

// New creates a Bus with the given per-subscriber channel capacity.
// capacity <= 0 uses DefaultSubscriberCapacity.
func New(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultSubscriberCapacity
	}
	return &Bus{
		capacity: capacity,
		topics:   make(map[string]*topic),
	}
}

// Publish delivers an event to every subscriber of the stream.
// It never blocks: slow subscribers lose their oldest events instead.
func (b *Bus) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	b.mu.Lock()
	t, ok := b.topics[ev.StreamID]
	b.mu.Unlock()
	if !ok {
		return
	}

	t.mu.RLock()
	subs := make([]*Subscription, 0, len(t.subs))
	for s := range t.subs {
		subs = append(subs, s)
	}
	t.mu.RUnlock()

	for _, s := range subs {
		s.offer(ev)
	}
}

// Subscribe registers a new subscriber on a stream topic.
// Returns nil after the bus has been closed.
func (b *Bus) Subscribe(streamID string) *Subscription {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	t, ok := b.topics[streamID]
	if !ok {
		t = &topic{subs: make(map[*Subscription]struct{})}
		b.topics[streamID] = t
	}
	b.mu.Unlock()

	s := &Subscription{streamID: streamID}
	s.ch = make(chan Event, b.capacity)
	s.C = s.ch

	t.mu.Lock()
	t.subs[s] = struct{}{}
	t.mu.Unlock()
	return s
}

// Unsubscribe removes a subscriber and closes its channel. Idempotent.
func (b *Bus) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}

	b.mu.Lock()
	t, ok := b.topics[s.streamID]
	b.mu.Unlock()
	if ok {
		t.mu.Lock()
		delete(t.subs, s)
		empty := len(t.subs) == 0
		t.mu.Unlock()

		if empty {
			b.mu.Lock()
			// Re-check under the bus lock: a new subscriber may have
			// arrived between the two critical sections.
			t.mu.RLock()
			if len(t.subs) == 0 {
				delete(b.topics, s.streamID)
			}
			t.mu.RUnlock()
			b.mu.Unlock()
		}
	}

	s.close()
}

// Close shuts the bus down and closes every subscriber channel.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	topics := b.topics
	b.topics = make(map[string]*topic)
	b.mu.Unlock()

	for _, t := range topics {
		t.mu.Lock()
		for s := range t.subs {
			s.close()
		}
		t.subs = make(map[*Subscription]struct{})
		t.mu.Unlock()
	}
}

// SubscriberCount reports the number of subscribers on a stream.
func (b *Bus) SubscriberCount(streamID string) int {
	b.mu.Lock()
	t, ok := b.topics[streamID]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs)
}
