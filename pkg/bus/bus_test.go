package bus

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(8)
	defer b.Close()

	sub := b.Subscribe("campaign-1")
	require.NotNil(t, sub)

	b.Publish(Event{StreamID: "campaign-1", Kind: KindLog, Payload: map[string]interface{}{"line": "hello"}})

	select {
	case ev := <-sub.C:
		assert.Equal(t, KindLog, ev.Kind)
		assert.Equal(t, "hello", ev.Payload["line"])
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestPublishToUnknownStreamIsNoop(t *testing.T) {
	b := New(8)
	defer b.Close()

	// No subscribers — must not panic or block.
	b.Publish(Event{StreamID: "nobody-listens", Kind: KindStatus})
}

func TestSubscriberIsolation(t *testing.T) {
	b := New(8)
	defer b.Close()

	subA := b.Subscribe("run-a")
	subB := b.Subscribe("run-b")

	b.Publish(Event{StreamID: "run-a", Kind: KindStatus, Payload: map[string]interface{}{"status": "running"}})

	select {
	case ev := <-subA.C:
		assert.Equal(t, "run-a", ev.StreamID)
	case <-time.After(time.Second):
		t.Fatal("subscriber A got nothing")
	}

	select {
	case ev := <-subB.C:
		t.Fatalf("subscriber B received foreign event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlowSubscriberDropsOldestWithMarker(t *testing.T) {
	b := New(4)
	defer b.Close()

	sub := b.Subscribe("campaign-1")

	// Publish far more than the channel holds without draining.
	const published = 20
	for i := 0; i < published; i++ {
		b.Publish(Event{
			StreamID: "campaign-1",
			Kind:     KindLog,
			Payload:  map[string]interface{}{"line": fmt.Sprintf("line %d", i)},
		})
	}

	// Drain the buffered events; none of them blocks the publisher.
	buffered := 0
	for {
		select {
		case ev := <-sub.C:
			assert.NotEqual(t, KindDropped, ev.Kind, "marker should not arrive before the drain")
			buffered++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 4, buffered)

	// The next publish has room again: the dropped marker is delivered
	// first, then the new event.
	b.Publish(Event{StreamID: "campaign-1", Kind: KindLog, Payload: map[string]interface{}{"line": "final"}})

	marker := <-sub.C
	require.Equal(t, KindDropped, marker.Kind)
	assert.Equal(t, published-4, marker.Dropped)

	ev := <-sub.C
	assert.Equal(t, "final", ev.Payload["line"])
}

func TestPublisherNeverBlocks(t *testing.T) {
	b := New(2)
	defer b.Close()

	_ = b.Subscribe("campaign-1") // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			b.Publish(Event{StreamID: "campaign-1", Kind: KindLog})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	b := New(8)
	defer b.Close()

	sub := b.Subscribe("run-1")
	b.Unsubscribe(sub)
	b.Unsubscribe(sub) // second call must not panic

	_, open := <-sub.C
	assert.False(t, open, "channel should be closed after unsubscribe")
	assert.Equal(t, 0, b.SubscriberCount("run-1"))
}

func TestCloseClosesAllSubscriberChannels(t *testing.T) {
	b := New(8)
	s1 := b.Subscribe("a")
	s2 := b.Subscribe("b")

	b.Close()

	_, open1 := <-s1.C
	_, open2 := <-s2.C
	assert.False(t, open1)
	assert.False(t, open2)

	// Subscribing after close returns nil.
	assert.Nil(t, b.Subscribe("c"))
	// Double close is safe.
	b.Close()
}

func TestConcurrentPublishSubscribe(t *testing.T) {
	b := New(16)
	defer b.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			stream := fmt.Sprintf("run-%d", n%4)
			sub := b.Subscribe(stream)
			for j := 0; j < 50; j++ {
				b.Publish(Event{StreamID: stream, Kind: KindStatus})
			}
			b.Unsubscribe(sub)
		}(i)
	}
	wg.Wait()
}
