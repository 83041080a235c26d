package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kirizan/kitt-sub000/pkg/bus"
)

// handleEvents handles GET /api/v1/events?stream=<campaign_id>: a
// Server-Sent Events stream of log and status events. Reconnecting
// clients send Last-Event-ID (or ?after=) and get the durable history
// replayed before live delivery switches on. The subscription is opened
// before the catch-up query so no event published in between is lost;
// overlap is deduplicated by sequence number.
func (s *Server) handleEvents(c *gin.Context) {
	streamID := c.Query("stream")
	if streamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stream query parameter is required"})
		return
	}

	afterSeq := int64(0)
	if v := c.GetHeader("Last-Event-ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Last-Event-ID must be an integer"})
			return
		}
		afterSeq = n
	} else if v := c.Query("after"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "after must be an integer"})
			return
		}
		afterSeq = n
	}

	sub := s.events.Subscribe(streamID)
	if sub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event bus is shut down"})
		return
	}
	defer s.events.Unsubscribe(sub)
	s.metrics.SSESubscribers.Inc()
	defer s.metrics.SSESubscribers.Dec()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Replay durable history first.
	lastSeq := afterSeq
	history, err := s.events.CatchUp(c.Request.Context(), streamID, afterSeq, 0)
	if err != nil {
		s.logger.Error("sse catch-up failed", "stream_id", streamID, "error", err)
		return
	}
	for _, ev := range history {
		writeSSE(c.Writer, bus.Event{
			StreamID:  streamID,
			Kind:      bus.Kind(ev.Kind),
			Sequence:  int64(ev.ID),
			Payload:   ev.Payload,
			Timestamp: ev.CreatedAt,
		})
		lastSeq = int64(ev.ID)
	}
	flusher.Flush()

	// Live delivery.
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-sub.C:
			if !open {
				return
			}
			// Events already replayed from history arrive again through
			// the live channel if they were published mid-catch-up.
			if ev.Kind != bus.KindDropped && ev.Sequence <= lastSeq {
				continue
			}
			writeSSE(c.Writer, ev)
			if ev.Sequence > lastSeq {
				lastSeq = ev.Sequence
			}
			flusher.Flush()
		}
	}
}

// writeSSE emits one event in wire format. Dropped markers have no
// sequence: clients treat them as a hint to reconnect with catch-up.
func writeSSE(w http.ResponseWriter, ev bus.Event) {
	if ev.Sequence > 0 {
		fmt.Fprintf(w, "id: %d\n", ev.Sequence)
	}
	fmt.Fprintf(w, "event: %s\n", ev.Kind)

	data, err := json.Marshal(ev)
	if err != nil {
		data = []byte("{}")
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}
