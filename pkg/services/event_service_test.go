package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/pkg/bus"
)

func TestAppendAssignsMonotonicSequences(t *testing.T) {
	client := setupTestClient(t)
	b := bus.New(0)
	defer b.Close()
	svc := NewEventService(client, b, discardLogger())
	ctx := context.Background()

	e1, err := svc.AppendLog(ctx, "campaign-1", "first")
	require.NoError(t, err)
	e2, err := svc.AppendLog(ctx, "campaign-1", "second")
	require.NoError(t, err)
	e3, err := svc.AppendLog(ctx, "campaign-2", "other stream")
	require.NoError(t, err)

	assert.Greater(t, e2.ID, e1.ID)
	assert.Greater(t, e3.ID, e2.ID, "sequences are globally monotonic")
}

func TestAppendPublishesToLiveSubscribers(t *testing.T) {
	client := setupTestClient(t)
	b := bus.New(8)
	defer b.Close()
	svc := NewEventService(client, b, discardLogger())
	ctx := context.Background()

	sub := svc.Subscribe("campaign-1")
	defer svc.Unsubscribe(sub)

	ev, err := svc.AppendStatus(ctx, "campaign-1", "running", map[string]interface{}{"run_id": "r1"})
	require.NoError(t, err)

	select {
	case got := <-sub.C:
		assert.Equal(t, bus.KindStatus, got.Kind)
		assert.Equal(t, int64(ev.ID), got.Sequence)
		assert.Equal(t, "running", got.Payload["status"])
		assert.Equal(t, "r1", got.Payload["run_id"])
	case <-time.After(time.Second):
		t.Fatal("expected live event")
	}
}

func TestCatchUpReplaysAfterSequence(t *testing.T) {
	client := setupTestClient(t)
	b := bus.New(8)
	defer b.Close()
	svc := NewEventService(client, b, discardLogger())
	ctx := context.Background()

	var ids []int
	for _, line := range []string{"one", "two", "three"} {
		ev, err := svc.AppendLog(ctx, "campaign-1", line)
		require.NoError(t, err)
		ids = append(ids, ev.ID)
	}
	// Noise on another stream must not leak in.
	_, err := svc.AppendLog(ctx, "campaign-2", "noise")
	require.NoError(t, err)

	events, err := svc.CatchUp(ctx, "campaign-1", int64(ids[0]), 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "two", events[0].Payload["line"])
	assert.Equal(t, "three", events[1].Payload["line"])

	// From the beginning.
	events, err = svc.CatchUp(ctx, "campaign-1", 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestAppendRequiresStream(t *testing.T) {
	client := setupTestClient(t)
	b := bus.New(8)
	defer b.Close()
	svc := NewEventService(client, b, discardLogger())

	_, err := svc.Append(context.Background(), "", bus.KindLog, nil)
	assert.True(t, IsValidationError(err))
}
