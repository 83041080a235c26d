package dispatch

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

func cmd(id string) *models.Command {
	return campaignCmd(id, "campaign-1")
}

func campaignCmd(id, campaignID string) *models.Command {
	return &models.Command{CommandID: id, CampaignID: campaignID, Type: models.CommandRunContainer}
}

func TestEnqueueDequeueFIFO(t *testing.T) {
	q := New(8)

	require.NoError(t, q.Enqueue("agent-1", cmd("a")))
	require.NoError(t, q.Enqueue("agent-1", cmd("b")))
	require.NoError(t, q.Enqueue("agent-1", cmd("c")))
	assert.Equal(t, 3, q.Len("agent-1"))

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Dequeue("agent-1")
		require.True(t, ok)
		assert.Equal(t, want, got.CommandID)
	}

	_, ok := q.Dequeue("agent-1")
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len("agent-1"))
}

func TestQueuesAreIsolatedPerAgent(t *testing.T) {
	q := New(8)

	require.NoError(t, q.Enqueue("agent-1", cmd("a")))
	require.NoError(t, q.Enqueue("agent-2", cmd("b")))

	got, ok := q.Dequeue("agent-2")
	require.True(t, ok)
	assert.Equal(t, "b", got.CommandID)
	assert.Equal(t, 1, q.Len("agent-1"))
}

func TestEnqueueFailsAtCapacity(t *testing.T) {
	q := New(2)

	require.NoError(t, q.Enqueue("agent-1", cmd("a")))
	require.NoError(t, q.Enqueue("agent-1", cmd("b")))
	assert.ErrorIs(t, q.Enqueue("agent-1", cmd("c")), ErrFull)

	// Draining frees capacity.
	_, ok := q.Dequeue("agent-1")
	require.True(t, ok)
	assert.NoError(t, q.Enqueue("agent-1", cmd("c")))
}

func TestRequeuePushesFront(t *testing.T) {
	q := New(8)

	require.NoError(t, q.Enqueue("agent-1", cmd("a")))
	require.NoError(t, q.Enqueue("agent-1", cmd("b")))

	popped, ok := q.Dequeue("agent-1")
	require.True(t, ok)
	q.Requeue("agent-1", popped)

	got, ok := q.Dequeue("agent-1")
	require.True(t, ok)
	assert.Equal(t, "a", got.CommandID)
}

func TestDropRemovesQueuedCommand(t *testing.T) {
	q := New(8)

	require.NoError(t, q.Enqueue("agent-1", cmd("a")))
	require.NoError(t, q.Enqueue("agent-1", cmd("b")))
	require.NoError(t, q.Enqueue("agent-1", cmd("c")))

	assert.True(t, q.Drop("agent-1", "b"))
	assert.False(t, q.Drop("agent-1", "b"))
	assert.False(t, q.Drop("agent-1", "missing"))

	got, _ := q.Dequeue("agent-1")
	assert.Equal(t, "a", got.CommandID)
	got, _ = q.Dequeue("agent-1")
	assert.Equal(t, "c", got.CommandID)
}

func TestClearCampaign(t *testing.T) {
	q := New(8)

	require.NoError(t, q.Enqueue("agent-1", cmd("a")))
	require.NoError(t, q.Enqueue("agent-1", cmd("b")))

	assert.Equal(t, 2, q.ClearCampaign("agent-1", "campaign-1"))
	assert.Equal(t, 0, q.Len("agent-1"))
	assert.Equal(t, 0, q.ClearCampaign("agent-1", "campaign-1"))
}

func TestClearCampaignSparesOtherCampaigns(t *testing.T) {
	q := New(8)

	// Two campaigns sharing one agent: cancelling the first must not
	// touch the second's queued work.
	require.NoError(t, q.Enqueue("agent-1", campaignCmd("a", "campaign-1")))
	require.NoError(t, q.Enqueue("agent-1", campaignCmd("b", "campaign-2")))
	require.NoError(t, q.Enqueue("agent-1", campaignCmd("c", "campaign-1")))

	assert.Equal(t, 2, q.ClearCampaign("agent-1", "campaign-1"))
	assert.Equal(t, 1, q.Len("agent-1"))

	got, ok := q.Dequeue("agent-1")
	require.True(t, ok)
	assert.Equal(t, "b", got.CommandID)
}

func TestClearCampaignKeepsControlCommands(t *testing.T) {
	q := New(8)

	require.NoError(t, q.Enqueue("agent-1", campaignCmd("a", "campaign-1")))
	stop := &models.Command{CommandID: "s", CampaignID: "campaign-1", Type: models.CommandStopContainer}
	require.NoError(t, q.Enqueue("agent-1", stop))

	assert.Equal(t, 1, q.ClearCampaign("agent-1", "campaign-1"))

	got, ok := q.Dequeue("agent-1")
	require.True(t, ok)
	assert.Equal(t, "s", got.CommandID)
}

func TestConcurrentAccess(t *testing.T) {
	q := New(DefaultCapacity)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		agent := fmt.Sprintf("agent-%d", i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = q.Enqueue(agent, cmd(fmt.Sprintf("cmd-%d", j)))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Dequeue(agent)
			}
		}()
	}
	wg.Wait()
}
