// Package dispatch holds the per-agent command queues. Commands are
// enqueued by the campaign executor and drained one at a time by agent
// heartbeats, so ordering is strictly FIFO per agent and an agent never
// receives work it did not poll for.
package dispatch

import (
	"errors"
	"sync"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// DefaultCapacity bounds each agent's queue. The executor runs one
// campaign per agent serially, so the queue stays near-empty in practice;
// the bound exists to fail fast if dispatch ever runs away.
const DefaultCapacity = 64

// ErrFull is returned when an agent's queue is at capacity.
var ErrFull = errors.New("command queue full")

// Queue is the set of per-agent FIFO command queues.
type Queue struct {
	capacity int

	mu     sync.Mutex
	queues map[string][]*models.Command
}

// New creates a Queue. capacity <= 0 uses DefaultCapacity.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		capacity: capacity,
		queues:   make(map[string][]*models.Command),
	}
}

// Enqueue appends a command to the agent's queue, failing with ErrFull
// at capacity.
func (q *Queue) Enqueue(agentID string, cmd *models.Command) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := q.queues[agentID]
	if len(queue) >= q.capacity {
		return ErrFull
	}
	q.queues[agentID] = append(queue, cmd)
	return nil
}

// Dequeue pops the oldest command for the agent, or false when empty.
func (q *Queue) Dequeue(agentID string) (*models.Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := q.queues[agentID]
	if len(queue) == 0 {
		return nil, false
	}
	cmd := queue[0]
	if len(queue) == 1 {
		delete(q.queues, agentID)
	} else {
		q.queues[agentID] = queue[1:]
	}
	return cmd, true
}

// Requeue pushes a command back to the front of the agent's queue, used
// when a popped command could not be handed over after all. Capacity is
// not enforced here: the command already held a slot.
func (q *Queue) Requeue(agentID string, cmd *models.Command) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queues[agentID] = append([]*models.Command{cmd}, q.queues[agentID]...)
}

// Drop removes a specific command from the agent's queue. Returns false
// when the command was not queued (already dispatched or never enqueued).
func (q *Queue) Drop(agentID, commandID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := q.queues[agentID]
	for i, cmd := range queue {
		if cmd.CommandID == commandID {
			q.queues[agentID] = append(queue[:i:i], queue[i+1:]...)
			if len(q.queues[agentID]) == 0 {
				delete(q.queues, agentID)
			}
			return true
		}
	}
	return false
}

// ClearCampaign discards the agent's queued run commands belonging to
// one campaign, returning how many were dropped. Commands from other
// campaigns queued on the same agent are left in place, as are control
// commands (a pending stop_container must still reach the agent).
func (q *Queue) ClearCampaign(agentID, campaignID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := q.queues[agentID]
	kept := queue[:0:0]
	for _, cmd := range queue {
		isRun := cmd.Type == models.CommandRunContainer || cmd.Type == models.CommandRunTest
		if cmd.CampaignID != campaignID || !isRun {
			kept = append(kept, cmd)
		}
	}
	n := len(queue) - len(kept)
	if len(kept) == 0 {
		delete(q.queues, agentID)
	} else {
		q.queues[agentID] = kept
	}
	return n
}

// Len reports the agent's queue depth.
func (q *Queue) Len(agentID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues[agentID])
}
