package agentd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogRingKeepsTail(t *testing.T) {
	ring := NewLogRing(3)
	for i := 1; i <= 5; i++ {
		ring.Append(fmt.Sprintf("line %d", i))
	}
	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, ring.Tail())
}

func TestLogRingUnderCapacity(t *testing.T) {
	ring := NewLogRing(10)
	ring.Append("a")
	ring.Append("b")
	assert.Equal(t, []string{"a", "b"}, ring.Tail())
}

func TestLogRingDisabled(t *testing.T) {
	ring := NewLogRing(0)
	ring.Append("dropped")
	assert.Empty(t, ring.Tail())
}
