package agentd

import "sync"

// LogRing is a fixed-size ring buffer of log lines. The tail rides along
// with the terminal result report so failures carry their context.
type LogRing struct {
	mu    sync.Mutex
	lines []string
	max   int
	start int
	count int
}

// NewLogRing creates a ring holding at most max lines. A non-positive
// max disables capture.
func NewLogRing(max int) *LogRing {
	if max < 0 {
		max = 0
	}
	return &LogRing{lines: make([]string, max), max: max}
}

// Append adds one line, evicting the oldest when full.
func (r *LogRing) Append(line string) {
	if r.max == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count < r.max {
		r.lines[(r.start+r.count)%r.max] = line
		r.count++
		return
	}
	r.lines[r.start] = line
	r.start = (r.start + 1) % r.max
}

// Tail returns the buffered lines, oldest first.
func (r *LogRing) Tail() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.lines[(r.start+i)%r.max])
	}
	return out
}
