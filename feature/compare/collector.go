package compare

import "sync"

// Collector gathers per-file results from concurrent workers and returns them
// in discovery order regardless of completion order.
type Collector struct {
	mu    sync.Mutex
	slots []*FileResult
}

// NewCollector creates a Collector for n file names.
func NewCollector(n int) *Collector {
	return &Collector{slots: make([]*FileResult, n)}
}

// Add stores the result for the file name at discovery index i.
func (c *Collector) Add(i int, res FileResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[i] = &res
}

// Results returns the collected results in discovery order.
// Slots that were never filled are skipped.
func (c *Collector) Results() []FileResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]FileResult, 0, len(c.slots))
	for _, r := range c.slots {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
