package mocks

import "sync"

// callLog counts calls per method name.
type callLog struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *callLog) record(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[method]++
}

// CallCount returns how many times method was called.
func (c *callLog) CallCount(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[method]
}
