package state

import "sync"

// Clock is a Lamport clock ordering stroke operations across peers.
type Clock struct {
	counter uint64
	mu      sync.Mutex
}

// Tick increments the clock and returns the new value
func (c *Clock) Tick() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counter++
	return c.counter
}

// Update moves the clock forward to a received timestamp.
func (c *Clock) Update(ts uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ts > c.counter {
		c.counter = ts
	}
}

func (c *Clock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter
}
