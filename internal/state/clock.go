package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock is a logical counter stamping committed entries in commit order.
type Clock struct {
	counter atomic.Uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the last value handed out.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}

func newEntryID() string {
	return uuid.NewString()
}
