package serial

import "sync/atomic"

// Counter hands out strictly increasing sequence numbers.
type Counter interface {
	Next() int64
}

// AtomicCounter is a process-wide Counter safe for concurrent use.
type AtomicCounter struct {
	next atomic.Int64
}

// NewAtomicCounter returns a counter whose first Next() yields start.
func NewAtomicCounter(start int64) *AtomicCounter {
	c := &AtomicCounter{}
	c.next.Store(start)
	return c
}

// Next returns the current value and advances the counter.
func (c *AtomicCounter) Next() int64 {
	return c.next.Add(1) - 1
}
