package vector

import "sync/atomic"

// Observer receives a notification for every reallocation a vector
// performs. Collection is optional: a vector without an observer skips it
// entirely.
//
// Example implementations:
//   - In-memory counters for tests and benchmarks (see Counters)
//   - An adapter feeding an external metrics backend
type Observer interface {
	// ObserveRealloc records one reallocation: the capacity before and
	// after, and the number of live elements copied into the new block.
	ObserveRealloc(oldCap, newCap, copied int)
}

// SetObserver attaches obs to the vector. Passing nil detaches the
// current observer. Only subsequent reallocations are observed.
func (v *Vector[T]) SetObserver(obs Observer) {
	v.obs = obs
}

// Counters is an in-memory Observer tallying reallocations and element
// copies. The counters are atomic so a test can read them while another
// goroutine drives a vector, but the vector itself remains single-writer.
type Counters struct {
	reallocs   atomic.Int64
	elemCopies atomic.Int64
}

// ObserveRealloc implements Observer.
func (c *Counters) ObserveRealloc(oldCap, newCap, copied int) {
	c.reallocs.Add(1)
	c.elemCopies.Add(int64(copied))
}

// Reallocs returns the number of reallocations observed.
func (c *Counters) Reallocs() int64 {
	return c.reallocs.Load()
}

// ElemCopies returns the total number of elements copied across all
// observed reallocations.
func (c *Counters) ElemCopies() int64 {
	return c.elemCopies.Load()
}

// Reset zeroes both counters.
func (c *Counters) Reset() {
	c.reallocs.Store(0)
	c.elemCopies.Store(0)
}
