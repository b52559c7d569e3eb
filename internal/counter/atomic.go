package counter

import "sync/atomic"

// Atomic is the synchronized control: a 64-bit word mutated only through
// an indivisible fetch-xor.
//
// sync/atomic has no native fetch-xor, so FetchXor is built from a
// compare-and-swap loop. Each successful CAS is a single indivisible RMW;
// a failed CAS means another goroutine's RMW landed first and the loop
// simply retries on the fresh value. No update is ever lost or applied
// twice.
//
// The zero value is ready to use and holds 0.
type Atomic struct {
	v atomic.Uint64
}

// NewAtomic returns an atomic counter holding zero.
func NewAtomic() *Atomic {
	return &Atomic{}
}

// FetchXor atomically XORs operand into the word and returns the
// previous value.
func (c *Atomic) FetchXor(operand uint64) uint64 {
	for {
		old := c.v.Load()
		if c.v.CompareAndSwap(old, old^operand) {
			return old
		}
	}
}

// Load returns the current value.
func (c *Atomic) Load() uint64 {
	return c.v.Load()
}
