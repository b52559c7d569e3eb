package counter

// Racy is the unsynchronized variant: the same 64-bit word, but FetchXor
// is a plain load, compute, store over memory shared by every worker.
// No mutex, no atomic, no ordering guarantee.
//
// INTENTIONALLY UNSOUND. Concurrent FetchXor calls are a data race: two
// goroutines can load the same stale value, and the second store then
// erases the first caller's XOR (a lost update). Under the Go memory
// model a racy program has no defined behavior at all; this type exists
// to observe what actually happens, not to guarantee anything.
//
// Do not copy this pattern into code that needs a correct counter.
type Racy struct {
	v uint64
}

// NewRacy returns a racy counter holding zero.
func NewRacy() *Racy {
	return &Racy{}
}

// FetchXor XORs operand into the word without synchronization and
// returns the value it read. The read, the XOR, and the write are three
// separate steps that concurrent callers interleave freely.
func (c *Racy) FetchXor(operand uint64) uint64 {
	old := c.v
	c.v = old ^ operand
	return old
}

// Load returns the current value. Only meaningful once all mutating
// goroutines have been joined; the join supplies the happens-before
// edge this type itself never establishes.
func (c *Racy) Load() uint64 {
	return c.v
}
