package experiment

import "math/rand/v2"

// OperandSource produces the 64-bit operands workers XOR into their
// counter. A worker calls it once per round, before the loop starts,
// and reuses the value for every iteration of that round; reusing one
// operand an even number of times is what makes zero the expected
// final value.
//
// Implementations must be safe for concurrent use: every worker draws
// from the same source.
type OperandSource func() uint64

// entropy is the default operand source. math/rand/v2's top-level
// functions are safe for concurrent use and uniform over the full
// 64-bit range; cryptographic strength is not needed here.
func entropy() uint64 {
	return rand.Uint64()
}
