// Package counter provides the two shared 64-bit words the experiment
// races against each other.
//
// Both variants expose the same fetch-xor contract:
//
//   - Atomic: every fetch-xor is an indivisible read-modify-write. No
//     interleaving can tear it, so XOR-ing the same operand into the word
//     an even number of times always restores the initial value.
//
//   - Racy: the fetch-xor is a plain load, compute, store sequence over
//     memory shared by multiple goroutines with no synchronization at
//     all. Concurrent callers can read stale values and overwrite each
//     other's stores (lost updates). This is the condition under test,
//     not a bug.
//
// # Memory model
//
// Go's sync/atomic operations are sequentially consistent, which is
// stronger than the experiment needs: the only property the harness
// relies on is RMW atomicity, plus the happens-before edge established
// by joining the workers before the final Load.
//
// The Racy variant sits outside the Go memory model on purpose.
// A program containing a data race has no defined behavior; in practice
// the observable outcomes range from "final value is zero anyway" to
// arbitrary corruption, and the compiler is free to make them worse.
// The harness treats whatever comes out as data.
//
// # Race detector
//
// Building with -race makes the Go race detector fire on the Racy
// variant, by design. Tests that drive concurrent racy mutation consult
// RaceDetectorEnabled and skip themselves under -race builds.
package counter
