// Package experiment orchestrates the xor-invariant run.
//
// The invariant under test: XOR-ing the same operand into a 64-bit
// counter an even number of times leaves it unchanged. With an atomic
// fetch-xor this holds under every interleaving. With an unsynchronized
// fetch-xor, concurrent workers can lose updates and the invariant may
// or may not survive — the runner measures which, it never enforces it.
//
// A run validates its configuration, allocates both counter variants at
// zero, spawns workers for each enabled variant, joins them, and reads
// the finals. The join is the only happens-before edge in the whole
// experiment; it is what makes the final read on the racy word
// meaningful at all.
//
// A final value that differs from zero is a recorded observation, not
// an error. The runner never retries and never re-runs on mismatch.
package experiment
