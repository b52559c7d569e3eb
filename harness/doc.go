// Package harness is the public API for the xorrace experiment.
//
// xorrace measures whether a simple invariant — XOR-ing the same 64-bit
// operand into a counter an even number of times leaves it unchanged —
// survives concurrent, unsynchronized mutation. Each run races two
// counters: an atomic control whose fetch-xor is an indivisible
// read-modify-write, and a deliberately unsynchronized counter whose
// fetch-xor is a bare load/compute/store over shared memory.
//
// # Quick start
//
//	results, err := harness.Run(harness.DefaultConfig())
//	if err != nil {
//		// configuration error; nothing was spawned
//	}
//	fmt.Print(harness.Report(results))
//
// Typical output:
//
//	atomic: 0000000000000000000000000000000000000000000000000000000000000000
//	unsync: 0000000000000000000000000000000000000000000000000000000000000000
//
// The atomic line is 64 zeros on every run, under any scheduling. The
// unsync line is whatever the race left behind: often zeros, sometimes
// not. A nonzero unsync value is a successful observation, not an
// error — the harness never retries and never judges it.
//
// # Interpreting results
//
// Each Result carries the final value, the expected value (always
// zero), and a Match flag. For the atomic variant Match is guaranteed
// true. For the unsync variant both outcomes are valid; programs that
// want a single number across many runs should count the fraction of
// non-matching trials themselves.
//
// # The race is real
//
// The unsync counter is a genuine data race, which the Go race detector
// will report when the harness is built with -race. That is the
// expected interaction, not a bug in either tool.
package harness
