package harness_test

import (
	"fmt"
	"strings"

	"github.com/kolkov/xorrace/harness"
)

// Example demonstrates a minimal run. With a single worker there is no
// contention, so both variants are guaranteed to land on zero.
func Example() {
	cfg := harness.Config{
		Threads:      1,
		Iterations:   2,
		Rounds:       1,
		EnableAtomic: true,
		EnableRacy:   true,
	}

	results, err := harness.Run(cfg)
	if err != nil {
		fmt.Println("config error:", err)
		return
	}
	fmt.Print(harness.Report(results))

	// Output:
	// atomic: 0000000000000000000000000000000000000000000000000000000000000000
	// unsync: 0000000000000000000000000000000000000000000000000000000000000000
}

// Example_atomicOnly disables the racy variant; only the control line
// remains, and it is always zero regardless of contention.
func Example_atomicOnly() {
	cfg := harness.DefaultConfig()
	cfg.EnableRacy = false

	results, err := harness.Run(cfg)
	if err != nil {
		fmt.Println("config error:", err)
		return
	}
	fmt.Print(harness.Report(results))

	// Output:
	// atomic: 0000000000000000000000000000000000000000000000000000000000000000
}

// Example_formatBits shows the fixed-width binary rendering used in
// report lines.
func Example_formatBits() {
	fmt.Println(harness.FormatBits(1))
	fmt.Println(strings.Count(harness.FormatBits(^uint64(0)), "1"))

	// Output:
	// 0000000000000000000000000000000000000000000000000000000000000001
	// 64
}
