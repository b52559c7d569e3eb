// Package harness provides the public API for the xorrace harness.
//
// See doc.go for detailed documentation and examples.
package harness

import (
	"github.com/kolkov/xorrace/internal/experiment"
	"github.com/kolkov/xorrace/internal/report"
)

// Config describes one experiment run. See the field documentation for
// the validation rules; Run rejects a bad Config before spawning any
// worker.
type Config = experiment.Config

// Result is the final observation for one enabled counter variant.
type Result = experiment.Result

// Variant names a counter flavor.
type Variant = experiment.Variant

// Variant labels, as they appear in report lines.
const (
	VariantAtomic = experiment.VariantAtomic
	VariantUnsync = experiment.VariantUnsync
)

// ErrConfig is wrapped by every configuration error Run returns.
var ErrConfig = experiment.ErrConfig

// OperandSource supplies worker operands; see Config.Operands. Tests
// use it to make runs deterministic.
type OperandSource = experiment.OperandSource

// DefaultConfig returns the stock configuration: 8 workers, 1024
// iterations, one round, both variants enabled.
func DefaultConfig() Config {
	return experiment.DefaultConfig()
}

// Run executes one experiment and returns a Result per enabled
// variant, atomic first. It blocks until every worker has terminated;
// the join is what makes the final reads meaningful.
//
// A Result whose Match flag is false is valid data. Run only fails on
// configuration errors, reported before anything is spawned.
func Run(cfg Config) ([]Result, error) {
	return experiment.Run(cfg)
}

// Report renders results as labeled lines, one per variant, each value
// shown as all 64 bits most-significant first:
//
//	atomic: 00000000...
//	unsync: 00000000...
func Report(results []Result) string {
	return report.Render(results)
}

// FormatBits renders a 64-bit value the way report lines do: exactly
// 64 '0'/'1' characters, MSB first, leading zeros included.
func FormatBits(v uint64) string {
	return report.FormatBits(v)
}
