package experiment

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration validation failure.
// Callers can match it with errors.Is.
var ErrConfig = errors.New("invalid experiment configuration")

// Config describes one experiment run. Validation happens in Validate,
// always before any worker goroutine is spawned.
type Config struct {
	// Threads is the number of workers spawned per enabled variant
	// (or in total, in interleaved mode). Must be at least 1. A single
	// worker cannot contend with itself, so observing corruption on
	// the racy variant requires at least 2.
	Threads int

	// Iterations is the number of fetch-xor calls each worker performs
	// per round. Must be positive and even: only an even count makes
	// "final value is zero" the expected outcome.
	Iterations int

	// Rounds is how many operands each worker draws. Every round draws
	// a fresh operand and applies it Iterations times, so the zero
	// invariant holds per round and therefore overall. Must be at
	// least 1.
	Rounds int

	// EnableAtomic and EnableRacy select which variants are mutated.
	// Both counters are always allocated; a disabled variant is simply
	// never touched and produces no Result. At least one must be set.
	EnableAtomic bool
	EnableRacy   bool

	// Interleave makes each worker apply its operand to both counters
	// in the same loop body instead of dedicating workers to one
	// variant. Requires both variants enabled.
	Interleave bool

	// Operands supplies one 64-bit operand per worker per round.
	// Nil means a non-deterministic source (math/rand/v2).
	Operands OperandSource
}

// DefaultConfig returns the configuration the CLI starts from:
// 8 workers, 1024 even iterations, one round, both variants enabled.
func DefaultConfig() Config {
	return Config{
		Threads:      8,
		Iterations:   1024,
		Rounds:       1,
		EnableAtomic: true,
		EnableRacy:   true,
	}
}

// Validate checks the configuration. It returns an error wrapping
// ErrConfig on the first violation found.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("%w: threads must be at least 1, got %d", ErrConfig, c.Threads)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrConfig, c.Iterations)
	}
	if c.Iterations%2 != 0 {
		return fmt.Errorf("%w: iterations must be even, got %d", ErrConfig, c.Iterations)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrConfig, c.Rounds)
	}
	if !c.EnableAtomic && !c.EnableRacy {
		return fmt.Errorf("%w: at least one variant must be enabled", ErrConfig)
	}
	if c.Interleave && !(c.EnableAtomic && c.EnableRacy) {
		return fmt.Errorf("%w: interleaved mode requires both variants enabled", ErrConfig)
	}
	return nil
}
