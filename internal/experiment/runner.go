package experiment

import (
	"sync"

	"github.com/kolkov/xorrace/internal/counter"
)

// Variant names a counter flavor in results and report lines.
type Variant string

const (
	// VariantAtomic is the synchronized control.
	VariantAtomic Variant = "atomic"

	// VariantUnsync is the deliberately unsynchronized counter.
	VariantUnsync Variant = "unsync"
)

// Result records the final observation for one enabled variant.
// Immutable; built only after every worker for that variant has been
// joined.
type Result struct {
	// Variant identifies which counter this observation belongs to.
	Variant Variant

	// Value is the final 64-bit word read after the join.
	Value uint64

	// Want is the expected value under the even-xor invariant.
	// Always zero; carried so callers need not know the invariant.
	Want uint64

	// Match reports Value == Want. For the atomic variant this is
	// guaranteed; for the unsync variant false is a valid, expected
	// observation, not a failure.
	Match bool
}

// Run executes one experiment and returns a Result per enabled variant,
// atomic first. It validates cfg before spawning anything; on a
// validation error no goroutine has been started and no Result exists.
//
// Run blocks until every worker has terminated. It never retries and
// treats an invariant mismatch as data.
func Run(cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	operands := cfg.Operands
	if operands == nil {
		operands = entropy
	}

	// Both words exist for every run; a disabled variant just never
	// gets a worker.
	atomicWord := counter.NewAtomic()
	racyWord := counter.NewRacy()

	var wg sync.WaitGroup
	spawn := func(targets ...counter.Counter) {
		for i := 0; i < cfg.Threads; i++ {
			w := workerTask{
				targets:    targets,
				operands:   operands,
				rounds:     cfg.Rounds,
				iterations: cfg.Iterations,
			}
			wg.Add(1)
			go w.run(&wg)
		}
	}

	if cfg.Interleave {
		// One worker pool mutating both words in the same loop body.
		spawn(atomicWord, racyWord)
	} else {
		if cfg.EnableAtomic {
			spawn(atomicWord)
		}
		if cfg.EnableRacy {
			spawn(racyWord)
		}
	}

	// The join: after Wait returns, every worker's effects are visible
	// to this goroutine, which is the only reason the racy Load below
	// reads anything meaningful.
	wg.Wait()

	var results []Result
	if cfg.EnableAtomic {
		results = append(results, observe(VariantAtomic, atomicWord))
	}
	if cfg.EnableRacy {
		results = append(results, observe(VariantUnsync, racyWord))
	}
	return results, nil
}

func observe(v Variant, c counter.Counter) Result {
	final := c.Load()
	return Result{
		Variant: v,
		Value:   final,
		Want:    0,
		Match:   final == 0,
	}
}
