// flags.go turns command-line flags into a harness configuration.
package main

import (
	"flag"
	"io"

	"github.com/kolkov/xorrace/harness"
)

// options is everything the CLI layer decides: the experiment config
// plus concerns that never reach the harness.
type options struct {
	config    harness.Config
	pprofAddr string
}

// parseFlags parses args (not including the program name). Parse
// errors are reported to errOut before this returns.
func parseFlags(args []string, errOut io.Writer) (options, error) {
	defaults := harness.DefaultConfig()

	fs := flag.NewFlagSet("xorrace", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var opts options
	fs.IntVar(&opts.config.Threads, "threads", defaults.Threads,
		"workers per enabled counter variant")
	fs.IntVar(&opts.config.Iterations, "iters", defaults.Iterations,
		"fetch-xor calls per worker per round (must be even)")
	fs.IntVar(&opts.config.Rounds, "rounds", defaults.Rounds,
		"fresh operands drawn per worker")
	fs.BoolVar(&opts.config.EnableAtomic, "atomic", defaults.EnableAtomic,
		"mutate the atomic control counter")
	fs.BoolVar(&opts.config.EnableRacy, "unsync", defaults.EnableRacy,
		"mutate the unsynchronized counter")
	fs.BoolVar(&opts.config.Interleave, "interleave", false,
		"hit both counters from one worker pool, in the same loop body")
	fs.StringVar(&opts.pprofAddr, "pprof", "",
		"serve net/http/pprof and fgprof on this address")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}
