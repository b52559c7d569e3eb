// Package main implements the xorrace CLI.
//
// xorrace runs one concurrency experiment: it XORs random operands into
// two shared 64-bit counters from many goroutines at once — one counter
// mutated through an atomic fetch-xor, the other through a deliberately
// unsynchronized load/xor/store — and reports both final values in full
// 64-bit binary. Each worker applies its operand an even number of
// times, so a correct counter always comes back to zero; whatever the
// unsynchronized counter shows instead is the data race made visible.
//
// Usage:
//
//	xorrace [flags]
//	xorrace version
//	xorrace help
//
// A nonzero unsync value is an observation, not an error: the process
// exits 0 after printing its report no matter what the race produced.
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/felixge/fgprof"

	"github.com/kolkov/xorrace/harness"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Printf("xorrace version %s\n", harness.Version)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		// parseFlags already printed the problem and defaults.
		os.Exit(2)
	}

	if err := opts.config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "xorrace: %v\n", err)
		os.Exit(2)
	}

	if opts.pprofAddr != "" {
		// Wall-clock profile alongside the stock pprof handlers;
		// fgprof also sees time spent blocked, which is most of what
		// a contention experiment does.
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			log.Println(http.ListenAndServe(opts.pprofAddr, nil))
		}()
	}

	start := time.Now()
	results, err := harness.Run(opts.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xorrace: %v\n", err)
		os.Exit(2)
	}

	// Report lines are the program's only stdout output; timing goes
	// to stderr so the report stays machine-readable.
	fmt.Print(harness.Report(results))
	fmt.Fprintf(os.Stderr, "took %v\n", time.Since(start).Round(time.Microsecond))
}

func printUsage() {
	fmt.Print(`xorrace - empirical data-race observation harness

USAGE:
    xorrace [flags]
    xorrace version
    xorrace help

FLAGS:
    -threads N      workers per enabled counter variant (default 8)
    -iters N        fetch-xor calls per worker per round; must be even
                    (default 1024)
    -rounds N       fresh operands drawn per worker (default 1)
    -atomic         mutate the atomic control counter (default true)
    -unsync         mutate the unsynchronized counter (default true)
    -interleave     one worker pool hitting both counters in the same
                    loop body, the original experiment's shape
    -pprof ADDR     serve net/http/pprof and fgprof on ADDR
                    (e.g. localhost:6060)

OUTPUT:
    One line per enabled variant, the final counter value as all 64
    bits, most significant first:

        atomic: 0000000000000000000000000000000000000000000000000000000000000000
        unsync: 0000000000000000000000000000000010000100000100010001100001000100

    Every worker XORs its operand an even number of times, so a counter
    that loses no updates ends at zero. The atomic line is therefore
    always zero; the unsync line shows whatever the data race left
    behind. Elapsed wall time is printed to stderr.

EXIT STATUS:
    0 after printing a report, regardless of what the race produced.
    2 on a configuration error, before any worker is spawned.
`)
}
