package main

import (
	"io"
	"testing"
)

// TestParseFlags_Defaults: no arguments yields the stock config.
func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	cfg := opts.config
	if cfg.Threads != 8 || cfg.Iterations != 1024 || cfg.Rounds != 1 {
		t.Errorf("defaults = threads %d, iters %d, rounds %d; want 8, 1024, 1",
			cfg.Threads, cfg.Iterations, cfg.Rounds)
	}
	if !cfg.EnableAtomic || !cfg.EnableRacy {
		t.Error("both variants should be enabled by default")
	}
	if cfg.Interleave {
		t.Error("interleave should default to off")
	}
	if opts.pprofAddr != "" {
		t.Errorf("pprofAddr = %q, want empty", opts.pprofAddr)
	}
}

// TestParseFlags_Values checks that every flag lands in the right
// field.
func TestParseFlags_Values(t *testing.T) {
	args := []string{
		"-threads=32", "-iters=2048", "-rounds=256",
		"-atomic=false", "-interleave=false",
		"-pprof", "localhost:6060",
	}

	opts, err := parseFlags(args, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	cfg := opts.config
	if cfg.Threads != 32 || cfg.Iterations != 2048 || cfg.Rounds != 256 {
		t.Errorf("parsed threads %d, iters %d, rounds %d; want 32, 2048, 256",
			cfg.Threads, cfg.Iterations, cfg.Rounds)
	}
	if cfg.EnableAtomic {
		t.Error("-atomic=false not applied")
	}
	if !cfg.EnableRacy {
		t.Error("unsync should remain enabled")
	}
	if opts.pprofAddr != "localhost:6060" {
		t.Errorf("pprofAddr = %q, want localhost:6060", opts.pprofAddr)
	}
}

// TestParseFlags_Invalid: unknown flags and malformed values are parse
// errors, reported before any validation runs.
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown_flag", args: []string{"-bogus"}},
		{name: "non_numeric_threads", args: []string{"-threads=lots"}},
		{name: "non_numeric_iters", args: []string{"-iters=many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, io.Discard); err == nil {
				t.Errorf("parseFlags(%v) = nil error, want parse failure", tt.args)
			}
		})
	}
}
