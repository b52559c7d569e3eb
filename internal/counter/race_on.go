//go:build race

package counter

// RaceDetectorEnabled reports whether the binary was built with -race.
// Tests that mutate Racy concurrently consult this to skip themselves:
// the detector firing on the deliberate race would fail the run.
const RaceDetectorEnabled = true
