//go:build !race

package counter

// RaceDetectorEnabled reports whether the binary was built with -race.
const RaceDetectorEnabled = false
