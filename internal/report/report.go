// Package report renders experiment results for output.
//
// The one interesting job here is the fixed-width binary rendering:
// every final counter value is shown as all 64 bits, most significant
// first, so corrupted runs are visually comparable against the all-zero
// expectation.
package report

import (
	"fmt"
	"strings"

	"github.com/kolkov/xorrace/internal/experiment"
)

// FormatBits renders v as exactly 64 '0'/'1' characters, MSB first,
// leading zeros included. Pure function.
func FormatBits(v uint64) string {
	var b [64]byte
	for i := 63; i >= 0; i-- {
		b[i] = '0' + byte(v&1)
		v >>= 1
	}
	return string(b[:])
}

// Line renders one result as its labeled report line, e.g.
//
//	unsync: 0000...0000
func Line(r experiment.Result) string {
	return fmt.Sprintf("%s: %s", r.Variant, FormatBits(r.Value))
}

// Render renders the full report, one line per result, in the order the
// runner produced them. The trailing newline is included when there is
// at least one result.
func Render(results []experiment.Result) string {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(Line(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
