// Package format holds the small formatting helpers shared by the CLI,
// calibration and verification output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// Kernel operations are often faster than a microsecond, so it shows
// nanoseconds below a microsecond, microseconds below a millisecond,
// milliseconds below a second, and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatWords describes an operand size in words and bits, e.g.
// "3 words (192 bits)".
func FormatWords(words, wordBits int) string {
	unit := "words"
	if words == 1 {
		unit = "word"
	}
	return fmt.Sprintf("%d %s (%d bits)", words, unit, words*wordBits)
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
