// Package numfmt formats numbers as durations and file sizes.
package numfmt

import (
	"fmt"
	"time"
)

const (
	kilobyte = 1024
	megabyte = kilobyte * 1024
	gigabyte = megabyte * 1024
	terabyte = gigabyte * 1024
	petabyte = terabyte * 1024
)

// SecondsToTimestring formats a number of seconds as the HH:MM:SS wall clock
// reached that many seconds after midnight UTC. Values of a day or more wrap.
func SecondsToTimestring(seconds float64) string {
	return time.UnixMilli(int64(seconds * 1000)).UTC().Format("15:04:05")
}

// Filesize renders a byte count with power-of-two units and two decimals.
// Thresholds are strict, so exactly 1024 bytes is still "1024 bytes".
func Filesize(n float64) string {
	switch {
	case n > petabyte:
		return fmt.Sprintf("%.2f PB", n/petabyte)
	case n > terabyte:
		return fmt.Sprintf("%.2f TB", n/terabyte)
	case n > gigabyte:
		return fmt.Sprintf("%.2f GB", n/gigabyte)
	case n > megabyte:
		return fmt.Sprintf("%.2f MB", n/megabyte)
	case n > kilobyte:
		return fmt.Sprintf("%.2f KB", n/kilobyte)
	}
	return formatPlain(n) + " bytes"
}

// formatPlain prints integral values without a decimal point.
func formatPlain(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
