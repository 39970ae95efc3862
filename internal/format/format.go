package format

import (
	"fmt"
	"time"
)

// Elapsed formats an elapsed duration as zero-padded HH:MM:SS.
// Non-positive durations render as "00:00:00". Hours are not wrapped to
// days; long runs render as a plain hour count ("123:00:00").
func Elapsed(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
