package domain

import (
	"time"
)

// TimeEntry represents one finished timer run on a task.
// Entries are immutable once created and are kept in insertion order.
type TimeEntry struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// NewTimeEntry creates a TimeEntry for the given run.
// Duration is always derived as End - Start, the canonical rule; the
// last displayed elapsed value is never used for the committed duration.
func NewTimeEntry(start, end time.Time) TimeEntry {
	return TimeEntry{
		Start:    start,
		End:      end,
		Duration: end.Sub(start),
	}
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.Start.IsZero() {
		return false
	}
	if te.End.Before(te.Start) {
		return false
	}
	return te.Duration == te.End.Sub(te.Start)
}
