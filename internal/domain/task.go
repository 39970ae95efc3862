package domain

import (
	"time"
)

// Task represents a single task within a project.
type Task struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Completed   bool          `json:"completed"`
	TimeEntries []TimeEntry   `json:"timeEntries"`
	TotalTime   time.Duration `json:"totalTime"`
}

// NewTask creates a new Task with a generated identifier.
func NewTask(text string) Task {
	return Task{
		ID:   NewID(),
		Text: text,
	}
}

// RecordEntry appends a finished time entry and updates the running total.
// TimeEntries is append-only; after this call TotalTime equals the sum of
// all entry durations.
func (t *Task) RecordEntry(entry TimeEntry) {
	t.TimeEntries = append(t.TimeEntries, entry)
	t.TotalTime += entry.Duration
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	clone := t
	if t.TimeEntries != nil {
		clone.TimeEntries = make([]TimeEntry, len(t.TimeEntries))
		copy(clone.TimeEntries, t.TimeEntries)
	}
	return clone
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.ID == "" || t.Text == "" {
		return false
	}
	var sum time.Duration
	for _, entry := range t.TimeEntries {
		if !entry.IsValid() {
			return false
		}
		sum += entry.Duration
	}
	return sum == t.TotalTime
}
