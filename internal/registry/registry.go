package registry

import (
	"sync"
	"time"
)

// Key identifies a running timer by its project and task.
type Key struct {
	ProjectID string
	TaskID    string
}

// ActiveTimer is the ephemeral state of one running timer. It lives only
// in process memory for the lifetime of the session and is never
// serialized; an in-progress run is discarded on process exit.
type ActiveTimer struct {
	Running   bool
	StartedAt time.Time
	Elapsed   time.Duration
}

// Registry is the in-memory table of currently running task timers.
// Timers for distinct tasks coexist without limit and never interfere.
type Registry struct {
	mu     sync.RWMutex
	timers map[Key]*ActiveTimer
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		timers: make(map[Key]*ActiveTimer),
	}
}

// Start begins a run for the given key. An existing entry is overwritten
// unconditionally: starting a task that is already running resets the run
// and the elapsed time of the first run is discarded, never committed.
func (r *Registry) Start(key Key, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timers[key] = &ActiveTimer{
		Running:   true,
		StartedAt: now,
		Elapsed:   0,
	}
}

// Stop ends the run for the given key and removes it from the registry.
// It returns the instant the run started and the last displayed elapsed
// value. Stopping a key with no running timer is a no-op and reports
// ok == false; there is nothing to commit.
func (r *Registry) Stop(key Key) (startedAt time.Time, elapsed time.Duration, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, exists := r.timers[key]
	if !exists || !timer.Running {
		return time.Time{}, 0, false
	}

	delete(r.timers, key)
	return timer.StartedAt, timer.Elapsed, true
}

// Get returns a copy of the timer state for the given key.
func (r *Registry) Get(key Key) (ActiveTimer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	timer, exists := r.timers[key]
	if !exists {
		return ActiveTimer{}, false
	}
	return *timer, true
}

// Refresh recomputes the displayed elapsed time for every running timer
// as a wall-clock subtraction from the original start instant. Measuring
// from StartedAt rather than accumulating tick intervals keeps the value
// correct across system sleep and late ticks. It returns the number of
// running timers that were refreshed.
func (r *Registry) Refresh(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	refreshed := 0
	for _, timer := range r.timers {
		if !timer.Running {
			continue
		}
		timer.Elapsed = now.Sub(timer.StartedAt)
		refreshed++
	}
	return refreshed
}

// Snapshot returns a copy of all timers keyed by task.
func (r *Registry) Snapshot() map[Key]ActiveTimer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[Key]ActiveTimer, len(r.timers))
	for key, timer := range r.timers {
		snapshot[key] = *timer
	}
	return snapshot
}

// Len returns the number of timers in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.timers)
}
