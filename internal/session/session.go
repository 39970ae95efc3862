// Package session owns the mutable state of one tracking session: the
// in-memory project tree and the timer registry. All tree mutation goes
// through the session's lock, which stands in for the single logical
// actor of the original design; nothing else mutates the tree.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
	"project-tracker/internal/logging"
	"project-tracker/internal/registry"
	"project-tracker/internal/store"
)

// Session holds the project tree, the timer registry and the persistence
// gateway for the lifetime of one process.
type Session struct {
	mu         sync.Mutex
	projects   []domain.Project
	registry   *registry.Registry
	store      store.Store
	storageKey string
	now        func() time.Time
}

// New creates a Session backed by the given store. The tree starts empty
// until Load is called.
func New(st store.Store, storageKey string) *Session {
	return NewWithClock(st, storageKey, time.Now)
}

// NewWithClock creates a Session with an injected clock. Tests use this
// to simulate the passage of time.
func NewWithClock(st store.Store, storageKey string, now func() time.Time) *Session {
	return &Session{
		registry:   registry.New(),
		store:      st,
		storageKey: storageKey,
		now:        now,
	}
}

// Registry returns the session's timer registry.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Now returns the current instant from the session clock.
func (s *Session) Now() time.Time {
	return s.now()
}

// Load reads the project tree from the gateway, once, at startup. An
// absent value means no projects yet and is not an error.
func (s *Session) Load(ctx context.Context) error {
	value, found, err := s.store.Get(ctx, s.storageKey)
	if err != nil {
		return err
	}
	if !found {
		s.mu.Lock()
		s.projects = nil
		s.mu.Unlock()
		return nil
	}

	var projects []domain.Project
	if err := json.Unmarshal([]byte(value), &projects); err != nil {
		return errors.NewSerializationError("decode project tree", err)
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// Save serializes a snapshot of the whole tree and hands it to the
// gateway. Failures are logged and swallowed: the in-memory state stays
// authoritative and the next user action that saves will try again. No
// retry is scheduled here.
func (s *Session) Save(ctx context.Context) {
	s.mu.Lock()
	snapshot := domain.CloneProjects(s.projects)
	s.mu.Unlock()

	value, err := json.Marshal(snapshot)
	if err != nil {
		logging.Debugf("save skipped: encode project tree: %v\n", err)
		return
	}

	if err := s.store.Set(ctx, s.storageKey, string(value)); err != nil {
		logging.Debugf("save failed, keeping in-memory state: %v\n", err)
	}
}

// Projects returns a deep copy of the current project tree.
func (s *Session) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneProjects(s.projects)
}

// Mutate runs fn against the project tree under the session lock.
func (s *Session) Mutate(fn func(projects *[]domain.Project)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.projects)
}

// Project returns a deep copy of the project with the given id.
func (s *Session) Project(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			return s.projects[i].Clone(), true
		}
	}
	return domain.Project{}, false
}

// CommitEntry appends a finished time entry to the identified task and
// updates its running total. If the project or task no longer exists the
// commit is dropped and the elapsed time is lost; callers treat that as
// a silent no-op.
func (s *Session) CommitEntry(projectID, taskID string, entry domain.TimeEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		if task := s.projects[i].Task(taskID); task != nil {
			task.RecordEntry(entry)
			return true
		}
		return false
	}
	return false
}
