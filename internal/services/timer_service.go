package services

import (
	"context"
	"time"

	"project-tracker/internal/domain"
	"project-tracker/internal/logging"
	"project-tracker/internal/registry"
	"project-tracker/internal/session"
)

// timerServiceImpl implements the TimerService interface
type timerServiceImpl struct {
	session *session.Session
}

// NewTimerService creates a new TimerService instance
func NewTimerService(sess *session.Session) TimerService {
	return &timerServiceImpl{session: sess}
}

// Start begins (or restarts) the timer for a task. The registry entry is
// overwritten unconditionally; there is no guard against a double start.
func (t *timerServiceImpl) Start(projectID, taskID string) {
	key := registry.Key{ProjectID: projectID, TaskID: taskID}
	t.session.Registry().Start(key, t.session.Now())
	logging.Debugf("timer started for task %s\n", taskID)
}

// Stop ends the timer and commits the finished run. The committed
// duration is always End - Start; the last displayed elapsed value only
// ever drove the live display. If the project or task was deleted while
// the timer ran, the commit is dropped silently and the time is lost.
func (t *timerServiceImpl) Stop(ctx context.Context, projectID, taskID string) (domain.TimeEntry, bool) {
	key := registry.Key{ProjectID: projectID, TaskID: taskID}

	startedAt, _, ok := t.session.Registry().Stop(key)
	if !ok {
		return domain.TimeEntry{}, false
	}

	entry := domain.NewTimeEntry(startedAt, t.session.Now())
	if !t.session.CommitEntry(projectID, taskID, entry) {
		logging.Debugf("commit dropped, task %s no longer exists\n", taskID)
		return domain.TimeEntry{}, false
	}

	t.session.Save(ctx)
	return entry, true
}

// Elapsed returns the displayed elapsed time for a task's timer.
func (t *timerServiceImpl) Elapsed(projectID, taskID string) (time.Duration, bool) {
	key := registry.Key{ProjectID: projectID, TaskID: taskID}
	timer, ok := t.session.Registry().Get(key)
	if !ok || !timer.Running {
		return 0, false
	}
	return timer.Elapsed, true
}

// Running lists every running timer with its project and task labels.
func (t *timerServiceImpl) Running() []RunningTimer {
	snapshot := t.session.Registry().Snapshot()
	projects := t.session.Projects()

	names := make(map[string]string, len(projects))
	texts := make(map[registry.Key]string)
	for _, project := range projects {
		names[project.ID] = project.Name
		for _, task := range project.Tasks {
			texts[registry.Key{ProjectID: project.ID, TaskID: task.ID}] = task.Text
		}
	}

	running := make([]RunningTimer, 0, len(snapshot))
	for key, timer := range snapshot {
		if !timer.Running {
			continue
		}
		running = append(running, RunningTimer{
			ProjectID:   key.ProjectID,
			TaskID:      key.TaskID,
			ProjectName: names[key.ProjectID],
			TaskText:    texts[key],
			StartedAt:   timer.StartedAt,
			Elapsed:     timer.Elapsed,
		})
	}
	return running
}
