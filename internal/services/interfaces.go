package services

import (
	"context"
	"time"

	"project-tracker/internal/domain"
	"project-tracker/internal/stats"
)

// RunningTimer describes one running timer for display purposes.
type RunningTimer struct {
	ProjectID   string
	TaskID      string
	ProjectName string
	TaskText    string
	StartedAt   time.Time
	Elapsed     time.Duration
}

// TimerService drives the per-task timers. None of its operations
// surface errors: failures are absorbed so the caller stays responsive,
// by design for a personal productivity tool.
type TimerService interface {
	// Start begins (or restarts) the timer for a task. Starting a task
	// that is already running resets the run.
	Start(projectID, taskID string)

	// Stop ends the timer, commits the finished run as a time entry on
	// the task and asks the gateway to save the tree. Stopping an idle
	// task is a no-op and reports committed == false.
	Stop(ctx context.Context, projectID, taskID string) (entry domain.TimeEntry, committed bool)

	// Elapsed returns the displayed elapsed time for a task's timer.
	Elapsed(projectID, taskID string) (time.Duration, bool)

	// Running lists every running timer, decorated with project and task
	// labels where those still exist.
	Running() []RunningTimer
}

// ProjectService handles project and task lifecycle operations.
type ProjectService interface {
	CreateProject(ctx context.Context, name string, status domain.ProjectStatus, priority domain.ProjectPriority) (domain.Project, error)
	SetProjectDates(ctx context.Context, projectID string, start, end *time.Time) error
	SetProjectNotes(ctx context.Context, projectID, notes string) error
	SetProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus) error
	DeleteProject(ctx context.Context, projectID string) error

	AddTask(ctx context.Context, projectID, text string) (domain.Task, error)
	ToggleTask(ctx context.Context, projectID, taskID string) error
	DeleteTask(ctx context.Context, projectID, taskID string) error

	Projects() []domain.Project
}

// ReportingService derives dashboard statistics from the current tree.
type ReportingService interface {
	Dashboard() stats.Dashboard
	ProjectSummary(projectID string) (stats.ProjectSummary, bool)
}

// Container bundles the services handed to the CLI shell.
type Container struct {
	Timer     TimerService
	Project   ProjectService
	Reporting ReportingService
}
