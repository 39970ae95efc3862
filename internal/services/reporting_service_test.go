package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/domain"
	"project-tracker/internal/session"
	"project-tracker/internal/store"
	"project-tracker/internal/validation"
)

func setupReportingFixture(t *testing.T) (*session.Session, ProjectService, ReportingService) {
	t.Helper()

	sess := session.New(store.NewMemoryStore(), "projects")
	projectService := NewProjectService(
		sess,
		validation.NewProjectValidator(1, 255),
		validation.NewTaskValidator(500),
	)
	return sess, projectService, NewReportingService(sess)
}

func TestReportingService_Dashboard(t *testing.T) {
	_, projects, reporting := setupReportingFixture(t)
	ctx := context.Background()

	t.Run("should yield zeros for an empty tree", func(t *testing.T) {
		dashboard := reporting.Dashboard()

		assert.Equal(t, 0, dashboard.CompletedTasks)
		assert.Equal(t, 0, dashboard.TotalTasks)
		assert.Equal(t, time.Duration(0), dashboard.TotalTime)
	})

	first, err := projects.CreateProject(ctx, "website", domain.StatusDevelopment, domain.PriorityHigh)
	require.NoError(t, err)
	_, err = projects.CreateProject(ctx, "empty", domain.StatusPlanning, domain.PriorityLow)
	require.NoError(t, err)

	done, err := projects.AddTask(ctx, first.ID, "done task")
	require.NoError(t, err)
	require.NoError(t, projects.ToggleTask(ctx, first.ID, done.ID))
	_, err = projects.AddTask(ctx, first.ID, "pending task")
	require.NoError(t, err)

	t.Run("should count tasks across all projects", func(t *testing.T) {
		dashboard := reporting.Dashboard()

		assert.Equal(t, 1, dashboard.CompletedTasks)
		assert.Equal(t, 2, dashboard.TotalTasks)
	})
}

func TestReportingService_Dashboard_SumsCommittedTime(t *testing.T) {
	sess, projects, reporting := setupReportingFixture(t)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "website", domain.StatusDevelopment, domain.PriorityHigh)
	require.NoError(t, err)
	task, err := projects.AddTask(ctx, project.ID, "design homepage")
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sess.CommitEntry(project.ID, task.ID, domain.NewTimeEntry(start, start.Add(5*time.Second)))
	sess.CommitEntry(project.ID, task.ID, domain.NewTimeEntry(start.Add(time.Hour), start.Add(time.Hour+3*time.Second)))

	dashboard := reporting.Dashboard()

	assert.Equal(t, 8*time.Second, dashboard.TotalTime)
}

func TestReportingService_ProjectSummary(t *testing.T) {
	_, projects, reporting := setupReportingFixture(t)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "website", domain.StatusDevelopment, domain.PriorityHigh)
	require.NoError(t, err)
	done, err := projects.AddTask(ctx, project.ID, "done")
	require.NoError(t, err)
	require.NoError(t, projects.ToggleTask(ctx, project.ID, done.ID))
	_, err = projects.AddTask(ctx, project.ID, "pending")
	require.NoError(t, err)

	t.Run("should omit progress without a planned date range", func(t *testing.T) {
		summary, found := reporting.ProjectSummary(project.ID)

		require.True(t, found)
		assert.Equal(t, 1, summary.PendingTasks)
		assert.Nil(t, summary.Progress)
	})

	t.Run("should compute progress once dates are planned", func(t *testing.T) {
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		require.NoError(t, projects.SetProjectDates(ctx, project.ID, &start, &end))

		summary, found := reporting.ProjectSummary(project.ID)

		require.True(t, found)
		require.NotNil(t, summary.Progress)
		assert.Equal(t, 50, *summary.Progress)
	})

	t.Run("should report missing project", func(t *testing.T) {
		_, found := reporting.ProjectSummary("missing")
		assert.False(t, found)
	})
}
