// Package stats derives dashboard statistics from the project tree.
// Every function is a pure fold over its input, recomputed on demand;
// nothing here is cached or incrementally maintained.
package stats

import (
	"math"
	"time"

	"project-tracker/internal/domain"
)

// Dashboard holds the summary statistics shown on the dashboard.
type Dashboard struct {
	CompletedTasks int
	TotalTasks     int
	TotalTime      time.Duration
}

// ProjectSummary holds per-project derived values.
type ProjectSummary struct {
	PendingTasks int
	TotalTime    time.Duration

	// Progress is the rounded completion percentage. It is only computed
	// when the project has both a start and an end date; otherwise nil.
	Progress *int
}

// Summarize folds over the whole project tree. Empty trees yield
// zero-valued aggregates.
func Summarize(projects []domain.Project) Dashboard {
	var dashboard Dashboard
	for _, project := range projects {
		for _, task := range project.Tasks {
			dashboard.TotalTasks++
			if task.Completed {
				dashboard.CompletedTasks++
			}
			dashboard.TotalTime += task.TotalTime
		}
	}
	return dashboard
}

// SummarizeProject derives the per-project dashboard values.
func SummarizeProject(project domain.Project) ProjectSummary {
	var summary ProjectSummary
	completed := 0
	for _, task := range project.Tasks {
		if task.Completed {
			completed++
		} else {
			summary.PendingTasks++
		}
		summary.TotalTime += task.TotalTime
	}

	if project.StartDate != nil && project.EndDate != nil {
		// An empty task list counts as denominator 1 so the division is
		// always defined.
		denominator := len(project.Tasks)
		if denominator == 0 {
			denominator = 1
		}
		progress := int(math.Round(float64(completed) / float64(denominator) * 100))
		summary.Progress = &progress
	}

	return summary
}
