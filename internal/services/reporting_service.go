package services

import (
	"project-tracker/internal/session"
	"project-tracker/internal/stats"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	session *session.Session
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(sess *session.Session) ReportingService {
	return &reportingServiceImpl{session: sess}
}

// Dashboard recomputes the dashboard aggregates from the current tree.
// Nothing is cached; every render pass folds over the tree again.
func (r *reportingServiceImpl) Dashboard() stats.Dashboard {
	return stats.Summarize(r.session.Projects())
}

// ProjectSummary recomputes the per-project derived values.
func (r *reportingServiceImpl) ProjectSummary(projectID string) (stats.ProjectSummary, bool) {
	project, found := r.session.Project(projectID)
	if !found {
		return stats.ProjectSummary{}, false
	}
	return stats.SummarizeProject(project), true
}
