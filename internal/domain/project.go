package domain

import (
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	StatusPlanning    ProjectStatus = "planning"
	StatusDevelopment ProjectStatus = "development"
	StatusPaused      ProjectStatus = "paused"
	StatusCompleted   ProjectStatus = "completed"
)

// IsValid checks if the status is one of the known values.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusDevelopment, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// ProjectPriority represents the priority of a project.
type ProjectPriority string

const (
	PriorityHigh   ProjectPriority = "high"
	PriorityMedium ProjectPriority = "medium"
	PriorityLow    ProjectPriority = "low"
)

// IsValid checks if the priority is one of the known values.
func (p ProjectPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Project represents a project and owns its tasks. Tasks are destroyed
// with the project.
type Project struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    ProjectStatus   `json:"status"`
	Priority  ProjectPriority `json:"priority"`
	StartDate *time.Time      `json:"startDate,omitempty"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	Tasks     []Task          `json:"tasks"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewProject creates a new Project with a generated identifier.
func NewProject(name string, status ProjectStatus, priority ProjectPriority, createdAt time.Time) Project {
	return Project{
		ID:        NewID(),
		Name:      name,
		Status:    status,
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

// Task returns a pointer to the task with the given id, or nil.
func (p *Project) Task(id string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	clone := p
	if p.StartDate != nil {
		start := *p.StartDate
		clone.StartDate = &start
	}
	if p.EndDate != nil {
		end := *p.EndDate
		clone.EndDate = &end
	}
	if p.Tasks != nil {
		clone.Tasks = make([]Task, len(p.Tasks))
		for i, task := range p.Tasks {
			clone.Tasks[i] = task.Clone()
		}
	}
	return clone
}

// CloneProjects returns a deep copy of a project tree.
func CloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	clones := make([]Project, len(projects))
	for i, p := range projects {
		clones[i] = p.Clone()
	}
	return clones
}
