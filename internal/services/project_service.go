package services

import (
	"context"
	"time"

	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
	"project-tracker/internal/session"
	"project-tracker/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	session          *session.Session
	projectValidator *validation.ProjectValidator
	taskValidator    *validation.TaskValidator
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(sess *session.Session, projectValidator *validation.ProjectValidator, taskValidator *validation.TaskValidator) ProjectService {
	return &projectServiceImpl{
		session:          sess,
		projectValidator: projectValidator,
		taskValidator:    taskValidator,
	}
}

// CreateProject validates the input, appends a new project to the tree
// and saves.
func (p *projectServiceImpl) CreateProject(ctx context.Context, name string, status domain.ProjectStatus, priority domain.ProjectPriority) (domain.Project, error) {
	if err := p.projectValidator.ValidateForCreation(name, status, priority); err != nil {
		return domain.Project{}, err
	}

	project := domain.NewProject(name, status, priority, p.session.Now())
	p.session.Mutate(func(projects *[]domain.Project) {
		*projects = append(*projects, project)
	})
	p.session.Save(ctx)
	return project, nil
}

// SetProjectDates sets the planned start and end dates.
func (p *projectServiceImpl) SetProjectDates(ctx context.Context, projectID string, start, end *time.Time) error {
	if err := p.projectValidator.ValidateDates(start, end); err != nil {
		return err
	}

	return p.updateProject(ctx, projectID, func(project *domain.Project) {
		project.StartDate = start
		project.EndDate = end
	})
}

// SetProjectNotes replaces the project's notes text.
func (p *projectServiceImpl) SetProjectNotes(ctx context.Context, projectID, notes string) error {
	return p.updateProject(ctx, projectID, func(project *domain.Project) {
		project.Notes = notes
	})
}

// SetProjectStatus moves the project to a new lifecycle state.
func (p *projectServiceImpl) SetProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus) error {
	if !status.IsValid() {
		return errors.NewValidationError("unknown project status", nil).
			WithContext("status", string(status))
	}
	return p.updateProject(ctx, projectID, func(project *domain.Project) {
		project.Status = status
	})
}

// DeleteProject removes the project and, with it, all of its tasks.
func (p *projectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	found := false
	p.session.Mutate(func(projects *[]domain.Project) {
		for i := range *projects {
			if (*projects)[i].ID == projectID {
				*projects = append((*projects)[:i], (*projects)[i+1:]...)
				found = true
				return
			}
		}
	})
	if !found {
		return errors.NewNotFoundError("project", projectID)
	}
	p.session.Save(ctx)
	return nil
}

// AddTask validates the text and appends a new task to the project.
func (p *projectServiceImpl) AddTask(ctx context.Context, projectID, text string) (domain.Task, error) {
	if err := p.taskValidator.ValidateText(text); err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(text)
	err := p.updateProject(ctx, projectID, func(project *domain.Project) {
		project.Tasks = append(project.Tasks, task)
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ToggleTask flips the completed flag on a task.
func (p *projectServiceImpl) ToggleTask(ctx context.Context, projectID, taskID string) error {
	return p.updateTask(ctx, projectID, taskID, func(task *domain.Task) {
		task.Completed = !task.Completed
	})
}

// DeleteTask removes a task from its project.
func (p *projectServiceImpl) DeleteTask(ctx context.Context, projectID, taskID string) error {
	found := false
	err := p.updateProject(ctx, projectID, func(project *domain.Project) {
		for i := range project.Tasks {
			if project.Tasks[i].ID == taskID {
				project.Tasks = append(project.Tasks[:i], project.Tasks[i+1:]...)
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return errors.NewNotFoundError("task", taskID)
	}
	return nil
}

// Projects returns a copy of the current project tree.
func (p *projectServiceImpl) Projects() []domain.Project {
	return p.session.Projects()
}

// updateProject applies fn to the identified project and saves.
func (p *projectServiceImpl) updateProject(ctx context.Context, projectID string, fn func(project *domain.Project)) error {
	found := false
	p.session.Mutate(func(projects *[]domain.Project) {
		for i := range *projects {
			if (*projects)[i].ID == projectID {
				fn(&(*projects)[i])
				found = true
				return
			}
		}
	})
	if !found {
		return errors.NewNotFoundError("project", projectID)
	}
	p.session.Save(ctx)
	return nil
}

// updateTask applies fn to the identified task and saves.
func (p *projectServiceImpl) updateTask(ctx context.Context, projectID, taskID string, fn func(task *domain.Task)) error {
	taskFound := false
	err := p.updateProject(ctx, projectID, func(project *domain.Project) {
		if task := project.Task(taskID); task != nil {
			fn(task)
			taskFound = true
		}
	})
	if err != nil {
		return err
	}
	if !taskFound {
		return errors.NewNotFoundError("task", taskID)
	}
	return nil
}
