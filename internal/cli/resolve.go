package cli

import (
	"project-tracker/internal/domain"
	"project-tracker/internal/errors"
)

// resolveProject finds a project by id or exact name.
func resolveProject(projects []domain.Project, ref string) (domain.Project, error) {
	for _, project := range projects {
		if project.ID == ref || project.Name == ref {
			return project, nil
		}
	}
	return domain.Project{}, errors.NewNotFoundError("project", ref)
}

// resolveTask finds a task within a project by id or exact text.
func resolveTask(project domain.Project, ref string) (domain.Task, error) {
	for _, task := range project.Tasks {
		if task.ID == ref || task.Text == ref {
			return task, nil
		}
	}
	return domain.Task{}, errors.NewNotFoundError("task", ref)
}
