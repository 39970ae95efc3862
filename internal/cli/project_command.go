package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"project-tracker/internal/domain"
	apperrors "project-tracker/internal/errors"
	"project-tracker/internal/format"
)

// newProjectCommand builds the "project" command group.
func (r *RootCommand) newProjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		r.newProjectAddCommand(),
		r.newProjectListCommand(),
		r.newProjectDeleteCommand(),
		r.newProjectNotesCommand(),
	)
	return cmd
}

func (r *RootCommand) newProjectAddCommand() *cobra.Command {
	var (
		status   string
		priority string
		notes    string
		start    string
		end      string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Flags are parsed up front so a bad date cannot leave a
			// half-configured project behind.
			startDate, endDate, err := r.parseDates(start, end)
			if err != nil {
				return r.errorHandler.Handle("parse project dates", err)
			}

			project, err := r.services.Project.CreateProject(
				ctx,
				args[0],
				domain.ProjectStatus(status),
				domain.ProjectPriority(priority),
			)
			if err != nil {
				return r.errorHandler.Handle("create project", err)
			}

			if notes != "" {
				if err := r.services.Project.SetProjectNotes(ctx, project.ID, notes); err != nil {
					return r.errorHandler.Handle("set project notes", err)
				}
			}

			if startDate != nil || endDate != nil {
				if err := r.services.Project.SetProjectDates(ctx, project.ID, startDate, endDate); err != nil {
					return r.errorHandler.Handle("set project dates", err)
				}
			}

			fmt.Printf("Created project %q (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", string(domain.StatusPlanning), "Project status (planning, development, paused, completed)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Project priority (high, medium, low)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form project notes")
	cmd.Flags().StringVar(&start, "start", "", "Planned start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Planned end date (YYYY-MM-DD)")
	return cmd
}

func (r *RootCommand) newProjectListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects with their tasks and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := r.services.Project.Projects()
			if len(projects) == 0 {
				fmt.Println("No projects yet")
				return nil
			}

			for _, project := range projects {
				summary, _ := r.services.Reporting.ProjectSummary(project.ID)

				line := fmt.Sprintf("%s  [%s/%s]  time %s  pending %d",
					project.Name, project.Status, project.Priority,
					format.Elapsed(summary.TotalTime), summary.PendingTasks)
				if summary.Progress != nil {
					line += fmt.Sprintf("  progress %d%%", *summary.Progress)
				}
				fmt.Println(line)

				for _, task := range project.Tasks {
					marker := " "
					if task.Completed {
						marker = "x"
					}
					fmt.Printf("  [%s] %s  %s\n", marker, task.Text, format.Elapsed(task.TotalTime))
				}
			}
			return nil
		},
	}
}

func (r *RootCommand) newProjectDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project]",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(r.services.Project.Projects(), args[0])
			if err != nil {
				return r.errorHandler.Handle("delete project", err)
			}

			if err := r.services.Project.DeleteProject(cmd.Context(), project.ID); err != nil {
				return r.errorHandler.Handle("delete project", err)
			}
			fmt.Printf("Deleted project %q\n", project.Name)
			return nil
		},
	}
}

func (r *RootCommand) newProjectNotesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notes [project] [text]",
		Short: "Replace a project's notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(r.services.Project.Projects(), args[0])
			if err != nil {
				return r.errorHandler.Handle("set project notes", err)
			}

			if err := r.services.Project.SetProjectNotes(cmd.Context(), project.ID, args[1]); err != nil {
				return r.errorHandler.Handle("set project notes", err)
			}
			fmt.Printf("Updated notes for %q\n", project.Name)
			return nil
		},
	}
}

// parseDates parses the optional --start and --end flags and rejects a
// plan whose end precedes its start.
func (r *RootCommand) parseDates(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time
	if start != "" {
		parsed, err := time.Parse(r.config.Display.DateFormat, start)
		if err != nil {
			return nil, nil, err
		}
		startDate = &parsed
	}
	if end != "" {
		parsed, err := time.Parse(r.config.Display.DateFormat, end)
		if err != nil {
			return nil, nil, err
		}
		endDate = &parsed
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, nil, apperrors.NewValidationError("project end date is before its start date", nil)
	}
	return startDate, endDate, nil
}
