package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newTaskCommand builds the "task" command group.
func (r *RootCommand) newTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks within a project",
	}

	cmd.AddCommand(
		r.newTaskAddCommand(),
		r.newTaskDoneCommand(),
		r.newTaskDeleteCommand(),
	)
	return cmd
}

func (r *RootCommand) newTaskAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [project] [text...]",
		Short: "Add a task to a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(r.services.Project.Projects(), args[0])
			if err != nil {
				return r.errorHandler.Handle("add task", err)
			}

			text := strings.Join(args[1:], " ")
			task, err := r.services.Project.AddTask(cmd.Context(), project.ID, text)
			if err != nil {
				return r.errorHandler.Handle("add task", err)
			}

			fmt.Printf("Added task %q to %q\n", task.Text, project.Name)
			return nil
		},
	}
}

func (r *RootCommand) newTaskDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done [project] [task]",
		Short: "Toggle a task's completed state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(r.services.Project.Projects(), args[0])
			if err != nil {
				return r.errorHandler.Handle("toggle task", err)
			}
			task, err := resolveTask(project, args[1])
			if err != nil {
				return r.errorHandler.Handle("toggle task", err)
			}

			if err := r.services.Project.ToggleTask(cmd.Context(), project.ID, task.ID); err != nil {
				return r.errorHandler.Handle("toggle task", err)
			}

			if task.Completed {
				fmt.Printf("Reopened task %q\n", task.Text)
			} else {
				fmt.Printf("Completed task %q\n", task.Text)
			}
			return nil
		},
	}
}

func (r *RootCommand) newTaskDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project] [task]",
		Short: "Delete a task from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(r.services.Project.Projects(), args[0])
			if err != nil {
				return r.errorHandler.Handle("delete task", err)
			}
			task, err := resolveTask(project, args[1])
			if err != nil {
				return r.errorHandler.Handle("delete task", err)
			}

			if err := r.services.Project.DeleteTask(cmd.Context(), project.ID, task.ID); err != nil {
				return r.errorHandler.Handle("delete task", err)
			}
			fmt.Printf("Deleted task %q\n", task.Text)
			return nil
		},
	}
}
