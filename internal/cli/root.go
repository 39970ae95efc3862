package cli

import (
	"github.com/spf13/cobra"

	"project-tracker/internal/config"
	"project-tracker/internal/services"
	"project-tracker/internal/session"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	services     services.Container
	session      *session.Session
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewRootCommand creates the root cobra command and registers all
// subcommands.
func NewRootCommand(container services.Container, sess *session.Session, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		services:     container,
		session:      sess,
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "pt",
		Short: "A personal project and task tracker with per-task time tracking",
		Long: `Project Tracker (pt) tracks projects, their tasks and the time spent on
each task.

Timers are kept in memory for the lifetime of the interactive session
(pt track); the project tree itself is saved to local storage after
every change.

EXAMPLES:
  pt project add "website" --priority high   # Create a project
  pt task add website "design homepage"      # Add a task to it
  pt track                                   # Interactive session: run timers
  pt project list                            # Projects with progress and totals
  pt dashboard                               # Totals across all projects

CONFIGURATION:
  PT_STORAGE_DIR          Storage directory (default: ~/.pt)
  PT_STORAGE_FILENAME     Storage filename (default: pt.db)
  PT_STORAGE_KEY          Key the project tree is stored under (default: projects)
  PT_TICK_INTERVAL        Timer refresh cadence (default: 1s)
  PT_DEBUG                Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(
		root.newProjectCommand(),
		root.newTaskCommand(),
		root.newDashboardCommand(),
		root.newTrackCommand(),
	)

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}
