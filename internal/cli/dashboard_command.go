package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"project-tracker/internal/format"
)

// newDashboardCommand builds the "dashboard" command.
func (r *RootCommand) newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals across all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard := r.services.Reporting.Dashboard()

			fmt.Printf("Tasks:      %d/%d completed\n", dashboard.CompletedTasks, dashboard.TotalTasks)
			fmt.Printf("Total time: %s\n", format.Elapsed(dashboard.TotalTime))
			return nil
		},
	}
}
