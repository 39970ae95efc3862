package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"project-tracker/internal/tick"
	"project-tracker/internal/tui"
)

// newTrackCommand builds the "track" command: the interactive session in
// which timers live. The tick scheduler runs for exactly the lifetime of
// this command and is torn down once on exit.
func (r *RootCommand) newTrackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Run an interactive tracking session",
		Long: `Run an interactive tracking session.

Timers started here are kept in memory only; quitting the session
discards any timer that was not stopped first. Stopped runs are
committed to their task and saved immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.New(r.services)
			program := tea.NewProgram(model, tea.WithAltScreen())

			scheduler := tick.New(r.session.Registry(), r.config.Tick.Interval, func() {
				program.Send(tui.RefreshMsg{})
			})
			scheduler.Run()
			defer scheduler.Stop()

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("tracking session failed: %w", err)
			}
			return nil
		},
	}
}
