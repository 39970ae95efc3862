// Package tui implements the interactive tracking session. Timers only
// live for the lifetime of this session; quitting discards any run that
// was not stopped first.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"project-tracker/internal/domain"
	"project-tracker/internal/services"
)

// RefreshMsg is sent by the tick scheduler whenever at least one running
// timer was refreshed.
type RefreshMsg struct{}

// row is one selectable line in the flattened project/task tree.
type row struct {
	projectID   string
	projectName string
	task        *domain.Task
}

// Model is the bubbletea model for the tracking session.
type Model struct {
	services services.Container
	rows     []row
	cursor   int
	status   string
}

// New creates the tracking session model.
func New(container services.Container) *Model {
	m := &Model{services: container}
	m.reload()
	return m
}

// reload rebuilds the flattened rows from the current project tree.
func (m *Model) reload() {
	projects := m.services.Project.Projects()

	rows := make([]row, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, row{projectID: project.ID, projectName: project.Name})
		for i := range project.Tasks {
			task := project.Tasks[i]
			rows = append(rows, row{projectID: project.ID, projectName: project.Name, task: &task})
		}
	}
	m.rows = rows

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		// Elapsed values are read from the registry at render time; the
		// message only triggers a redraw.
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case " ":
		m.toggleTimer()
	case "c":
		m.toggleComplete()
	}
	return m, nil
}

// moveCursor moves the selection to the next task row in the given
// direction, skipping project header rows.
func (m *Model) moveCursor(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.rows); i += delta {
		if m.rows[i].task != nil {
			m.cursor = i
			return
		}
	}
}

// selectedTask returns the task under the cursor, if any.
func (m *Model) selectedTask() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	selected := m.rows[m.cursor]
	if selected.task == nil {
		return nil
	}
	return &selected
}

// toggleTimer starts the selected task's timer, or stops and commits it
// when already running.
func (m *Model) toggleTimer() {
	selected := m.selectedTask()
	if selected == nil {
		return
	}

	if _, running := m.services.Timer.Elapsed(selected.projectID, selected.task.ID); running {
		if entry, committed := m.services.Timer.Stop(context.Background(), selected.projectID, selected.task.ID); committed {
			m.status = "recorded " + entry.Duration.String() + " on " + selected.task.Text
		}
		m.reload()
		return
	}

	m.services.Timer.Start(selected.projectID, selected.task.ID)
	m.status = "tracking " + selected.task.Text
}

// toggleComplete flips the completed flag of the selected task.
func (m *Model) toggleComplete() {
	selected := m.selectedTask()
	if selected == nil {
		return
	}

	if err := m.services.Project.ToggleTask(context.Background(), selected.projectID, selected.task.ID); err != nil {
		// Fail-open: state refresh below shows whatever really happened.
		m.status = ""
	}
	m.reload()
}
