package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"project-tracker/internal/format"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	projectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	taskStyle = lipgloss.NewStyle().
			Padding(0, 1)

	taskSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Project Tracker"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(footerStyle.Render("No projects yet. Create one with: pt project add"))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		if r.task == nil {
			b.WriteString(projectStyle.Render(r.projectName))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderTask(i, r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderTask renders one task row with its live or committed time.
func (m *Model) renderTask(index int, r row) string {
	marker := "[ ]"
	if r.task.Completed {
		marker = "[x]"
	}

	elapsed, running := m.services.Timer.Elapsed(r.projectID, r.task.ID)

	var clock string
	if running {
		clock = runningStyle.Render("● " + format.Elapsed(elapsed))
	} else {
		clock = format.Elapsed(r.task.TotalTime)
	}

	text := r.task.Text
	if r.task.Completed {
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s  %s", marker, text, clock)
	if index == m.cursor {
		return taskSelectedStyle.Render(line)
	}
	return taskStyle.Render(line)
}

// renderFooter renders the running timers, the dashboard line and key
// help.
func (m *Model) renderFooter() string {
	dashboard := m.services.Reporting.Dashboard()

	var lines []string
	running := m.services.Timer.Running()
	sort.Slice(running, func(i, j int) bool {
		if running[i].ProjectName != running[j].ProjectName {
			return running[i].ProjectName < running[j].ProjectName
		}
		return running[i].TaskText < running[j].TaskText
	})
	for _, timer := range running {
		lines = append(lines, runningStyle.Render("●")+fmt.Sprintf(" %s / %s  %s",
			timer.ProjectName, timer.TaskText, format.Elapsed(timer.Elapsed)))
	}

	lines = append(lines, fmt.Sprintf("%d/%d tasks done · total %s",
		dashboard.CompletedTasks, dashboard.TotalTasks, format.Elapsed(dashboard.TotalTime)))
	if m.status != "" {
		lines = append(lines, m.status)
	}
	lines = append(lines, "space: start/stop · c: complete · j/k: move · q: quit")
	return footerStyle.Render(strings.Join(lines, "\n"))
}
