package history

import (
	"fmt"

	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {

	sidebarWidth := 40
	if m.width < 100 {
		sidebarWidth = m.width / 3
	}
	if sidebarWidth < 25 {
		sidebarWidth = 25
	}

	detailsWidth := m.width - sidebarWidth - 4
	panelHeight := m.height - 4

	if detailsWidth < 30 {
		detailsWidth = 30
	}
	if panelHeight < 10 {
		panelHeight = 10
	}

	sidebar := m.renderSolutionList(sidebarWidth, panelHeight)
	details := m.renderDetailsPanel(detailsWidth, panelHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, details)
}

func (m Model) renderSolutionList(width, height int) string {

	borderColor := theme.Line
	if m.focus == FocusSidebar {
		borderColor = theme.Teal
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height)

	headerStyle := lipgloss.NewStyle().
		Foreground(theme.Sky).
		Bold(true)

	countStyle := lipgloss.NewStyle().
		Foreground(theme.Slate)

	header := headerStyle.Render(" ↺ History")
	if len(m.solutions) > 0 {
		header += countStyle.Render(fmt.Sprintf(" [%d/%d]", m.list.Index()+1, len(m.solutions)))
	}

	content := header + "\n" + m.list.View()

	return panelStyle.Render(content)
}

func (m Model) renderDetailsPanel(width, height int) string {

	borderColor := theme.Line
	if m.focus == FocusMain {
		borderColor = theme.Teal
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height)

	headerStyle := lipgloss.NewStyle().
		Foreground(theme.Sky).
		Bold(true)

	header := headerStyle.Render(" ∴ Solution")

	content := header + "\n" + m.viewport.View()

	return panelStyle.Render(content)
}
