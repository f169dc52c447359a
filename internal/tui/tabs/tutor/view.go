package tutor

import (
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/tui/components"
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}

	var content strings.Builder
	content.WriteString(m.renderHeaderBar(width) + "\n")

	chatBox := components.NewPanel(" ◇ Conversation").SetSize(width, m.height-10).Render(m.chatBody())
	content.WriteString(chatBox + "\n")

	inputPanel := components.NewPanel("")
	if m.insertMode {
		inputPanel = inputPanel.SetFocus(components.FocusInsert)
	}
	content.WriteString(inputPanel.SetSize(width, 3).Render(m.input.View()))

	return content.String()
}

func (m Model) renderHeaderBar(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Sky).Render("◇ Tutor")

	var badge string
	if m.connected {
		badge = lipgloss.NewStyle().
			Background(theme.Mint).
			Foreground(theme.Ink).
			Padding(0, 1).
			Bold(true).
			Render(m.provider + " ● " + m.model)
	} else {
		badge = lipgloss.NewStyle().
			Background(theme.Shade).
			Foreground(theme.Chalk).
			Padding(0, 1).
			Render("offline ○")
	}

	spacerWidth := width - lipgloss.Width(title) - lipgloss.Width(badge)
	spacer := ""
	if spacerWidth > 0 {
		spacer = strings.Repeat(" ", spacerWidth)
	}

	return lipgloss.NewStyle().
		Background(theme.Board).
		Width(width).
		Padding(0, 1).
		Render(title + spacer + badge)
}

func (m Model) chatBody() string {
	if !m.connected {
		return theme.Dim.Render("No language model connected.\nRun 'quantumin connect --api-key ...' or set QUANTUMIN_API_KEY.")
	}
	if len(m.transcript) == 0 && !m.waiting {
		return theme.Dim.Render("Press i and ask a question.")
	}
	return m.viewport.View()
}
