package solve

import (
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/textutil"
	"github.com/DanOgh07/quantumin-solver/internal/tui/components"
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 30

func (m Model) View() string {
	sidebar := m.renderSidebar()
	main := m.renderMain()
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

func (m Model) renderSidebar() string {
	panel := components.NewPanel(" ≡ Examples").SetSize(sidebarWidth, m.height-4)

	var b strings.Builder
	for _, ex := range Examples {
		label := textutil.TruncateWithEllipsis(ex, sidebarWidth-4)
		b.WriteString(theme.Dim.Render("• ") + label + "\n")
	}
	b.WriteString("\n" + theme.Dim.Render("press e to cycle"))

	return panel.Render(b.String())
}

func (m Model) renderMain() string {
	width := m.width - sidebarWidth - 4
	if width < 40 {
		width = 40
	}

	inputPanel := components.NewPanel(" λ Problem")
	if m.insertMode {
		inputPanel = inputPanel.SetFocus(components.FocusInsert)
	} else if m.focus == FocusMain {
		inputPanel = inputPanel.SetFocus(components.FocusFocused)
	}
	inputBox := inputPanel.SetSize(width, 3).Render(m.input.View())

	var body string
	switch {
	case m.solving:
		body = theme.Dim.Render("solving...")
	case m.errText != "":
		body = m.viewport.View()
	case m.solution != nil:
		body = m.viewport.View()
	default:
		body = theme.Dim.Render("Type a problem and press Enter.\nPlain questions work too when a model is connected.")
	}
	resultBox := components.NewPanel(" ∴ Solution").SetSize(width, m.height-9).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, inputBox, resultBox)
}
