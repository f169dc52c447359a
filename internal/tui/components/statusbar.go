package components

import (
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusLabelStyle = lipgloss.NewStyle().Foreground(theme.Sky).Bold(true)
	statusSepStyle   = lipgloss.NewStyle().Foreground(theme.Slate)
)

// StatusBar renders the short help line for the active tab, the focused
// panel label, and optionally the provider connection info.
type StatusBar struct {
	Width int
	help  help.Model
}

func NewStatusBar() StatusBar {
	h := help.New()
	h.ShowAll = false
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Teal).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Slate)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Line)
	return StatusBar{help: h}
}

func (s StatusBar) SetWidth(w int) StatusBar {
	s.Width = w
	return s
}

func (s StatusBar) Render(keys help.KeyMap, focusLabel string) string {
	return s.RenderWithInfo(keys, focusLabel, "")
}

func (s StatusBar) RenderWithInfo(keys help.KeyMap, focusLabel, info string) string {
	content := s.help.View(keys) +
		statusSepStyle.Render(" │ [") +
		statusLabelStyle.Render(focusLabel) +
		statusSepStyle.Render("]")
	if info != "" {
		content += statusSepStyle.Render(" │ " + info)
	}
	return theme.StatusBar.Width(s.Width).MaxWidth(s.Width).Render(content)
}
