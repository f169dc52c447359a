package components

import (
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// TabBar renders the top tab strip with an insert-mode badge on the right.
type TabBar struct {
	Tabs       []string
	ActiveTab  int
	Width      int
	InsertMode bool
}

func NewTabBar(tabs []string) TabBar {
	return TabBar{Tabs: tabs}
}

func (t TabBar) SetActive(idx int) TabBar {
	if idx >= 0 && idx < len(t.Tabs) {
		t.ActiveTab = idx
	}
	return t
}

func (t TabBar) SetWidth(w int) TabBar {
	t.Width = w
	return t
}

func (t TabBar) SetInsertMode(insert bool) TabBar {
	t.InsertMode = insert
	return t
}

func (t TabBar) Render() string {
	rendered := make([]string, 0, len(t.Tabs))
	for i, tab := range t.Tabs {
		if i == t.ActiveTab {
			rendered = append(rendered, theme.ActiveTab.Render(tab))
			continue
		}
		rendered = append(rendered, theme.Tab.Render(tab))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)

	badge := ""
	if t.InsertMode {
		badge = theme.ModeIndicator.Render(" INSERT ")
	}
	pad := t.Width - lipgloss.Width(row) - lipgloss.Width(badge) - 2
	if pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return row + badge
}
