package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/solver"
	"github.com/DanOgh07/quantumin-solver/internal/textutil"
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type FocusPanel int

const (
	FocusSidebar FocusPanel = iota
	FocusMain
)

type solutionItem struct {
	*solver.Solution
}

func (i solutionItem) Title() string       { return i.Input }
func (i solutionItem) Description() string { return i.CreatedAt.Format("15:04:05") }
func (i solutionItem) FilterValue() string { return i.Input }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(solutionItem)
	if !ok {
		return
	}

	maxWidth := m.Width() - 8
	if maxWidth < 10 {
		maxWidth = 10
	}
	input := textutil.TruncateWithEllipsis(i.Input, maxWidth)

	iconStyle := lipgloss.NewStyle().Foreground(theme.Mint)
	textStyle := lipgloss.NewStyle().Foreground(theme.Chalk)
	line := fmt.Sprintf(" %s %s", iconStyle.Render("∴"), textStyle.Render(input))

	if index == m.Index() {
		line = lipgloss.NewStyle().
			Background(theme.Shade).
			Foreground(theme.Sky).
			Bold(true).
			Width(m.Width()).
			Render(line)
	}

	fmt.Fprint(w, line)
}

type Model struct {
	width     int
	height    int
	focus     FocusPanel
	list      list.Model
	viewport  viewport.Model
	solutions []*solver.Solution
}

func New() Model {
	l := list.New([]list.Item{}, itemDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle().Foreground(theme.Slate).Padding(1)

	return Model{
		list:     l,
		viewport: viewport.New(0, 0),
		focus:    FocusSidebar,
	}
}

func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h

	sidebarWidth := 40
	if w < 100 {
		sidebarWidth = w / 3
	}
	if sidebarWidth < 25 {
		sidebarWidth = 25
	}

	detailsWidth := w - sidebarWidth - 6
	panelHeight := h - 4

	if detailsWidth < 30 {
		detailsWidth = 30
	}
	if panelHeight < 10 {
		panelHeight = 10
	}

	m.list.SetWidth(sidebarWidth - 2)
	m.list.SetHeight(panelHeight - 4)
	m.viewport.Width = detailsWidth - 4
	m.viewport.Height = panelHeight - 4

	m.updateDetails()
	return m
}

func (m Model) SetFocus(f FocusPanel) Model {
	m.focus = f
	return m
}

func (m Model) Focus() FocusPanel { return m.focus }

// SetSolutions replaces the shown list, newest first.
func (m Model) SetSolutions(items []*solver.Solution) Model {
	m.solutions = items

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = solutionItem{item}
	}
	m.list.SetItems(listItems)
	m.updateDetails()
	return m
}

func (m *Model) updateDetails() {
	if sel := m.list.SelectedItem(); sel != nil {
		if item, ok := sel.(solutionItem); ok {
			m.viewport.SetContent(m.formatDetails(item.Solution))
			return
		}
	}
	if len(m.solutions) > 0 {
		m.viewport.SetContent(m.formatDetails(m.solutions[0]))
	}
}

func (m *Model) formatDetails(sol *solver.Solution) string {
	var b strings.Builder

	b.WriteString(theme.Header.Render(sol.Input) + "\n")
	b.WriteString(theme.Dim.Render(sol.CreatedAt.Format("2006-01-02 15:04:05")) + "\n\n")

	b.WriteString(theme.Dim.Render("category ") + string(sol.Category))
	if sol.Method != "" {
		b.WriteString(theme.Dim.Render("   method ") + sol.Method)
	}
	b.WriteString("\n\n")

	resultStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Mint)
	b.WriteString(resultStyle.Render(sol.Result) + "\n\n")

	for _, st := range sol.Steps {
		b.WriteString(theme.Key.Render(fmt.Sprintf("%d. ", st.Ordinal)) + st.Explanation + "\n")
	}

	return b.String()
}
