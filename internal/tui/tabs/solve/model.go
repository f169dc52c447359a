package solve

import (
	"fmt"
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/solver"
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Examples shown in the sidebar, selectable with number keys.
var Examples = []string{
	"d/dx(x^3 + 2x^2 - 5x + 1)",
	"integral(x^2)",
	"lim x->0 sin(x)/x",
	"x^2 - 5x + 6 = 0",
	"dy/dx for x^2 + y^2 = 25",
	"sin(x)^2 + cos(x)^2",
}

type FocusPanel int

const (
	FocusSidebar FocusPanel = iota
	FocusMain
)

type Model struct {
	width  int
	height int
	focus  FocusPanel

	input    textinput.Model
	viewport viewport.Model

	solution *solver.Solution
	errText  string
	solving  bool

	// seq numbers the submissions so a stale result cannot clobber a
	// newer one.
	seq        int
	exampleIdx int

	insertMode bool
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "d/dx(x^2) or a question in plain words..."
	ti.CharLimit = 512
	ti.Width = 60

	return Model{
		input:    ti,
		viewport: viewport.New(0, 0),
		focus:    FocusMain,
	}
}

func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h

	m.viewport.Width = w - sidebarWidth - 8
	m.viewport.Height = h - 9
	if m.viewport.Width < 30 {
		m.viewport.Width = 30
	}
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
	m.input.Width = m.viewport.Width - 4

	return m
}

func (m Model) SetInsertMode(insert bool) Model {
	m.insertMode = insert
	if insert {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m Model) InsertMode() bool { return m.insertMode }

func (m Model) Focus() FocusPanel { return m.focus }

// SetSolution installs a finished result if it belongs to the latest
// submission.
func (m Model) SetSolution(seq int, sol *solver.Solution, err error) Model {
	if seq != m.seq {
		return m
	}
	m.solving = false
	if err != nil {
		m.errText = err.Error()
		m.solution = nil
		m.viewport.SetContent(theme.ErrorText.Render("✗ " + err.Error()))
		return m
	}
	m.errText = ""
	m.solution = sol
	m.viewport.SetContent(m.renderSolution())
	m.viewport.GotoTop()
	return m
}

func (m Model) renderSolution() string {
	sol := m.solution
	if sol == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Dim.Render("category ") + theme.Key.Render(string(sol.Category)))
	if sol.Method != "" {
		b.WriteString(theme.Dim.Render("  method ") + theme.Key.Render(sol.Method))
	}
	b.WriteString("\n\n")

	resultStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Mint)
	b.WriteString(resultStyle.Render(sol.Result) + "\n\n")

	for _, st := range sol.Steps {
		b.WriteString(theme.Key.Render(fmt.Sprintf("  %d. ", st.Ordinal)) + st.Explanation + "\n")
		if st.Expression != "" && st.Expression != sol.Result {
			b.WriteString(theme.Dim.Render("     "+st.Expression) + "\n")
		}
	}
	return b.String()
}
