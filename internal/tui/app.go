package tui

import (
	"context"
	"errors"

	"github.com/DanOgh07/quantumin-solver/internal/config"
	"github.com/DanOgh07/quantumin-solver/internal/storage"
	"github.com/DanOgh07/quantumin-solver/internal/tui/components"
	"github.com/DanOgh07/quantumin-solver/internal/tui/tabs/history"
	"github.com/DanOgh07/quantumin-solver/internal/tui/tabs/solve"
	tutortab "github.com/DanOgh07/quantumin-solver/internal/tui/tabs/tutor"
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"
	"github.com/DanOgh07/quantumin-solver/internal/tutor"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errSessionNotReady = errors.New("session is still starting")

type SessionState int

const (
	StateLoading SessionState = iota
	StateMain
)

type AppMode int

const (
	ModeNormal AppMode = iota
	ModeInsert
)

type Tab int

const (
	TabSolve Tab = iota
	TabTutor
	TabHistory
)

type Model struct {
	state     SessionState
	mode      AppMode
	activeTab Tab
	width     int
	height    int
	quitting  bool

	solve    solve.Model
	tutorTab tutortab.Model
	history  history.Model

	tabBar    components.TabBar
	statusBar components.StatusBar
	spinner   spinner.Model
	help      help.Model

	session *tutor.Session
}

func InitialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Teal)

	tabBar := components.NewTabBar([]string{
		"[1] λ Solve",
		"[2] ? Tutor",
		"[3] ↺ History",
	})

	return Model{
		state:     StateLoading,
		mode:      ModeNormal,
		activeTab: TabSolve,

		solve:    solve.New(),
		tutorTab: tutortab.New(),
		history:  history.New(),

		tabBar:    tabBar,
		statusBar: components.NewStatusBar(),
		spinner:   s,
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		openSession,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tabBar = m.tabBar.SetWidth(msg.Width)
		m.statusBar = m.statusBar.SetWidth(msg.Width)

		m.solve = m.solve.SetSize(msg.Width, msg.Height-4)
		m.tutorTab = m.tutorTab.SetSize(msg.Width, msg.Height-4)
		m.history = m.history.SetSize(msg.Width, msg.Height-4)

	case sessionReadyMsg:
		m.session = msg.session
		m.state = StateMain
		provider, model := m.session.Provider()
		m.tutorTab = m.tutorTab.SetConnection(m.session.Connected(), provider, model)
		m.history = m.history.SetSolutions(m.session.Recent())

	case solve.SubmitMsg:
		cmds = append(cmds, m.solveCmd(msg))

	case solveResultMsg:
		m.solve = m.solve.SetSolution(msg.seq, msg.sol, msg.err)
		if m.session != nil {
			m.history = m.history.SetSolutions(m.session.Recent())
		}

	case tutortab.AskMsg:
		cmds = append(cmds, m.tutorCmd(msg))

	case tutorReplyMsg:
		m.tutorTab = m.tutorTab.AddReply(msg.seq, msg.text, msg.err)

	case tutortab.DisconnectMsg:
		if m.session != nil {
			m.session.Disconnect()
			m.tutorTab = m.tutorTab.SetConnection(false, "", "")
		}

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:

		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if m.mode == ModeNormal {
			switch msg.String() {
			case "1":
				m.activeTab = TabSolve
			case "2":
				m.activeTab = TabTutor
			case "3":
				m.activeTab = TabHistory
				if m.session != nil {
					m.history = m.history.SetSolutions(m.session.Recent())
				}
			case "q":
				m.quitting = true
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		switch m.activeTab {
		case TabSolve:
			m.solve, cmd = m.solve.Update(msg, solve.DefaultKeyMap())
			m.mode = m.getModeFromTab()
			cmds = append(cmds, cmd)

		case TabTutor:
			m.tutorTab, cmd = m.tutorTab.Update(msg, tutortab.DefaultKeyMap())
			m.mode = m.getModeFromTab()
			cmds = append(cmds, cmd)

		case TabHistory:
			m.history, cmd = m.history.Update(msg, history.DefaultKeyMap())
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) solveCmd(msg solve.SubmitMsg) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		if session == nil {
			return solveResultMsg{seq: msg.Seq, err: errSessionNotReady}
		}
		sol, err := session.Solve(context.Background(), msg.Input)
		return solveResultMsg{seq: msg.Seq, sol: sol, err: err}
	}
}

func (m Model) tutorCmd(msg tutortab.AskMsg) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		if session == nil {
			return tutorReplyMsg{seq: msg.Seq, err: errSessionNotReady}
		}
		reply, err := session.Tutor(context.Background(), msg.Transcript)
		return tutorReplyMsg{seq: msg.Seq, text: reply, err: err}
	}
}

func (m Model) getModeFromTab() AppMode {
	switch m.activeTab {
	case TabSolve:
		if m.solve.InsertMode() {
			return ModeInsert
		}
	case TabTutor:
		if m.tutorTab.InsertMode() {
			return ModeInsert
		}
	}
	return ModeNormal
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.state == StateLoading {
		return m.viewLoading()
	}

	return m.viewMain()
}

func (m Model) viewLoading() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Ink).
		Background(theme.Teal).
		Padding(0, 1).
		Render("quantumin")

	status := m.spinner.View() + " Opening session..."
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Line).
		Padding(1, 2).
		Render(status)

	return "\n" + title + "\n\n" + box + "\n"
}

func (m Model) viewMain() string {

	m.tabBar = m.tabBar.SetActive(int(m.activeTab)).SetInsertMode(m.mode == ModeInsert)
	tabBar := m.tabBar.Render()

	var content string
	switch m.activeTab {
	case TabSolve:
		content = m.solve.View()
	case TabTutor:
		content = m.tutorTab.View()
	case TabHistory:
		content = m.history.View()
	}

	contentHeight := m.height - 3
	if contentHeight < 10 {
		contentHeight = 10
	}
	styledContent := lipgloss.NewStyle().Height(contentHeight).MaxWidth(m.width).Render(content)

	focusLabel := m.getFocusLabel()
	var statusBar string
	switch m.activeTab {
	case TabSolve:
		statusBar = m.statusBar.RenderWithInfo(SolveKeys, focusLabel, m.connectionInfo())
	case TabTutor:
		statusBar = m.statusBar.RenderWithInfo(TutorKeys, focusLabel, m.connectionInfo())
	case TabHistory:
		statusBar = m.statusBar.Render(HistoryKeys, focusLabel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, styledContent, statusBar)
}

func (m Model) getFocusLabel() string {
	switch m.activeTab {
	case TabSolve:
		if m.solve.Focus() == solve.FocusSidebar {
			return "sidebar"
		}
		return "main"
	case TabTutor:
		return "chat"
	case TabHistory:
		if m.history.Focus() == history.FocusSidebar {
			return "sidebar"
		}
		return "main"
	}
	return "main"
}

func (m Model) connectionInfo() string {
	if m.session == nil || !m.session.Connected() {
		return "offline"
	}
	provider, model := m.session.Provider()
	return provider + " " + model
}

func openSession() tea.Msg {
	cfg := config.Load()
	db, err := storage.InitDB()
	if err != nil {
		// A session without storage still solves, it just cannot
		// persist or reload anything.
		return sessionReadyMsg{session: tutor.NewSession(cfg, nil), err: err}
	}
	return sessionReadyMsg{session: tutor.NewSession(cfg, db)}
}
