package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestInitialModel(t *testing.T) {
	model := InitialModel()

	if model.state != StateLoading {
		t.Errorf("expected StateLoading, got %v", model.state)
	}
	if model.mode != ModeNormal {
		t.Errorf("expected ModeNormal, got %v", model.mode)
	}
	if model.activeTab != TabSolve {
		t.Errorf("expected TabSolve as initial tab, got %v", model.activeTab)
	}
	if model.quitting {
		t.Error("quitting should be false initially")
	}
}

func TestModel_TabSwitching(t *testing.T) {
	model := InitialModel()
	model.state = StateMain

	press := func(m Model, r rune) Model {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		newModel, _ := m.Update(msg)
		return newModel.(Model)
	}

	m := press(model, '2')
	if m.activeTab != TabTutor {
		t.Errorf("expected TabTutor after pressing 2, got %v", m.activeTab)
	}

	m = press(m, '3')
	if m.activeTab != TabHistory {
		t.Errorf("expected TabHistory after pressing 3, got %v", m.activeTab)
	}

	m = press(m, '1')
	if m.activeTab != TabSolve {
		t.Errorf("expected TabSolve after pressing 1, got %v", m.activeTab)
	}
}

func TestModel_QuitOnCtrlC(t *testing.T) {
	model := InitialModel()
	model.state = StateMain

	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	newModel, cmd := model.Update(ctrlC)
	m := newModel.(Model)

	if !m.quitting {
		t.Error("quitting should be true after Ctrl+C")
	}

	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModel_WindowResize(t *testing.T) {
	model := InitialModel()

	resizeMsg := tea.WindowSizeMsg{Width: 120, Height: 40}
	newModel, _ := model.Update(resizeMsg)
	m := newModel.(Model)

	if m.width != 120 {
		t.Errorf("expected width 120, got %d", m.width)
	}
	if m.height != 40 {
		t.Errorf("expected height 40, got %d", m.height)
	}
}

func TestModel_ModeFromTab(t *testing.T) {
	tests := []struct {
		tab      Tab
		expected AppMode
	}{
		{TabSolve, ModeNormal},
		{TabTutor, ModeNormal},
		{TabHistory, ModeNormal},
	}

	for _, tt := range tests {
		model := InitialModel()
		model.activeTab = tt.tab

		got := model.getModeFromTab()
		if got != tt.expected {
			t.Errorf("getModeFromTab() for tab %v = %v, want %v", tt.tab, got, tt.expected)
		}
	}
}

func TestModel_ViewRendering(t *testing.T) {
	model := InitialModel()
	model.width = 80
	model.height = 24

	model.state = StateLoading
	loadingView := model.View()
	if loadingView == "" {
		t.Error("loading view should not be empty")
	}

	model.state = StateMain
	mainView := model.View()
	if mainView == "" {
		t.Error("main view should not be empty")
	}
}

func TestModel_GetFocusLabel(t *testing.T) {
	model := InitialModel()
	model.state = StateMain

	tests := []struct {
		tab      Tab
		expected string
	}{
		{TabSolve, "main"},
		{TabTutor, "chat"},
		{TabHistory, "sidebar"},
	}

	for _, tt := range tests {
		model.activeTab = tt.tab
		label := model.getFocusLabel()

		if label != tt.expected {
			t.Errorf("getFocusLabel() for tab %v = %q, want %q", tt.tab, label, tt.expected)
		}
	}
}

func TestModel_Init(t *testing.T) {
	model := InitialModel()

	cmd := model.Init()

	if cmd == nil {
		t.Error("Init should return a command")
	}
}

func TestModel_StaleSolveResultIgnored(t *testing.T) {
	model := InitialModel()
	model.state = StateMain

	newModel, _ := model.Update(solveResultMsg{seq: 99, err: errSessionNotReady})
	m := newModel.(Model)

	if m.quitting {
		t.Error("stale result must not affect app state")
	}
}

func TestModel_ConnectionInfoOffline(t *testing.T) {
	model := InitialModel()

	if got := model.connectionInfo(); got != "offline" {
		t.Errorf("connectionInfo() = %q, want offline", got)
	}
}
