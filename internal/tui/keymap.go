package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type GlobalKeyMap struct {
	Quit   key.Binding
	Tab    key.Binding
	Insert key.Binding
	Escape key.Binding
	Up     key.Binding
	Down   key.Binding
	Tab1   key.Binding
	Tab2   key.Binding
	Tab3   key.Binding
}

func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab1, k.Tab2, k.Tab3, k.Tab, k.Quit}
}

func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.Up, k.Down, k.Tab},
		{k.Insert, k.Escape, k.Quit},
	}
}

var GlobalKeys = GlobalKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "focus"),
	),
	Insert: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "insert"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "normal"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "solve"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "tutor"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "history"),
	),
}

// SolveKeyMap for Solve tab
type SolveKeyMap struct {
	GlobalKeyMap
	Solve   key.Binding
	Example key.Binding
}

func (k SolveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Solve, k.Example, k.Quit}
}

func (k SolveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.Insert, k.Solve, k.Example},
		{k.Up, k.Down, k.Quit},
	}
}

var SolveKeys = SolveKeyMap{
	GlobalKeyMap: GlobalKeys,
	Solve: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "solve"),
	),
	Example: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "example"),
	),
}

// TutorKeyMap for Tutor tab
type TutorKeyMap struct {
	GlobalKeyMap
	Send       key.Binding
	Clear      key.Binding
	Disconnect key.Binding
}

func (k TutorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Send, k.Clear, k.Disconnect, k.Quit}
}

func (k TutorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.Insert, k.Send, k.Clear},
		{k.Disconnect, k.Up, k.Down, k.Quit},
	}
}

var TutorKeys = TutorKeyMap{
	GlobalKeyMap: GlobalKeys,
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "send"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("Ctrl+l", "clear"),
	),
	Disconnect: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "disconnect"),
	),
}

// HistoryKeyMap for History tab
type HistoryKeyMap struct {
	GlobalKeyMap
	Details key.Binding
}

func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.Tab, k.Quit}
}

func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.Up, k.Down, k.Details},
		{k.Tab, k.Quit},
	}
}

var HistoryKeys = HistoryKeyMap{
	GlobalKeyMap: GlobalKeys,
	Details: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "details"),
	),
}

func NewHelp() help.Model {
	h := help.New()
	h.ShowAll = false
	return h
}
