package solve

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Insert  key.Binding
	Escape  key.Binding
	Enter   key.Binding
	Up      key.Binding
	Down    key.Binding
	Example key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "type"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "solve"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("j/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("", ""),
		),
		Example: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "example"),
		),
	}
}

// SubmitMsg asks the app to solve the given input. Seq ties the eventual
// result back to this submission.
type SubmitMsg struct {
	Input string
	Seq   int
}

func (m Model) Update(msg tea.Msg, keys KeyMap) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.insertMode {
			switch {
			case key.Matches(msg, keys.Escape):
				return m.SetInsertMode(false), nil

			case key.Matches(msg, keys.Enter):
				value := m.input.Value()
				if value != "" && !m.solving {
					return m.submit(value)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)

		} else {
			switch {
			case key.Matches(msg, keys.Insert):
				m = m.SetInsertMode(true)

			case key.Matches(msg, keys.Enter):
				if value := m.input.Value(); value != "" && !m.solving {
					return m.submit(value)
				}

			case key.Matches(msg, keys.Example):
				// Cycle the examples through the input field.
				m.input.SetValue(Examples[m.exampleIdx])
				m.exampleIdx = (m.exampleIdx + 1) % len(Examples)

			case key.Matches(msg, keys.Up):
				m.viewport.LineUp(1)

			case key.Matches(msg, keys.Down):
				m.viewport.LineDown(1)
			}
		}
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit(input string) (Model, tea.Cmd) {
	m.seq++
	m.solving = true
	m.errText = ""
	seq := m.seq
	return m, func() tea.Msg {
		return SubmitMsg{Input: input, Seq: seq}
	}
}
