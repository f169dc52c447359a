package tutor

import (
	"github.com/DanOgh07/quantumin-solver/internal/llm"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Insert     key.Binding
	Escape     key.Binding
	Enter      key.Binding
	Up         key.Binding
	Down       key.Binding
	Clear      key.Binding
	Disconnect key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "chat"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("j/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("", ""),
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
}

// AskMsg asks the app to run one tutoring turn with the full transcript.
type AskMsg struct {
	Transcript []llm.Message
	Seq        int
}

// DisconnectMsg asks the app to drop the stored LLM connection.
type DisconnectMsg struct{}

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
				if value == "" || m.waiting || !m.connected {
					return m, nil
				}
				m.transcript = append(m.transcript, llm.Message{Role: llm.RoleUser, Content: value})
				m.input.SetValue("")
				m.waiting = true
				m.seq++
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()

				transcript := m.Transcript()
				seq := m.seq
				return m, func() tea.Msg {
					return AskMsg{Transcript: transcript, Seq: seq}
				}
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)

		} else {
			switch {
			case key.Matches(msg, keys.Insert):
				m = m.SetInsertMode(true)

			case key.Matches(msg, keys.Up):
				m.viewport.LineUp(1)

			case key.Matches(msg, keys.Down):
				m.viewport.LineDown(1)

			case key.Matches(msg, keys.Clear):
				m = m.ClearTranscript()

			case key.Matches(msg, keys.Disconnect):
				if m.connected {
					return m, func() tea.Msg { return DisconnectMsg{} }
				}

			case msg.String() == "g":
				m.viewport.GotoTop()

			case msg.String() == "G":
				m.viewport.GotoBottom()
			}
		}
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}
