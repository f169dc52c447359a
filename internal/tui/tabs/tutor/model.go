package tutor

import (
	"strings"

	"github.com/DanOgh07/quantumin-solver/internal/llm"
	"github.com/DanOgh07/quantumin-solver/internal/textutil"
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

type Model struct {
	width  int
	height int

	viewport viewport.Model
	input    textinput.Model

	// transcript is re-sent whole on every turn, the remote endpoint holds
	// no conversation state.
	transcript []llm.Message
	waiting    bool
	seq        int

	connected bool
	provider  string
	model     string

	insertMode bool
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about derivatives, integrals, limits..."
	ti.CharLimit = 512
	ti.Width = 60

	return Model{
		viewport: viewport.New(0, 0),
		input:    ti,
	}
}

func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h

	m.viewport.Width = w - 8
	m.viewport.Height = h - 9
	if m.viewport.Width < 40 {
		m.viewport.Width = 40
	}
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
	m.input.Width = m.viewport.Width - 4

	return m
}

func (m Model) SetConnection(connected bool, provider, model string) Model {
	m.connected = connected
	m.provider = provider
	m.model = model
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

// Transcript returns the conversation so far, for re-supplying to the
// bridge.
func (m Model) Transcript() []llm.Message {
	out := make([]llm.Message, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// AddReply installs the tutor's answer if it belongs to the latest turn.
func (m Model) AddReply(seq int, text string, err error) Model {
	if seq != m.seq {
		return m
	}
	m.waiting = false
	if err != nil {
		m.transcript = append(m.transcript, llm.Message{Role: llm.RoleAssistant, Content: "(error) " + err.Error()})
	} else {
		m.transcript = append(m.transcript, llm.Message{Role: llm.RoleAssistant, Content: text})
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m
}

func (m Model) ClearTranscript() Model {
	m.transcript = nil
	m.viewport.SetContent("")
	return m
}

func (m Model) renderTranscript() string {
	wrapWidth := m.viewport.Width - 8
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var b strings.Builder
	for _, msg := range m.transcript {
		body := textutil.WrapText(msg.Content, wrapWidth)
		switch msg.Role {
		case llm.RoleAssistant:
			b.WriteString(theme.Key.Render("tutor ") + body + "\n\n")
		default:
			b.WriteString(theme.Header.Render("you   ") + body + "\n\n")
		}
	}
	if m.waiting {
		b.WriteString(theme.Dim.Render("thinking..."))
	}
	return b.String()
}
