package components

import (
	"github.com/DanOgh07/quantumin-solver/internal/tui/theme"
)

// FocusState selects the border treatment of a panel.
type FocusState int

const (
	FocusBlurred FocusState = iota
	FocusFocused
	FocusInsert
)

// Panel is a bordered box with an optional title line. The zero focus
// state renders the plain border.
type Panel struct {
	Title  string
	Width  int
	Height int
	Focus  FocusState
}

func NewPanel(title string) Panel {
	return Panel{Title: title}
}

func (p Panel) SetSize(w, h int) Panel {
	p.Width = w
	p.Height = h
	return p
}

func (p Panel) SetFocus(f FocusState) Panel {
	p.Focus = f
	return p
}

func (p Panel) Render(content string) string {
	style := theme.Panel
	switch p.Focus {
	case FocusInsert:
		style = theme.InsertModePanel
	case FocusFocused:
		style = theme.FocusedPanel
	}
	body := content
	if p.Title != "" {
		body = theme.Header.Render(p.Title) + "\n" + content
	}
	return style.Width(p.Width).Height(p.Height).Render(body)
}
