// Package theme holds the chalkboard color scheme shared by every tab.
package theme

import "github.com/charmbracelet/lipgloss"

// Dark slate surfaces, chalk-white text, a teal primary accent.
var (
	Ink   = lipgloss.Color("#0d1117")
	Board = lipgloss.Color("#161b22")
	Shade = lipgloss.Color("#21262d")
	Line  = lipgloss.Color("#30363d")
	Slate = lipgloss.Color("#8b949e")
	Chalk = lipgloss.Color("#e6edf3")
	Teal  = lipgloss.Color("#39c5cf")
	Sky   = lipgloss.Color("#79c0ff")
	Mint  = lipgloss.Color("#56d364")
	Rose  = lipgloss.Color("#ff7b72")
)

// Panel borders. The thick mint border marks the panel receiving typed
// input, the teal one the panel navigation keys act on.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Line).
	Padding(0, 1)

var FocusedPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Teal).
	Padding(0, 1)

var InsertModePanel = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder()).
	BorderForeground(Mint).
	Padding(0, 1)

var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(Sky)

var Dim = lipgloss.NewStyle().
	Foreground(Slate)

var Key = lipgloss.NewStyle().
	Foreground(Teal).
	Bold(true)

var ErrorText = lipgloss.NewStyle().
	Foreground(Rose)

var StatusBar = lipgloss.NewStyle().
	Background(Shade).
	Foreground(Chalk).
	Padding(0, 1)

var Tab = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Line)

var ActiveTab = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Teal).
	Foreground(Teal).
	Bold(true)

var ModeIndicator = lipgloss.NewStyle().
	Background(Mint).
	Foreground(Ink).
	Padding(0, 1).
	Bold(true)
