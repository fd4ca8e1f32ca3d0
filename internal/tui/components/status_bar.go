package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Bold(true)
)

// StatusBar represents the status bar component
type StatusBar struct {
	width   int
	hints   string
	message string
}

// NewStatusBar creates a new status bar
func NewStatusBar(hints string) *StatusBar {
	return &StatusBar{hints: hints}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetMessage shows msg ahead of the hints. An empty msg clears it.
func (sb *StatusBar) SetMessage(msg string) {
	sb.message = msg
}

// Message returns the current message.
func (sb *StatusBar) Message() string {
	return sb.message
}

// View renders the status bar
func (sb *StatusBar) View() string {
	text := sb.hints
	if sb.message != "" {
		text = statusMessageStyle.Render(sb.message) + "  " + text
	}

	// Truncate if too long
	if sb.width > 5 && lipgloss.Width(text) > sb.width-2 {
		runes := []rune(sb.hints)
		keep := sb.width - 5
		if sb.message != "" {
			keep -= lipgloss.Width(sb.message) + 2
		}
		if keep < 0 {
			keep = 0
		}
		if keep < len(runes) {
			runes = runes[:keep]
		}
		text = string(runes) + "..."
		if sb.message != "" {
			text = statusMessageStyle.Render(sb.message) + "  " + text
		}
	}

	return statusBarStyle.Width(sb.width).Render(text)
}
