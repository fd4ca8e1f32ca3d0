package components

import (
	"github.com/MikeBiancalana/datekit/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the set of lipgloss styles the calendar components render with.
type Theme struct {
	Box       lipgloss.Style
	Title     lipgloss.Style
	Header    lipgloss.Style
	Weekday   lipgloss.Style
	Day       lipgloss.Style
	Today     lipgloss.Style
	Selected  lipgloss.Style
	RangeFill lipgloss.Style
	Preview   lipgloss.Style
	Cursor    lipgloss.Style
	Current   lipgloss.Style
	Label     lipgloss.Style
	Trigger   lipgloss.Style
	Focused   lipgloss.Style
	Disabled  lipgloss.Style
	Error     lipgloss.Style
	Hint      lipgloss.Style
}

// NewTheme builds the styles from configured colours.
func NewTheme(c config.Theme) *Theme {
	primary := lipgloss.Color(c.Primary)
	accent := lipgloss.Color(c.Accent)
	muted := lipgloss.Color(c.Muted)
	text := lipgloss.Color(c.Text)
	rangeBg := lipgloss.Color(c.RangeBg)
	selected := lipgloss.Color(c.Selected)
	errColor := lipgloss.Color(c.Error)

	return &Theme{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(text),
		Weekday:   lipgloss.NewStyle().Foreground(muted),
		Day:       lipgloss.NewStyle().Foreground(text),
		Today:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(selected).Background(primary).Bold(true),
		RangeFill: lipgloss.NewStyle().Foreground(text).Background(rangeBg),
		Preview:   lipgloss.NewStyle().Foreground(text).Background(rangeBg).Italic(true),
		Cursor:    lipgloss.NewStyle().Underline(true).Bold(true),
		Current:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(muted).Faint(true),
		Error:    lipgloss.NewStyle().Foreground(errColor).Italic(true),
		Hint:     lipgloss.NewStyle().Foreground(muted),
	}
}

// DefaultTheme returns the theme built from the default settings.
func DefaultTheme() *Theme {
	return NewTheme(config.Default().Theme)
}
