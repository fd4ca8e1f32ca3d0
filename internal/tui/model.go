package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datekit/internal/config"
	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/MikeBiancalana/datekit/internal/perf"
	"github.com/MikeBiancalana/datekit/internal/picker"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/MikeBiancalana/datekit/internal/sync"
	"github.com/MikeBiancalana/datekit/internal/tui/components"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 80
	MinTerminalHeight = 24
)

// renderThreshold is the View duration logged as slow.
const renderThreshold = 16 * time.Millisecond

const statusHints = "tab:next shift+tab:prev enter:open ?:help q:quit"

var (
	exampleTitleStyle = lipgloss.NewStyle().Bold(true)

	focusedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	detailHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)
)

// Example is one entry of the showcase: a live picker with its props.
type Example struct {
	Title       string
	Description string

	// Exactly one of Single and Range is set.
	Single *components.DatePicker
	Range  *components.DateRangePicker
}

// IsOpen reports whether the example's popover is open.
func (e *Example) IsOpen() bool {
	if e.Range != nil {
		return e.Range.IsOpen()
	}
	return e.Single.IsOpen()
}

// Focus focuses the example's picker.
func (e *Example) Focus() {
	if e.Range != nil {
		e.Range.Focus()
		return
	}
	e.Single.Focus()
}

// Blur blurs the example's picker.
func (e *Example) Blur() {
	if e.Range != nil {
		e.Range.Blur()
		return
	}
	e.Single.Blur()
}

// State returns the picker state behind the example.
func (e *Example) State() picker.State {
	if e.Range != nil {
		return e.Range.State()
	}
	return e.Single.State()
}

func (e *Example) shell() *picker.Shell {
	if e.Range != nil {
		return e.Range.Shell()
	}
	return e.Single.Shell()
}

func (e *Example) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.Range != nil {
		_, cmd = e.Range.Update(msg)
	} else {
		_, cmd = e.Single.Update(msg)
	}
	return cmd
}

func (e *Example) view() string {
	if e.Range != nil {
		return e.Range.View()
	}
	return e.Single.View()
}

func (e *Example) apply(theme *components.Theme, settings config.Settings, now func() time.Time) {
	if e.Range != nil {
		e.Range.SetTheme(theme)
		e.Range.SetShortMonths(settings.ShortMonths)
		e.Range.SetClock(now)
		return
	}
	e.Single.SetTheme(theme)
	e.Single.SetShortMonths(settings.ShortMonths)
	e.Single.SetClock(now)
}

// DefaultExamples returns the showcase entries.
func DefaultExamples() []*Example {
	return []*Example{
		{
			Title:       "Date picker",
			Description: "Pick a single date. The popover closes on selection.",
			Single:      components.NewDatePicker(picker.Props{ID: "basic"}, datemath.Date{}),
		},
		{
			Title:       "With label",
			Description: "A label is rendered above the trigger.",
			Single:      components.NewDatePicker(picker.Props{ID: "labeled", Label: "Due date"}, datemath.Date{}),
		},
		{
			Title:       "With error",
			Description: "Error text is shown verbatim below the control.",
			Single: components.NewDatePicker(picker.Props{
				ID:    "errored",
				Label: "Start date",
				Error: "A start date is required",
			}, datemath.Date{}),
		},
		{
			Title:       "Disabled",
			Description: "A disabled picker never opens.",
			Single:      components.NewDatePicker(picker.Props{ID: "disabled", Label: "Locked", Disabled: true}, datemath.Date{}),
		},
		{
			Title:       "Date range picker",
			Description: "Two linked months and presets. The first pick sets the start, the second the end.",
			Range:       components.NewDateRangePicker(picker.Props{ID: "range", Label: "Stay"}, selection.Range{}),
		},
	}
}

// Model represents the showcase TUI state
type Model struct {
	examples []*Example
	focus    int

	settings config.Settings
	theme    *components.Theme
	keys     components.KeyMap
	help     help.Model
	showHelp bool

	statusBar *components.StatusBar
	watcher   *sync.Watcher
	render    *perf.Recorder
	now       func() time.Time

	width            int
	height           int
	terminalTooSmall bool
}

// NewModel creates the showcase model. watcher may be nil.
func NewModel(settings config.Settings, watcher *sync.Watcher) *Model {
	m := &Model{
		examples:  DefaultExamples(),
		settings:  settings,
		theme:     components.NewTheme(settings.Theme),
		keys:      components.DefaultKeyMap(),
		help:      help.New(),
		statusBar: components.NewStatusBar(statusHints),
		watcher:   watcher,
		render:    perf.NewRecorder("tui_render", logger.GetLogger(), renderThreshold),
		now:       time.Now,
	}
	m.applySettings()
	m.examples[0].Focus()
	return m
}

// SetClock replaces the time source of every example.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.applySettings()
}

// Examples returns the showcase entries.
func (m *Model) Examples() []*Example {
	return m.examples
}

// Focused returns the index of the focused example.
func (m *Model) Focused() int {
	return m.focus
}

// Settings returns the settings currently in effect.
func (m *Model) Settings() config.Settings {
	return m.settings
}

func (m *Model) applySettings() {
	m.theme = components.NewTheme(m.settings.Theme)
	for _, e := range m.examples {
		e.apply(m.theme, m.settings, m.now)
	}
}

func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			logger.Warn("tui: config watcher failed to start", "error", err)
			return nil
		}
		return m.waitForConfigChange()
	}
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case components.DateChangedMsg:
		return m.handleDateChanged(msg)

	case components.RangeChangedMsg:
		return m.handleRangeChanged(msg)

	case components.PopoverMsg:
		return m.handlePopover(msg)

	case configReloadedMsg:
		return m.handleConfigReloaded(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		// cursor blink and similar ticks go to the focused picker
		return m, m.examples[m.focus].update(msg)
	}
}

// View renders the TUI
func (m *Model) View() string {
	defer m.render.Start()()

	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}

	dims := CalculateLayout(m.width, m.height)

	left := m.renderExamples(dims.ListWidth)
	right := m.renderDetail(dims.DetailWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(dims.ListWidth).Render(left),
		lipgloss.NewStyle().Width(dims.DetailWidth).Render(right),
	)

	m.help.ShowAll = m.showHelp
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, body, helpView, m.statusBar.View())
}

func (m *Model) renderExamples(width int) string {
	var b strings.Builder
	for i, e := range m.examples {
		title := exampleTitleStyle.Render(e.Title)
		marker := "  "
		if i == m.focus {
			title = focusedTitleStyle.Render(e.Title)
			marker = "▸ "
		}
		b.WriteString(marker + title + "\n")
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).MaxWidth(width).Render(e.view()))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderDetail(width int) string {
	e := m.examples[m.focus]
	s := e.State()

	inner := width - 2
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(detailHeaderStyle.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(e.Description))
	b.WriteString("\n\n")
	b.WriteString(codeStyle.Width(inner).Render(CodeSnippet(s)))
	b.WriteString("\n\n")

	value := selection.Format(s.Value)
	if value == "" {
		value = "(none)"
	}
	b.WriteString(fmt.Sprintf("Value: %s\n", value))
	b.WriteString(fmt.Sprintf("Phase: %s\n", s.Phase))
	b.WriteString(fmt.Sprintf("Open:  %t\n", s.Open))
	return b.String()
}

// CodeSnippet renders the Go call that builds a picker with s's props and
// current value.
func CodeSnippet(s picker.State) string {
	var props []string
	if s.Props.ID != "" {
		props = append(props, fmt.Sprintf("ID: %q", s.Props.ID))
	}
	if s.Props.Label != "" {
		props = append(props, fmt.Sprintf("Label: %q", s.Props.Label))
	}
	if s.Props.Error != "" {
		props = append(props, fmt.Sprintf("Error: %q", s.Props.Error))
	}
	if s.Props.Disabled {
		props = append(props, "Disabled: true")
	}

	var b strings.Builder
	if s.Kind == selection.KindRange {
		b.WriteString("components.NewDateRangePicker(picker.Props{\n")
	} else {
		b.WriteString("components.NewDatePicker(picker.Props{\n")
	}
	for _, p := range props {
		b.WriteString("\t" + p + ",\n")
	}
	b.WriteString("}, ")
	b.WriteString(valueLiteral(s.Value))
	b.WriteString(")")
	return b.String()
}

func valueLiteral(sel selection.Selection) string {
	switch v := sel.(type) {
	case selection.Single:
		return dateLiteral(v.Date)
	case selection.Range:
		if v.IsEmpty() {
			return "selection.Range{}"
		}
		return fmt.Sprintf("selection.Range{Start: %s, End: %s}", dateLiteral(v.Start), dateLiteral(v.End))
	}
	return "nil"
}

func dateLiteral(d datemath.Date) string {
	if d.IsZero() {
		return "datemath.Date{}"
	}
	return fmt.Sprintf("datemath.New(%d, time.%s, %d)", d.Year, d.Month, d.Day)
}

// terminalTooSmallView renders the message when terminal is too small
func (m *Model) terminalTooSmallView() string {
	title := "Terminal Too Small"
	currentSize := fmt.Sprintf("Current: %dx%d", m.width, m.height)
	requiredSize := fmt.Sprintf("Required: %dx%d or larger", MinTerminalWidth, MinTerminalHeight)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Align(lipgloss.Center, lipgloss.Center)

	content := fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\nResize your terminal to continue.",
		title,
		currentSize,
		requiredSize,
	)

	return style.Render(content)
}

// Message type definitions
type configReloadedMsg struct {
	event sync.ReloadEvent
}
