package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by the calendar components. It satisfies
// help.KeyMap so it can be rendered with bubbles/help.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Prev    key.Binding
	Next    key.Binding
	DrillUp key.Binding
	Today   key.Binding
	Clear   key.Binding
	Type    key.Binding
	Focus   key.Binding
	Close   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Prev: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next"),
		),
		DrillUp: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "month/year"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Type: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "type date"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Prev, k.Next, k.DrillUp, k.Close, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Prev, k.Next, k.DrillUp},
		{k.Today, k.Clear, k.Type, k.Focus},
		{k.Close, k.Help, k.Quit},
	}
}
