package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Dismiss  key.Binding
	Remount  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "activate"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next option"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Remount: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "remount"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate},
		{k.Left, k.Right, k.Dismiss},
		{k.PageUp, k.PageDown, k.Remount},
		{k.Help, k.Quit},
	}
}

// calendarKeys are active while the date picker is open.
type calendarKeys struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Choose    key.Binding
	Cancel    key.Binding
}

func defaultCalendarKeys() calendarKeys {
	return calendarKeys{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "previous month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "next month")),
		Choose:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k calendarKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.PrevMonth, k.Choose, k.Cancel}
}

func (k calendarKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.PrevMonth, k.NextMonth, k.Choose, k.Cancel}}
}
