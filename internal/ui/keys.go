package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the reader.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Poems
	Next           key.Binding
	Previous       key.Binding
	Random         key.Binding
	Faal           key.Binding
	ToggleComments key.Binding

	// Scrolling, handled by the viewport
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Poems
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next poem"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Previous poem"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Random poem"),
		),
		Faal: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Hafez faal"),
		),
		ToggleComments: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle comments"),
		),

		// Scrolling
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Random, k.ToggleComments, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Random, k.Faal},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.ToggleComments, k.CycleTheme, k.Help, k.Quit},
	}
}
