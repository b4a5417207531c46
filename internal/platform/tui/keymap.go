package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curry-roux/walk-the-dog/internal/core"
)

// KeyMap defines the key bindings while playing.
type KeyMap struct {
	Run     key.Binding
	Slide   key.Binding
	Jump    key.Binding
	NewGame key.Binding
	Pause   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Jump, k.Slide, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Jump, k.Slide},
		{k.NewGame, k.Pause, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→", "run"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "jump"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("enter", "new game"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
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

// GameKey translates a key message to the key the game logic reads.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Run):
		return core.KeyArrowRight, true
	case key.Matches(msg, k.Slide):
		return core.KeyArrowDown, true
	case key.Matches(msg, k.Jump):
		return core.KeySpace, true
	}
	return "", false
}
