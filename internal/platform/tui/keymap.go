package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Flap       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// Event translates a key press into an engine event for the given phase.
// The flap key doubles as start in the menu and restart after game over;
// that binding belongs to the host, the engine only sees distinct events.
func (k KeyMap) Event(msg tea.KeyMsg, phase engine.Phase) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.EventQuit
	case key.Matches(msg, k.Restart):
		return core.EventRestart
	case key.Matches(msg, k.Flap):
		return flapEvent(phase)
	}
	return core.EventNone
}

// MouseEvent maps a left-button press to the flap key's event. Motion,
// releases and other buttons are ignored.
func MouseEvent(msg tea.MouseMsg, phase engine.Phase) core.Event {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.EventNone
	}
	return flapEvent(phase)
}

func flapEvent(phase engine.Phase) core.Event {
	switch phase {
	case engine.PhaseMenu:
		return core.EventStart
	case engine.PhaseGameOver:
		return core.EventRestart
	default:
		return core.EventImpulse
	}
}
