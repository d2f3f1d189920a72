// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/flank/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	ToggleLeft
	ToggleRight
	Open
	OpenLink
	Reload
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.ToggleLeft):
		return Intent{Type: ToggleLeft}
	case key.Matches(msg, keys.ToggleRight):
		return Intent{Type: ToggleRight}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.OpenLink):
		return Intent{Type: OpenLink}
	case key.Matches(msg, keys.Reload):
		return Intent{Type: Reload}
	default:
		return Intent{Type: None}
	}
}
