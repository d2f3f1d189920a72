// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/flank/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	UpPage      key.Binding
	DownPage    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Open        key.Binding
	OpenLink    key.Binding
	ToggleLeft  key.Binding
	ToggleRight key.Binding
	Reload      key.Binding
	Quit        key.Binding
	Help        key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLeft, k.ToggleRight, k.Open, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleLeft, k.ToggleRight},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.UpPage, k.DownPage},
		{k.Open, k.OpenLink, k.Reload},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:          binding(cfg.Up, "up"),
		Down:        binding(cfg.Down, "down"),
		UpPage:      binding(cfg.UpPage, "page up"),
		DownPage:    binding(cfg.DownPage, "page down"),
		Top:         binding(cfg.Top, "top"),
		Bottom:      binding(cfg.Bottom, "bottom"),
		Open:        binding(cfg.Open, "open"),
		OpenLink:    binding(cfg.OpenLink, "open link"),
		ToggleLeft:  binding(cfg.ToggleLeft, "left sidebar"),
		ToggleRight: binding(cfg.ToggleRight, "right sidebar"),
		Reload:      binding(cfg.Reload, "reload"),
		Quit:        binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	parts := splitKeys(keys)
	helpKey := keys
	if len(parts) > 0 {
		helpKey = parts[0]
	}
	return key.NewBinding(
		key.WithKeys(parts...),
		key.WithHelp(helpKey, desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
