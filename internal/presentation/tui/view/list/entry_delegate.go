// Package listview renders list items for the sidebar.
package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/presentation/tui/textutil"
)

// EntryItem is an item that can be rendered by EntryDelegate.
type EntryItem interface {
	list.Item
	Title() string
	IsOpened() bool
}

// EntryDelegate renders one entry per line, marking the opened entry.
type EntryDelegate struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Opened   lipgloss.Style
}

// NewEntryDelegate creates a new EntryDelegate.
func NewEntryDelegate(accent, muted lipgloss.Color) *EntryDelegate {
	return &EntryDelegate{
		Normal: lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(accent).
			Foreground(accent),
		Opened: lipgloss.NewStyle().PaddingLeft(2).Foreground(muted),
	}
}

// Height returns the height of the item.
func (d EntryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d EntryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(EntryItem)
	if !ok {
		return
	}

	title := i.Title()
	if i.IsOpened() {
		title = "• " + title
	}
	title = textutil.Truncate(title, m.Width()-2)

	switch {
	case index == m.Index():
		title = d.Selected.Render(title)
	case i.IsOpened():
		title = d.Opened.Render(title)
	default:
		title = d.Normal.Render(title)
	}

	_, _ = fmt.Fprint(w, title)
}
