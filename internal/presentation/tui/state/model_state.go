package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/flank/internal/domain/content"
)

// Metrics are the pane sizes for the current frame.
type Metrics struct {
	LeftWidth   int
	MainWidth   int
	RightWidth  int
	BodyHeight  int
	PanelHeight int
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	List       list.Model
	Viewport   viewport.Model
	Help       help.Model
	Spinner    spinner.Model
	Keys       KeyMap
	Width      int
	Height     int
	Metrics    Metrics
	Collection *content.Collection
	// MarkdownStyle is the glamour style for markdown entries.
	MarkdownStyle string
	// Opened is the index of the entry shown in the main region, -1 for none.
	Opened        int
	Loading       bool
	Err           error
	StatusMessage string
	Quitting      bool
}

// OpenedEntry returns the entry shown in the main region.
func (s *ModelState) OpenedEntry() (content.Entry, bool) {
	return s.Collection.At(s.Opened)
}

type entryIndexer interface {
	EntryIndex() int
}

// SelectedEntry returns the entry under the list cursor. The list may be
// filtered, so the entry is found through the item rather than the cursor.
func (s *ModelState) SelectedEntry() (content.Entry, bool) {
	it, ok := s.List.SelectedItem().(entryIndexer)
	if !ok {
		return content.Entry{}, false
	}
	return s.Collection.At(it.EntryIndex())
}
