// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/flank/internal/application/usecase"
	"github.com/tesso57/flank/internal/domain/content"
	"github.com/tesso57/flank/internal/domain/layout"
	"github.com/tesso57/flank/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/flank/internal/presentation/tui/intent"
	"github.com/tesso57/flank/internal/presentation/tui/presenter"
	"github.com/tesso57/flank/internal/presentation/tui/state"
	"github.com/tesso57/flank/internal/presentation/tui/textutil"
)

// Deps groups external dependencies for updates. Left and Right are the
// panel props injected by the layout controller for the current frame.
type Deps struct {
	Content     usecase.ContentService
	Left        layout.PanelProps
	Right       layout.PanelProps
	OpenBrowser func(string) error
	Quit        func() tea.Cmd
}

// ContentLoadedMsg is emitted after loading the content collection.
type ContentLoadedMsg struct {
	Collection *content.Collection
	Err        error
}

// SourceChangedMsg is emitted when a watched local source changes.
type SourceChangedMsg struct{}

// WaitForChangeCmd waits for the next change notification. It returns nil
// for a nil channel; a closed channel ends the wait without a message.
func WaitForChangeCmd(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return SourceChangedMsg{}
	}
}

// HandleSourceChanged starts a reload unless one is already running.
func HandleSourceChanged(s *state.ModelState, svc usecase.ContentService) tea.Cmd {
	if s.Loading {
		return nil
	}
	s.Loading = true
	return tea.Batch(s.Spinner.Tick, LoadContentCmd(svc))
}

// LoadContentCmd creates a command that loads the configured origin.
func LoadContentCmd(svc usecase.ContentService) tea.Cmd {
	return func() tea.Msg {
		if svc.Load == nil {
			return ContentLoadedMsg{Err: errors.New("no content loader configured")}
		}
		c, err := svc.Fetch(context.Background())
		return ContentLoadedMsg{Collection: c, Err: err}
	}
}

// HandleContentLoaded applies a loaded collection. The opened entry is kept
// when its ID is still present.
func HandleContentLoaded(s *state.ModelState, msg ContentLoadedMsg) {
	s.Loading = false
	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = fmt.Sprintf("Load failed: %v", msg.Err)
		return
	}
	s.Err = nil
	s.StatusMessage = ""

	openedID := ""
	if entry, ok := s.OpenedEntry(); ok {
		openedID = entry.ID
	}
	s.Collection = msg.Collection
	s.Opened = -1
	s.List.ResetFilter()
	if s.Collection != nil && s.Collection.Len() > 0 {
		s.Opened = 0
		if openedID != "" {
			for i, e := range s.Collection.Entries {
				if e.ID == openedID {
					s.Opened = i
					break
				}
			}
		}
	}
	presenter.ApplyEntryList(&s.List, s.Collection, s.Opened)
	if s.Opened >= 0 {
		s.List.Select(s.Opened)
	}
	refreshViewport(s)
	s.Viewport.GotoTop()
}

// HandleKeyMsg handles global key bindings. It returns handled=false for keys
// that should be routed to the list and viewport, including everything typed
// while the list filter is being edited.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.List.SettingFilter() {
		return nil, false
	}
	parsed := intent.FromKeyMsg(msg, s.Keys)

	if s.Help.ShowAll {
		switch {
		case parsed.Type == intent.Quit:
			return quit(deps), true
		case parsed.Type == intent.ToggleHelp || msg.String() == "esc":
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		return quit(deps), true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.ToggleLeft:
		toggle(deps.Left)
		return nil, true
	case intent.ToggleRight:
		toggle(deps.Right)
		return nil, true
	case intent.Open:
		OpenSelected(s)
		return nil, true
	case intent.OpenLink:
		openLink(s, deps)
		return nil, true
	case intent.Reload:
		if s.Loading {
			return nil, true
		}
		s.Loading = true
		s.StatusMessage = ""
		return tea.Batch(s.Spinner.Tick, LoadContentCmd(deps.Content)), true
	default:
		return nil, false
	}
}

// HandleMouseMsg toggles a sidebar when its rail or title row is clicked.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg, deps Deps) bool {
	if s.Help.ShowAll {
		return false
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if msg.Y >= s.Metrics.PanelHeight {
		return false
	}

	m := s.Metrics
	if msg.X < m.LeftWidth {
		return sidebar.Click(panelHit(sidebar.SideLeft, deps.Left, m), msg.X, msg.Y)
	}
	rightStart := m.LeftWidth + m.MainWidth
	if msg.X >= rightStart && msg.X < rightStart+m.RightWidth {
		return sidebar.Click(panelHit(sidebar.SideRight, deps.Right, m), msg.X-rightStart, msg.Y)
	}
	return false
}

// OpenSelected shows the entry under the list cursor in the main region.
func OpenSelected(s *state.ModelState) {
	it, ok := s.List.SelectedItem().(*presenter.Item)
	if !ok {
		return
	}
	if _, ok := s.Collection.At(it.Index); !ok {
		return
	}
	s.Opened = it.Index
	presenter.MarkOpened(&s.List, s.Opened)
	refreshViewport(s)
	s.Viewport.GotoTop()
}

// MainTitle returns the title and subtitle of the main region, using
// fallback when there is nothing to name.
func MainTitle(s *state.ModelState, fallback string) (string, string) {
	if entry, ok := s.OpenedEntry(); ok {
		return entry.DisplayTitle(), entry.Source
	}
	if s.Collection != nil && s.Collection.Title != "" {
		return s.Collection.Title, ""
	}
	return fallback, ""
}

// DetailsText returns the right sidebar body wrapped to width.
func DetailsText(s *state.ModelState, width int, now time.Time) string {
	entry, ok := s.SelectedEntry()
	if !ok {
		entry, ok = s.OpenedEntry()
	}
	if !ok {
		return "Nothing selected."
	}
	return textutil.Wrap(BuildDetails(entry, now), width)
}

func openLink(s *state.ModelState, deps Deps) {
	entry, ok := s.SelectedEntry()
	if !ok || strings.TrimSpace(entry.Link) == "" {
		s.StatusMessage = "No link for this entry"
		return
	}
	if deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(entry.Link); err != nil {
		s.StatusMessage = fmt.Sprintf("Open failed: %v", err)
	}
}

func panelHit(side sidebar.Side, props layout.PanelProps, m state.Metrics) sidebar.Props {
	width := m.LeftWidth
	if side == sidebar.SideRight {
		width = m.RightWidth
	}
	return sidebar.Props{
		Side:   side,
		Active: props.Active,
		Toggle: props.Toggle,
		Width:  width,
		Height: m.PanelHeight,
	}
}

func toggle(p layout.PanelProps) {
	if p.Toggle != nil {
		p.Toggle()
	}
}

func quit(deps Deps) tea.Cmd {
	if deps.Quit != nil {
		return deps.Quit()
	}
	return tea.Quit
}
