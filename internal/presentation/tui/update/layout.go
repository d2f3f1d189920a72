package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/layout"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/presentation/tui/metrics"
	"github.com/tesso57/flank/internal/presentation/tui/state"
)

// UpdateSizes recomputes pane sizes for the current layout state and
// resizes the list and viewport to match.
func UpdateSizes(s *state.ModelState, ls layout.State, th theme.Theme) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	s.Metrics = buildLayoutMetrics(s, ls, th)
	listWidth := clampMin(s.Metrics.LeftWidth-metrics.SidebarBorderWidth, 1)
	listHeight := clampMin(s.Metrics.PanelHeight-metrics.SidebarTitleLines, 1)
	s.List.SetSize(listWidth, listHeight)

	vpWidth := clampMin(s.Metrics.MainWidth-metrics.MainPaddingLeft, 1)
	widthChanged := s.Viewport.Width != vpWidth
	s.Viewport.Width = vpWidth
	s.Viewport.Height = clampMin(s.Metrics.BodyHeight-metrics.HeaderLines, 1)
	if widthChanged {
		refreshViewport(s)
	}
}

func buildLayoutMetrics(s *state.ModelState, ls layout.State, th theme.Theme) state.Metrics {
	bodyHeight := clampMin(s.Height-footerHeight(s), 1)

	left := panelWidth(ls.LeftActive, th.LeftWidth, th.RailWidth)
	right := panelWidth(ls.RightActive, th.RightWidth, th.RailWidth)

	budget := max(s.Width-metrics.MinMainWidth, 0)
	if left+right > budget {
		switch {
		case ls.LeftActive && ls.RightActive:
			left = budget / 2
			right = budget - left
		case ls.LeftActive:
			left = budget - right
		case ls.RightActive:
			right = budget - left
		}
		left = clampMin(left, th.RailWidth)
		right = clampMin(right, th.RailWidth)
	}
	// Too narrow for the rails: the main region takes the whole width.
	if left+right >= s.Width {
		left, right = 0, 0
	}

	return state.Metrics{
		LeftWidth:   left,
		RightWidth:  right,
		MainWidth:   clampMin(s.Width-left-right, 1),
		BodyHeight:  bodyHeight,
		PanelHeight: bodyHeight,
	}
}

func panelWidth(active bool, width, rail int) int {
	if active {
		return width
	}
	return rail
}

func footerHeight(s *state.ModelState) int {
	return lipgloss.Height(FooterContent(s))
}

// FooterContent returns the footer text. While reloading, the status line
// shows the spinner; during the first load the main region does.
func FooterContent(s *state.ModelState) string {
	s.Help.Width = s.Width
	helpText := state.FooterHelpText(s.Help, s.Keys)
	status := s.StatusMessage
	if s.Loading && s.Collection != nil {
		status = s.Spinner.View() + " Reloading..."
	}
	return state.FooterText(s.Loading && s.Collection == nil, status, helpText)
}

func refreshViewport(s *state.ModelState) {
	entry, ok := s.OpenedEntry()
	if !ok {
		s.Viewport.SetContent("")
		return
	}
	s.Viewport.SetContent(RenderBody(entry, s.Viewport.Width, s.MarkdownStyle))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
