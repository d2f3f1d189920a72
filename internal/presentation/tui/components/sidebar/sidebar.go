// Package sidebar provides the shared sidebar renderer and its left/right
// wrappers.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/presentation/tui/metrics"
	"github.com/tesso57/flank/internal/presentation/tui/textutil"
)

// Side identifies which edge of the layout a sidebar sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Props defines the properties for the sidebar component.
type Props struct {
	Side   Side
	Active bool
	Toggle func()
	Title  string
	Icon   string
	Body   string
	Width  int
	Height int
	Theme  theme.Theme
}

// Left renders p as the left sidebar.
func Left(p Props) string {
	p.Side = SideLeft
	return Render(p)
}

// Right renders p as the right sidebar.
func Right(p Props) string {
	p.Side = SideRight
	return Render(p)
}

// Render renders an open sidebar, or a rail with the icon when closed.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	innerWidth := max(p.Width-metrics.SidebarBorderWidth, 1)
	style := lipgloss.NewStyle().
		Width(innerWidth).
		Height(p.Height).
		MaxHeight(p.Height).
		Border(lipgloss.NormalBorder(), false, p.Side == SideLeft, false, p.Side == SideRight).
		BorderForeground(p.Theme.Border)

	iconStyle := lipgloss.NewStyle().Foreground(p.Theme.Accent)

	if !p.Active {
		return style.Align(lipgloss.Center).Render(iconStyle.Render(p.Icon))
	}

	style = style.BorderForeground(p.Theme.BorderActive)
	titleStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingBottom(metrics.SidebarTitleLines - 1).
		Bold(true).
		Foreground(p.Theme.Title)

	title := textutil.Truncate(p.Icon+" "+p.Title, innerWidth-1)
	bodyHeight := max(p.Height-metrics.SidebarTitleLines, 0)
	body := clipLines(p.Body, innerWidth, bodyHeight)

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		body,
	))
}

// Click handles a mouse release at (x, y) relative to the sidebar's top
// left corner. Clicking the title row of an open sidebar, or anywhere on a
// closed rail, calls Toggle. It reports whether the click was consumed.
func Click(p Props, x, y int) bool {
	if p.Toggle == nil || x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return false
	}
	if p.Active && y >= metrics.SidebarTitleLines-1 {
		return false
	}
	p.Toggle()
	return true
}

func clipLines(text string, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = textutil.Truncate(line, width)
	}
	return strings.Join(lines, "\n")
}
