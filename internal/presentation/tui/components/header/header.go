// Package header provides the main region header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Title       string
	Subtitle    string
	LeftActive  bool
	RightActive bool
	LeftKey     string
	RightKey    string
	Width       int
	Theme       theme.Theme
}

// Render renders the title line with a hint for each closed sidebar, and
// the subtitle below it.
func Render(p Props) string {
	hint := lipgloss.NewStyle().Foreground(p.Theme.Muted)

	var left, right string
	if !p.LeftActive {
		left = hint.Render(p.LeftKey+" "+p.Theme.LeftIcon) + " "
	}
	if !p.RightActive {
		right = " " + hint.Render(p.Theme.RightIcon+" "+p.RightKey)
	}

	titleWidth := p.Width - lipgloss.Width(left) - lipgloss.Width(right)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Theme.Title).
		Width(max(titleWidth, 0)).
		Render(textutil.Truncate(textutil.SingleLine(p.Title), titleWidth))

	line := left + title + right
	sub := hint.Render(textutil.Truncate(textutil.SingleLine(p.Subtitle), p.Width))
	return lipgloss.JoinVertical(lipgloss.Left, line, sub)
}
