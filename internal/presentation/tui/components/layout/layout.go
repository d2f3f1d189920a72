// Package layout provides the root layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Left   string
	Main   string
	Right  string
	Footer string
}

// Render joins left, main and right side by side above the footer.
func Render(p Props) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Left, p.Main, p.Right} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if p.Footer == "" {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, p.Footer)
}
