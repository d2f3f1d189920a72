// Package theme defines the named style constants a layout is rendered with.
package theme

import "github.com/charmbracelet/lipgloss"

// DefaultName is used when no theme, or an unknown one, is requested.
const DefaultName = "joy"

// Theme holds the style constants for a layout. A Theme is never mutated
// after it is resolved.
type Theme struct {
	Name string

	// MediumWidthQuery is the breakpoint below which the sidebars become
	// mutually exclusive.
	MediumWidthQuery Query

	Text         lipgloss.Color
	Muted        lipgloss.Color
	Title        lipgloss.Color
	Accent       lipgloss.Color
	Border       lipgloss.Color
	BorderActive lipgloss.Color

	LeftWidth  int
	RightWidth int
	RailWidth  int

	LeftIcon  string
	RightIcon string

	// MarkdownStyle names the glamour style used for markdown bodies.
	MarkdownStyle string
}

// Narrow reports whether width falls under the theme's breakpoint.
func (t Theme) Narrow(width int) bool {
	return t.MediumWidthQuery.Matches(width)
}

// Joy is the default theme.
var Joy = Theme{
	Name:             "joy",
	MediumWidthQuery: MustParseQuery("(max-width: 99)"),
	Text:             lipgloss.Color("252"),
	Muted:            lipgloss.Color("240"),
	Title:            lipgloss.Color("205"),
	Accent:           lipgloss.Color("205"),
	Border:           lipgloss.Color("63"),
	BorderActive:     lipgloss.Color("205"),
	LeftWidth:        28,
	RightWidth:       32,
	RailWidth:        3,
	LeftIcon:         "☰",
	RightIcon:        "ⓘ",
	MarkdownStyle:    "pink",
}

// Dusk is a dark theme with a wider breakpoint.
var Dusk = Theme{
	Name:             "dusk",
	MediumWidthQuery: MustParseQuery("(max-width: 119)"),
	Text:             lipgloss.Color("#cdd6f4"),
	Muted:            lipgloss.Color("#585b70"),
	Title:            lipgloss.Color("#cba6f7"),
	Accent:           lipgloss.Color("#89b4fa"),
	Border:           lipgloss.Color("#45475a"),
	BorderActive:     lipgloss.Color("#cba6f7"),
	LeftWidth:        30,
	RightWidth:       36,
	RailWidth:        3,
	LeftIcon:         "≡",
	RightIcon:        "i",
	MarkdownStyle:    "dracula",
}

// Paper is a light theme for narrow terminals.
var Paper = Theme{
	Name:             "paper",
	MediumWidthQuery: MustParseQuery("(max-width: 79)"),
	Text:             lipgloss.Color("#4c4f69"),
	Muted:            lipgloss.Color("#8c8fa1"),
	Title:            lipgloss.Color("#1e66f5"),
	Accent:           lipgloss.Color("#fe640b"),
	Border:           lipgloss.Color("#9ca0b0"),
	BorderActive:     lipgloss.Color("#1e66f5"),
	LeftWidth:        24,
	RightWidth:       28,
	RailWidth:        3,
	LeftIcon:         "<",
	RightIcon:        ">",
	MarkdownStyle:    "light",
}
