package update

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/tesso57/flank/internal/domain/content"
	"github.com/tesso57/flank/internal/presentation/tui/textutil"
)

// RenderBody formats an entry body for a viewport of the given width.
// Markdown entries are rendered with the named glamour style; anything else,
// or a style glamour does not know, is word-wrapped as plain text.
func RenderBody(e content.Entry, width int, style string) string {
	body := buildMainBody(e)
	if !e.Markdown || style == "" || width <= 0 {
		return textutil.Wrap(body, width)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return textutil.Wrap(body, width)
	}
	out, err := r.Render(body)
	if err != nil {
		return textutil.Wrap(body, width)
	}
	return strings.Trim(out, "\n")
}
