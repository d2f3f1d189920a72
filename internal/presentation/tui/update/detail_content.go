package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tesso57/flank/internal/domain/content"
)

const detailSectionDivider = "----------------------------------------"

func buildMainBody(e content.Entry) string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = strings.TrimSpace(e.Summary)
	}
	if body == "" {
		body = "(No content. Press o to open the link.)"
	}
	return body
}

// BuildDetails returns the right sidebar text for an entry. Dates are
// shown relative to now.
func BuildDetails(e content.Entry, now time.Time) string {
	var b strings.Builder
	b.WriteString(e.DisplayTitle())
	b.WriteString("\n")
	b.WriteString(detailSectionDivider)
	b.WriteString("\n")
	if e.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", e.Source)
	}
	if !e.Published.IsZero() {
		fmt.Fprintf(&b, "Date: %s\n", e.Published.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "      %s\n", humanize.RelTime(e.Published, now, "ago", "from now"))
	}
	if e.Link != "" {
		fmt.Fprintf(&b, "Link: %s\n", e.Link)
	}
	if summary := strings.TrimSpace(e.Summary); summary != "" {
		b.WriteString("\n")
		b.WriteString(summary)
	}
	return strings.TrimRight(b.String(), "\n")
}
