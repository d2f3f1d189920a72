// Package content defines what the layout panes display.
package content

import (
	"strings"
	"time"
)

// Entry is one document shown in the main region.
type Entry struct {
	ID        string
	Title     string
	Link      string
	Published time.Time
	Summary   string
	Body      string
	Source    string
	// Markdown marks Body as markdown source.
	Markdown bool
}

// DisplayTitle returns the title, or a placeholder when it is blank.
func (e Entry) DisplayTitle() string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	return "(untitled)"
}

// Collection is an ordered set of entries loaded from one origin.
type Collection struct {
	Title   string
	Origin  string
	Entries []Entry
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// At returns the entry at index i.
func (c *Collection) At(i int) (Entry, bool) {
	if c == nil || i < 0 || i >= len(c.Entries) {
		return Entry{}, false
	}
	return c.Entries[i], true
}
