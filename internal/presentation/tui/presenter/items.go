// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/flank/internal/domain/content"
)

// Item is a view model for list items.
type Item struct {
	TitleText string
	Desc      string
	Published string
	ID        string
	Index     int
	Opened    bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// IsOpened reports whether the item is shown in the main region.
func (i *Item) IsOpened() bool { return i.Opened }

// EntryIndex returns the index of the entry in its collection.
func (i *Item) EntryIndex() int { return i.Index }

// Description returns a formatted description for list display.
func (i *Item) Description() string {
	if i.Published != "" {
		return fmt.Sprintf("%s - %s", i.Published, i.Desc)
	}
	return i.Desc
}

// BuildEntryItems builds list items for a collection.
func BuildEntryItems(c *content.Collection, opened int) []list.Item {
	if c == nil {
		return nil
	}
	items := make([]list.Item, len(c.Entries))
	for i, e := range c.Entries {
		published := ""
		if !e.Published.IsZero() {
			published = e.Published.Format("2006-01-02")
		}
		items[i] = &Item{
			TitleText: e.DisplayTitle(),
			Desc:      e.Summary,
			Published: published,
			ID:        e.ID,
			Index:     i,
			Opened:    i == opened,
		}
	}
	return items
}

// ApplyEntryList updates the list model with entry items.
func ApplyEntryList(model *list.Model, c *content.Collection, opened int) {
	model.SetItems(BuildEntryItems(c, opened))
}

// MarkOpened flags the item for entry index opened, keeping the list's
// items, filter and cursor as they are.
func MarkOpened(model *list.Model, opened int) {
	for _, li := range model.Items() {
		if it, ok := li.(*Item); ok {
			it.Opened = it.Index == opened
		}
	}
}
