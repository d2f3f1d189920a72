package theme

import (
	"sort"
	"strings"
)

// Catalog maps theme names to themes.
type Catalog struct {
	themes map[string]Theme
}

// NewCatalog returns a catalog holding the built-in themes plus extra.
// Extra themes replace built-ins of the same name.
func NewCatalog(extra ...Theme) *Catalog {
	c := &Catalog{themes: map[string]Theme{}}
	for _, t := range []Theme{Joy, Dusk, Paper} {
		c.register(t)
	}
	for _, t := range extra {
		c.register(t)
	}
	return c
}

func (c *Catalog) register(t Theme) {
	c.themes[normalizeKey(t.Name)] = t
}

// Get returns a theme by name.
func (c *Catalog) Get(name string) (Theme, bool) {
	if c == nil {
		return Theme{}, false
	}
	t, ok := c.themes[normalizeKey(name)]
	return t, ok
}

// Resolve returns the named theme, or the default theme when name is empty
// or unknown.
func (c *Catalog) Resolve(name string) Theme {
	if t, ok := c.Get(name); ok {
		return t
	}
	if t, ok := c.Get(DefaultName); ok {
		return t
	}
	return Joy
}

// Names returns all registered theme names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.themes))
	for _, t := range c.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
