package theme

import (
	"fmt"
	"strconv"
	"strings"
)

type feature int

const (
	minWidth feature = iota
	maxWidth
)

type condition struct {
	feature feature
	value   int
}

// Query is a parsed width media query evaluated against terminal columns.
type Query struct {
	raw        string
	conditions []condition
}

// ParseQuery parses a media query such as "(max-width: 99)" or
// "screen and (min-width: 60) and (max-width: 119)".
func ParseQuery(raw string) (Query, error) {
	q := Query{raw: strings.TrimSpace(raw)}
	if q.raw == "" {
		return q, fmt.Errorf("empty media query")
	}

	parts := strings.Split(strings.ToLower(q.raw), " and ")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == 0 {
			part = strings.TrimSpace(strings.TrimPrefix(part, "only "))
			if part == "screen" || part == "all" {
				continue
			}
		}
		cond, err := parseCondition(part)
		if err != nil {
			return Query{}, fmt.Errorf("media query %q: %w", q.raw, err)
		}
		q.conditions = append(q.conditions, cond)
	}
	if len(q.conditions) == 0 {
		return Query{}, fmt.Errorf("media query %q: no width condition", q.raw)
	}
	return q, nil
}

// MustParseQuery is ParseQuery for built-in themes.
func MustParseQuery(raw string) Query {
	q, err := ParseQuery(raw)
	if err != nil {
		panic(err)
	}
	return q
}

func parseCondition(part string) (condition, error) {
	if !strings.HasPrefix(part, "(") || !strings.HasSuffix(part, ")") {
		return condition{}, fmt.Errorf("condition %q is not parenthesized", part)
	}
	name, value, ok := strings.Cut(strings.TrimSuffix(strings.TrimPrefix(part, "("), ")"), ":")
	if !ok {
		return condition{}, fmt.Errorf("condition %q has no value", part)
	}

	var c condition
	switch strings.TrimSpace(name) {
	case "min-width":
		c.feature = minWidth
	case "max-width":
		c.feature = maxWidth
	default:
		return condition{}, fmt.Errorf("unsupported feature %q", strings.TrimSpace(name))
	}

	value = strings.TrimSpace(value)
	for _, unit := range []string{"px", "ch", "col"} {
		value = strings.TrimSuffix(value, unit)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return condition{}, fmt.Errorf("invalid width %q: %w", value, err)
	}
	if n < 0 {
		return condition{}, fmt.Errorf("negative width %d", n)
	}
	c.value = n
	return c, nil
}

// Matches reports whether the query holds for the given width.
// An unknown width (<= 0) never matches.
func (q Query) Matches(width int) bool {
	if width <= 0 || len(q.conditions) == 0 {
		return false
	}
	for _, c := range q.conditions {
		switch c.feature {
		case minWidth:
			if width < c.value {
				return false
			}
		case maxWidth:
			if width > c.value {
				return false
			}
		}
	}
	return true
}

// String returns the query as written.
func (q Query) String() string {
	return q.raw
}
