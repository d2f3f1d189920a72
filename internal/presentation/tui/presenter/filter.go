package presenter

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sahilm/fuzzy"
)

// FilterEntries is a list.FilterFunc. Every whitespace-separated word in
// term must fuzzy-match a target; matches are ranked by their combined
// score, ties keeping collection order.
func FilterEntries(term string, targets []string) []list.Rank {
	words := strings.Fields(term)
	if len(words) == 0 {
		ranks := make([]list.Rank, len(targets))
		for i := range targets {
			ranks[i] = list.Rank{Index: i}
		}
		return ranks
	}

	type hit struct {
		score   int
		matched []int
	}
	hits := map[int]*hit{}
	for i, word := range words {
		seen := map[int]bool{}
		for _, m := range fuzzy.Find(word, targets) {
			if i == 0 {
				hits[m.Index] = &hit{score: m.Score, matched: m.MatchedIndexes}
				continue
			}
			h, ok := hits[m.Index]
			if !ok {
				continue
			}
			h.score += m.Score
			h.matched = append(h.matched, m.MatchedIndexes...)
			seen[m.Index] = true
		}
		if i == 0 {
			continue
		}
		for idx := range hits {
			if !seen[idx] {
				delete(hits, idx)
			}
		}
	}

	ranks := make([]list.Rank, 0, len(hits))
	for idx, h := range hits {
		matched := slices.Clone(h.matched)
		slices.Sort(matched)
		ranks = append(ranks, list.Rank{Index: idx, MatchedIndexes: slices.Compact(matched)})
	}
	slices.SortFunc(ranks, func(a, b list.Rank) int {
		if sa, sb := hits[a.Index].score, hits[b.Index].score; sa != sb {
			return sb - sa
		}
		return a.Index - b.Index
	})
	return ranks
}
