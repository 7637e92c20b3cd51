package history

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Query + " " + s[i].Tool }

func (s entrySource) Len() int { return len(s) }

// Find returns the entries whose query or tool fuzzy-match q, in stored order.
// An empty q returns every entry.
func (s *Store) Find(q string) []Entry {
	if q == "" {
		return s.Entries()
	}
	matches := fuzzy.FindFrom(q, entrySource(s.entries))
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	sort.Ints(idx)

	out := make([]Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.entries[i])
	}
	return out
}
