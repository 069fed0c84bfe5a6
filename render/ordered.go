package render

import (
	"slices"
	"strings"

	"sitemirror/site"
)

// Comparators defining the rendering order of classified children.
// Navigational content (sub-pages) orders by title, ephemeral content
// (attachments, comments) orders by recency.

func byTitle(a, b *site.Entry) int {
	return strings.Compare(a.Title, b.Title)
}

func byUpdated(a, b *site.Entry) int {
	return a.Updated.Compare(b.Updated)
}

// orderedSet keeps entries sorted by a comparator with set semantics: an
// entry whose sort key compares equal to one already present collapses into
// the existing representative. This is ordering-set collapse, not
// deduplication by identity - two distinct sub-pages with the same title
// keep a single representative, which is the accepted export behavior.
type orderedSet struct {
	cmp     func(a, b *site.Entry) int
	entries []*site.Entry
}

func newOrderedSet(cmp func(a, b *site.Entry) int) *orderedSet {
	return &orderedSet{cmp: cmp}
}

// insert is idempotent under equal sort keys, duplicate inserts collapse.
func (s *orderedSet) insert(e *site.Entry) {
	pos, found := slices.BinarySearchFunc(s.entries, e, s.cmp)
	if found {
		return
	}
	s.entries = slices.Insert(s.entries, pos, e)
}

func (s *orderedSet) slice() []*site.Entry {
	return s.entries
}

func (s *orderedSet) size() int {
	return len(s.entries)
}
