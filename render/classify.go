package render

import (
	"errors"

	"sitemirror/site"
)

// collections holds a page's direct children split by kind, each collection
// already in its rendering order. Built once per renderer and never mutated
// afterwards.
type collections struct {
	subpages    *orderedSet
	attachments *orderedSet
	comments    *orderedSet
}

// classifyChildren partitions a page's direct children: attachments and
// comments by their kind, anything page-like into sub-pages. Children that
// are none of the three (list items, unknown kinds) are dropped silently.
// A nil child is a caller error.
func classifyChildren(children []*site.Entry) (collections, error) {
	c := collections{
		subpages:    newOrderedSet(byTitle),
		attachments: newOrderedSet(byUpdated),
		comments:    newOrderedSet(byUpdated),
	}
	for _, child := range children {
		if child == nil {
			return collections{}, errors.New("child entry must not be nil")
		}
		switch {
		case child.Kind == site.KindAttachment:
			c.attachments.insert(child)
		case child.Kind == site.KindComment:
			c.comments.insert(child)
		case child.Kind.IsPage():
			c.subpages.insert(child)
		}
	}
	return c, nil
}
