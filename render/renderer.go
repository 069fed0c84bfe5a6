// Package render assembles markup element trees for single site pages. It
// classifies a page's children, orders them deterministically, resolves the
// ancestor chain for breadcrumbs and projects all of it into etree fragments
// through an element-factory collaborator. The package performs no I/O - the
// entry store and the factory are pre-populated collaborators and every
// render operation is a pure function of state built at construction.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"sitemirror/site"
)

// ExtraContentFunc produces page-kind specific fragments appended after the
// main content. Returning nil means there is nothing to add.
type ExtraContentFunc func(pr *PageRenderer) *etree.Element

// PageRenderer renders one page entry. Children are classified and sorted
// once at construction; after that every render method is an independent,
// idempotent projection. Instances are created per page and are not meant to
// be shared between pages - distinct instances share no state.
type PageRenderer struct {
	entry   *site.Entry
	store   site.Store
	factory ElementFactory
	cols    collections
	extra   map[site.Kind]ExtraContentFunc
	log     *zap.Logger
}

// Option adjusts renderer construction.
type Option func(*PageRenderer)

// WithExtraContent registers kind-keyed additional content producers used by
// RenderAdditionalContent.
func WithExtraContent(extra map[site.Kind]ExtraContentFunc) Option {
	return func(pr *PageRenderer) {
		pr.extra = extra
	}
}

// WithLogger replaces the default nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(pr *PageRenderer) {
		if log != nil {
			pr.log = log
		}
	}
}

// NewPageRenderer creates a renderer for a single page entry backed by the
// given store snapshot. A nil entry, store or factory is a caller error.
func NewPageRenderer(entry *site.Entry, store site.Store, factory ElementFactory, opts ...Option) (*PageRenderer, error) {
	if entry == nil {
		return nil, errors.New("entry must not be nil")
	}
	if store == nil {
		return nil, errors.New("store must not be nil")
	}
	if factory == nil {
		return nil, errors.New("element factory must not be nil")
	}
	pr := &PageRenderer{
		entry:   entry,
		store:   store,
		factory: factory,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(pr)
	}
	cols, err := classifyChildren(store.ChildrenOf(entry.ID))
	if err != nil {
		return nil, fmt.Errorf("unable to classify children of %q: %w", entry.ID, err)
	}
	pr.cols = cols
	return pr, nil
}

// Entry returns the page entry this renderer was created for.
func (pr *PageRenderer) Entry() *site.Entry {
	return pr.entry
}

// Subpages returns the page's sub-pages in title order. Read-only.
func (pr *PageRenderer) Subpages() []*site.Entry {
	return pr.cols.subpages.slice()
}

// Attachments returns the page's attachments in updated order. Read-only.
func (pr *PageRenderer) Attachments() []*site.Entry {
	return pr.cols.attachments.slice()
}

// Comments returns the page's comments in updated order. Read-only.
func (pr *PageRenderer) Comments() []*site.Entry {
	return pr.cols.comments.slice()
}

// RenderTitle renders the page heading.
func (pr *PageRenderer) RenderTitle() *etree.Element {
	h3 := etree.NewElement("h3")
	h3.AddChild(pr.factory.TitleElement(pr.entry))
	return h3
}

// RenderContent renders the update line followed by the page body.
func (pr *PageRenderer) RenderContent() *etree.Element {
	div := etree.NewElement("div")
	div.CreateText("Updated on ")
	div.AddChild(pr.factory.UpdatedElement(pr.entry))
	div.CreateText(" by ")
	div.AddChild(pr.factory.AuthorElement(pr.entry))
	div.AddChild(pr.factory.ContentElement(pr.entry))
	return div
}

// RenderAttachments renders the attachment listing, one row per attachment
// with a download link relative to the page directory. Nil when the page has
// no attachments.
func (pr *PageRenderer) RenderAttachments() *etree.Element {
	attachments := pr.cols.attachments.slice()
	if len(attachments) == 0 {
		return nil
	}
	div := etree.NewElement("div")
	div.CreateElement("hr")
	h4 := div.CreateElement("h4")
	h4.SetText(fmt.Sprintf("Attachments (%d)", len(attachments)))
	for _, attachment := range attachments {
		row := pr.factory.EntryElement(attachment, "div")
		link := etree.NewElement("a")
		link.CreateAttr("href", pr.entry.PageName+"/"+attachment.Title)
		link.AddChild(pr.factory.TitleElement(attachment))
		row.AddChild(link)
		row.CreateText(" - on ")
		row.AddChild(pr.factory.UpdatedElement(attachment))
		row.CreateText(" by ")
		row.AddChild(pr.factory.AuthorElement(attachment))
		row.CreateText(" (Version ")
		row.AddChild(pr.factory.RevisionElement(attachment))
		row.CreateText(")")
		div.AddChild(row)
	}
	return div
}

// RenderComments renders the comment listing in updated order. Nil when the
// page has no comments.
func (pr *PageRenderer) RenderComments() *etree.Element {
	comments := pr.cols.comments.slice()
	if len(comments) == 0 {
		return nil
	}
	div := etree.NewElement("div")
	div.CreateElement("hr")
	h4 := div.CreateElement("h4")
	h4.SetText(fmt.Sprintf("Comments (%d)", len(comments)))
	for _, comment := range comments {
		row := pr.factory.EntryElement(comment, "div")
		row.AddChild(pr.factory.AuthorElement(comment))
		row.CreateText(" - ")
		row.AddChild(pr.factory.UpdatedElement(comment))
		row.CreateText(" (Version ")
		row.AddChild(pr.factory.RevisionElement(comment))
		row.CreateText(")")
		row.AddChild(pr.factory.ContentElement(comment))
		div.AddChild(row)
	}
	return div
}

// RenderSubpageLinks renders comma-joined links to the page's sub-pages in
// title order. Nil when the page has no sub-pages.
func (pr *PageRenderer) RenderSubpageLinks() *etree.Element {
	subpages := pr.cols.subpages.slice()
	if len(subpages) == 0 {
		return nil
	}
	div := etree.NewElement("div")
	div.CreateElement("hr")
	div.CreateText(fmt.Sprintf("Subpages (%d): ", len(subpages)))
	for i, subpage := range subpages {
		if i > 0 {
			div.CreateText(", ")
		}
		div.AddChild(pr.factory.HyperLink(subpage.PageName+"/index.html", subpage.Title))
	}
	return div
}

// RenderParentLinks renders the breadcrumb trail from the site root down to
// the immediate parent. The ancestor at depth i from the root links to its
// index page through i+1 up-directory segments. Nil when no ancestor
// resolves.
func (pr *PageRenderer) RenderParentLinks() *etree.Element {
	ancestors := pr.ancestors()
	if len(ancestors) == 0 {
		return nil
	}
	div := etree.NewElement("div")
	for i := len(ancestors) - 1; i >= 0; i-- {
		href := strings.Repeat("../", i+1) + "index.html"
		div.AddChild(pr.factory.HyperLink(href, ancestors[i].Title))
		div.CreateText(" > ")
	}
	return div
}

// ancestors resolves the parent chain in immediate-parent-to-root order. A
// parent reference that does not resolve ends the chain silently - a broken
// reference degrades the breadcrumb instead of failing the render. A visited
// set keeps parent cycles in sloppy snapshots from looping forever.
func (pr *PageRenderer) ancestors() []*site.Entry {
	var ancestors []*site.Entry
	visited := map[string]bool{pr.entry.ID: true}
	current := pr.entry
	for current.ParentID != "" {
		parent, ok := pr.store.RecordFor(current.ParentID)
		if !ok {
			pr.log.Debug("Parent reference does not resolve, truncating breadcrumb",
				zap.String("id", current.ID), zap.String("parent", current.ParentID))
			break
		}
		if visited[parent.ID] {
			pr.log.Warn("Parent cycle detected, truncating breadcrumb", zap.String("id", parent.ID))
			break
		}
		visited[parent.ID] = true
		ancestors = append(ancestors, parent)
		current = parent
	}
	return ancestors
}

// RenderAdditionalContent renders page-kind specific additions through the
// registered producer table. Without a producer for this page's kind there
// is nothing to add.
func (pr *PageRenderer) RenderAdditionalContent() *etree.Element {
	if fn, ok := pr.extra[pr.entry.Kind]; ok && fn != nil {
		return fn(pr)
	}
	return nil
}
