package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"sitemirror/site"
)

// ElementFactory produces the atomic markup fragments the renderer composes
// into page output. The default implementation emits hAtom-classed
// fragments; alternative factories may change the microformat without
// touching the renderer.
type ElementFactory interface {
	// EntryElement returns the wrapping container for an entry's row.
	EntryElement(e *site.Entry, tag string) *etree.Element
	TitleElement(e *site.Entry) *etree.Element
	UpdatedElement(e *site.Entry) *etree.Element
	AuthorElement(e *site.Entry) *etree.Element
	RevisionElement(e *site.Entry) *etree.Element
	ContentElement(e *site.Entry) *etree.Element
	HyperLink(href, text string) *etree.Element
}

// NewElementFactory returns the default hAtom element factory.
func NewElementFactory() ElementFactory {
	return &elementFactory{}
}

type elementFactory struct{}

// updatedLayout is the human readable form, the machine readable RFC3339
// value goes into the title attribute.
const updatedLayout = "Mon, 2 Jan 2006 15:04:05"

func (f *elementFactory) EntryElement(e *site.Entry, tag string) *etree.Element {
	el := etree.NewElement(tag)
	el.CreateAttr("class", "hentry "+string(e.Kind))
	el.CreateAttr("id", e.ID)
	return el
}

func (f *elementFactory) TitleElement(e *site.Entry) *etree.Element {
	el := etree.NewElement("span")
	el.CreateAttr("class", "entry-title")
	el.SetText(e.Title)
	return el
}

func (f *elementFactory) UpdatedElement(e *site.Entry) *etree.Element {
	el := etree.NewElement("abbr")
	el.CreateAttr("class", "updated")
	el.CreateAttr("title", e.Updated.Format(time.RFC3339))
	el.SetText(e.Updated.Format(updatedLayout))
	return el
}

func (f *elementFactory) AuthorElement(e *site.Entry) *etree.Element {
	el := etree.NewElement("span")
	el.CreateAttr("class", "author")
	vcard := el.CreateElement("span")
	vcard.CreateAttr("class", "vcard")
	name := vcard.CreateElement("span")
	name.CreateAttr("class", "fn")
	name.SetText(e.Author)
	return el
}

func (f *elementFactory) RevisionElement(e *site.Entry) *etree.Element {
	el := etree.NewElement("span")
	el.CreateAttr("class", "sites:revision")
	el.SetText(strconv.Itoa(e.Revision))
	return el
}

func (f *elementFactory) ContentElement(e *site.Entry) *etree.Element {
	el := etree.NewElement("div")
	el.CreateAttr("class", "entry-content")
	setInnerMarkup(el, e.Content)
	return el
}

func (f *elementFactory) HyperLink(href, text string) *etree.Element {
	a := etree.NewElement("a")
	a.CreateAttr("href", href)
	a.SetText(text)
	return a
}

// setInnerMarkup parses raw stored markup and attaches it under el. Stored
// content is not guaranteed to be well-formed, so fall back to a plain text
// node when it cannot be parsed.
func setInnerMarkup(el *etree.Element, raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromString("<wrapper>" + raw + "</wrapper>"); err != nil || doc.Root() == nil {
		el.SetText(raw)
		return
	}
	kids := append([]etree.Token(nil), doc.Root().Child...)
	for _, tok := range kids {
		el.AddChild(tok)
	}
}
