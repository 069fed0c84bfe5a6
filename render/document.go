package render

import (
	"github.com/beevik/etree"
)

// PageDocument assembles the complete HTML document for a page from the
// renderer's fragments, in the fixed page layout order: breadcrumbs, title,
// content, kind-specific additions, sub-page links, attachments, comments.
// Empty fragments are skipped.
func PageDocument(pr *PageRenderer, title, cssHref string) *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	html := doc.CreateElement("html")
	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	if cssHref != "" {
		link := head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("type", "text/css")
		link.CreateAttr("href", cssHref)
	}

	titleElem := head.CreateElement("title")
	if title == "" {
		title = pr.Entry().Title
	}
	titleElem.SetText(title)

	body := html.CreateElement("body")
	for _, fragment := range []*etree.Element{
		pr.RenderParentLinks(),
		pr.RenderTitle(),
		pr.RenderContent(),
		pr.RenderAdditionalContent(),
		pr.RenderSubpageLinks(),
		pr.RenderAttachments(),
		pr.RenderComments(),
	} {
		if fragment != nil {
			body.AddChild(fragment)
		}
	}
	return doc
}
