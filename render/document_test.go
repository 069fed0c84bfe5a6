package render

import (
	"strings"
	"testing"

	"sitemirror/site"
)

func TestPageDocument(t *testing.T) {
	t.Run("composes fragments in page order", func(t *testing.T) {
		root := &site.Entry{ID: "root", Kind: site.KindWebPage, Title: "Root", PageName: "root"}
		page := &site.Entry{ID: "p", Kind: site.KindWebPage, Title: "Page", PageName: "page", ParentID: "root",
			Updated: ts(t, "2024-05-01T00:00:00Z"), Author: "alice", Revision: 1}
		entries := []*site.Entry{
			root, page,
			{ID: "s1", Kind: site.KindWebPage, Title: "Sub", PageName: "sub", ParentID: "p"},
			{ID: "a1", Kind: site.KindAttachment, Title: "a.txt", ParentID: "p", Updated: ts(t, "2024-01-01T00:00:00Z")},
			{ID: "c1", Kind: site.KindComment, ParentID: "p", Updated: ts(t, "2024-01-02T00:00:00Z")},
		}
		pr := newRenderer(t, page, entries)

		doc := PageDocument(pr, "Page - My Site", "../style.css")
		html := doc.Root()
		if html == nil || html.Tag != "html" {
			t.Fatal("expected html root")
		}
		head := html.SelectElement("head")
		if head == nil {
			t.Fatal("expected head")
		}
		if title := head.SelectElement("title"); title == nil || title.Text() != "Page - My Site" {
			t.Fatalf("unexpected document title: %v", title)
		}
		link := head.SelectElement("link")
		if link == nil || link.SelectAttrValue("href", "") != "../style.css" {
			t.Fatalf("expected stylesheet link, got %v", link)
		}

		body := html.SelectElement("body")
		if body == nil {
			t.Fatal("expected body")
		}
		// breadcrumbs, content, subpages, attachments, comments are divs,
		// the title is an h3 between breadcrumbs and content
		kids := body.ChildElements()
		var tags []string
		for _, el := range kids {
			tags = append(tags, el.Tag)
		}
		want := "div h3 div div div div"
		if got := strings.Join(tags, " "); got != want {
			t.Fatalf("unexpected body layout: got %q, want %q", got, want)
		}
	})

	t.Run("skips empty fragments", func(t *testing.T) {
		page := &site.Entry{ID: "p", Kind: site.KindWebPage, Title: "Lonely", PageName: "lonely"}
		pr := newRenderer(t, page, []*site.Entry{page})

		doc := PageDocument(pr, "", "")
		head := doc.Root().SelectElement("head")
		if head.SelectElement("link") != nil {
			t.Error("expected no stylesheet link")
		}
		if title := head.SelectElement("title"); title == nil || title.Text() != "Lonely" {
			t.Errorf("expected fallback to page title, got %v", title)
		}

		body := doc.Root().SelectElement("body")
		kids := body.ChildElements()
		if len(kids) != 2 || kids[0].Tag != "h3" || kids[1].Tag != "div" {
			t.Fatalf("expected only title and content, got %d children", len(kids))
		}
	})
}
