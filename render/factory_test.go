package render

import (
	"testing"
	"time"

	"sitemirror/site"
)

func TestElementFactoryFragments(t *testing.T) {
	f := NewElementFactory()
	when, _ := time.Parse(time.RFC3339, "2024-06-01T09:30:00Z")
	entry := &site.Entry{
		ID: "e1", Kind: site.KindAttachment, Title: "notes.txt",
		Updated: when, Author: "dave", Revision: 3,
	}

	t.Run("entry wrapper", func(t *testing.T) {
		el := f.EntryElement(entry, "div")
		if el.Tag != "div" {
			t.Fatalf("expected div, got %q", el.Tag)
		}
		if class := el.SelectAttrValue("class", ""); class != "hentry attachment" {
			t.Errorf("unexpected class %q", class)
		}
		if id := el.SelectAttrValue("id", ""); id != "e1" {
			t.Errorf("unexpected id %q", id)
		}
	})

	t.Run("title", func(t *testing.T) {
		el := f.TitleElement(entry)
		if el.SelectAttrValue("class", "") != "entry-title" || el.Text() != "notes.txt" {
			t.Errorf("unexpected title fragment: %q %q", el.SelectAttrValue("class", ""), el.Text())
		}
	})

	t.Run("updated keeps machine readable value", func(t *testing.T) {
		el := f.UpdatedElement(entry)
		if el.Tag != "abbr" || el.SelectAttrValue("class", "") != "updated" {
			t.Fatalf("unexpected updated fragment %v", el)
		}
		if title := el.SelectAttrValue("title", ""); title != "2024-06-01T09:30:00Z" {
			t.Errorf("expected RFC3339 title attribute, got %q", title)
		}
		if el.Text() == "" {
			t.Error("expected human readable text")
		}
	})

	t.Run("author vcard", func(t *testing.T) {
		el := f.AuthorElement(entry)
		name := el.FindElement("./span/span")
		if name == nil || name.Text() != "dave" {
			t.Fatalf("expected nested fn span with author name, got %v", name)
		}
	})

	t.Run("revision", func(t *testing.T) {
		el := f.RevisionElement(entry)
		if el.Text() != "3" {
			t.Errorf("expected revision 3, got %q", el.Text())
		}
	})

	t.Run("hyperlink", func(t *testing.T) {
		a := f.HyperLink("sub/index.html", "Sub")
		if a.Tag != "a" || a.SelectAttrValue("href", "") != "sub/index.html" || a.Text() != "Sub" {
			t.Errorf("unexpected hyperlink %v", a)
		}
	})
}

func TestContentElementMarkup(t *testing.T) {
	f := NewElementFactory()

	t.Run("well formed markup is nested", func(t *testing.T) {
		el := f.ContentElement(&site.Entry{Content: "before <b>bold</b> after"})
		if b := el.SelectElement("b"); b == nil || b.Text() != "bold" {
			t.Fatalf("expected parsed b element, got %v", b)
		}
	})

	t.Run("broken markup falls back to text", func(t *testing.T) {
		raw := "a < b and unclosed <b"
		el := f.ContentElement(&site.Entry{Content: raw})
		if len(el.ChildElements()) != 0 {
			t.Fatalf("expected no child elements for broken markup")
		}
		if el.Text() == "" {
			t.Fatal("expected fallback text")
		}
	})

	t.Run("empty content yields empty block", func(t *testing.T) {
		el := f.ContentElement(&site.Entry{Content: "   "})
		if el.Text() != "" || len(el.ChildElements()) != 0 {
			t.Fatal("expected empty entry-content block")
		}
	})
}
