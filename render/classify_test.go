package render

import (
	"testing"
	"time"

	"sitemirror/site"
)

func TestOrderedSetInsert(t *testing.T) {
	t.Run("keeps title order regardless of insertion order", func(t *testing.T) {
		s := newOrderedSet(byTitle)
		for _, title := range []string{"mango", "apple", "zucchini", "banana"} {
			s.insert(&site.Entry{ID: title, Title: title})
		}
		want := []string{"apple", "banana", "mango", "zucchini"}
		got := s.slice()
		if len(got) != len(want) {
			t.Fatalf("expected %d entries, got %d", len(want), len(got))
		}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
			}
		}
	})

	t.Run("duplicate insert is idempotent", func(t *testing.T) {
		s := newOrderedSet(byTitle)
		e := &site.Entry{ID: "x", Title: "same"}
		s.insert(e)
		s.insert(e)
		if s.size() != 1 {
			t.Fatalf("expected 1 entry after duplicate insert, got %d", s.size())
		}
	})

	t.Run("orders by updated", func(t *testing.T) {
		s := newOrderedSet(byUpdated)
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		s.insert(&site.Entry{ID: "b", Updated: base.Add(time.Hour)})
		s.insert(&site.Entry{ID: "a", Updated: base})
		got := s.slice()
		if got[0].ID != "a" || got[1].ID != "b" {
			t.Fatalf("entries not in chronological order: %v", got)
		}
	})
}

func TestClassifyChildren(t *testing.T) {
	t.Run("nil child is rejected", func(t *testing.T) {
		_, err := classifyChildren([]*site.Entry{nil})
		if err == nil {
			t.Fatal("expected error for nil child")
		}
	})

	t.Run("empty input yields empty collections", func(t *testing.T) {
		c, err := classifyChildren(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.subpages.size() != 0 || c.attachments.size() != 0 || c.comments.size() != 0 {
			t.Fatal("expected empty collections")
		}
	})

	t.Run("all page kinds are page-like", func(t *testing.T) {
		kinds := []site.Kind{
			site.KindWebPage, site.KindListPage, site.KindAnnouncementsPage,
			site.KindAnnouncement, site.KindFileCabinet,
		}
		var children []*site.Entry
		for i, k := range kinds {
			children = append(children, &site.Entry{ID: string(k), Kind: k, Title: string(rune('a' + i))})
		}
		c, err := classifyChildren(children)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.subpages.size() != len(kinds) {
			t.Fatalf("expected %d subpages, got %d", len(kinds), c.subpages.size())
		}
	})
}
