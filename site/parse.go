package site

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Snapshot parsing. A snapshot is a single XML document listing every entry
// of the export batch:
//
//	<site>
//	  <entry kind="web-page" id="..." parent="...">
//	    <title>...</title>
//	    <pageName>...</pageName>
//	    <updated>RFC3339</updated>
//	    <author>...</author>
//	    <revision>3</revision>
//	    <content>...</content>
//	  </entry>
//	</site>
//
// Snapshots come from various exporters and are often sloppy, so reading is
// permissive: unknown tags are ignored with a warning, broken fields are
// repaired or zeroed rather than failing the whole batch.

// ParseSnapshot reads a site snapshot document and returns its entries in
// document order.
func ParseSnapshot(r io.Reader, log *zap.Logger) ([]*Entry, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read snapshot: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("snapshot has no root element")
	}
	if root.Tag != "site" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	var entries []*Entry
	for _, child := range root.ChildElements() {
		if child.Tag != "entry" {
			log.Warn("Unexpected tag in snapshot, ignoring", zap.String("tag", child.Tag))
			continue
		}
		entries = append(entries, parseEntry(child, log))
	}
	return entries, nil
}

func parseEntry(el *etree.Element, log *zap.Logger) *Entry {
	e := &Entry{
		Kind:     ParseKind(el.SelectAttrValue("kind", "")),
		ID:       strings.TrimSpace(el.SelectAttrValue("id", "")),
		ParentID: strings.TrimSpace(el.SelectAttrValue("parent", "")),
	}
	if e.Kind == KindUnknown {
		log.Warn("Entry has unrecognized kind", zap.String("id", e.ID), zap.String("kind", el.SelectAttrValue("kind", "")))
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "title":
			e.Title = strings.TrimSpace(child.Text())
		case "pageName":
			e.PageName = strings.TrimSpace(child.Text())
		case "author":
			e.Author = strings.TrimSpace(child.Text())
		case "content":
			e.Content = innerXML(child)
		case "updated":
			ts, err := time.Parse(time.RFC3339, strings.TrimSpace(child.Text()))
			if err != nil {
				log.Warn("Entry has invalid updated timestamp, zeroing", zap.String("id", e.ID), zap.Error(err))
				break
			}
			e.Updated = ts
		case "revision":
			rev, err := strconv.Atoi(strings.TrimSpace(child.Text()))
			if err != nil {
				log.Warn("Entry has invalid revision, zeroing", zap.String("id", e.ID), zap.Error(err))
				break
			}
			e.Revision = rev
		default:
			log.Warn("Unexpected tag in entry, ignoring", zap.String("id", e.ID), zap.String("tag", child.Tag))
		}
	}

	// Make sure entry ID is not empty, everything links through it
	if e.ID == "" {
		if refID, err := uuid.NewV7(); err == nil {
			e.ID = refID.String()
			log.Warn("Entry has no ID, correcting", zap.String("title", e.Title), zap.Stringer("new_id", refID))
		}
	}

	if e.Kind.IsPage() && e.PageName == "" {
		if e.Title != "" {
			e.PageName = slug.Make(e.Title)
		} else {
			e.PageName = slug.Make(e.ID)
		}
		log.Debug("Page has no name, derived from title", zap.String("id", e.ID), zap.String("page_name", e.PageName))
	}
	return e
}

// innerXML serializes the element's children back to markup, preserving any
// inline tags the exporter kept inside content.
func innerXML(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			doc := etree.NewDocument()
			doc.AddChild(t.Copy())
			if s, err := doc.WriteToString(); err == nil {
				sb.WriteString(s)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
