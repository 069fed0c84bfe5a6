// Package site defines the exported site data model - entries, their kinds
// and the pre-populated lookup store consumed by the renderer.
package site

import (
	"strings"
	"time"
)

// Kind distinguishes the different kinds of site entries.
type Kind string

const (
	KindWebPage           Kind = "web-page"
	KindListPage          Kind = "list-page"
	KindAnnouncementsPage Kind = "announcements-page"
	KindAnnouncement      Kind = "announcement"
	KindFileCabinet       Kind = "file-cabinet"
	KindAttachment        Kind = "attachment"
	KindComment           Kind = "comment"
	KindListItem          Kind = "list-item"
	KindUnknown           Kind = "unknown"
)

// IsPage reports whether entries of this kind act as pages - carry a page
// name usable as an URL segment and may own children of their own.
func (k Kind) IsPage() bool {
	switch k {
	case KindWebPage, KindListPage, KindAnnouncementsPage, KindAnnouncement, KindFileCabinet:
		return true
	}
	return false
}

// ParseKind maps a snapshot kind attribute to a known Kind. Anything not
// recognized becomes KindUnknown, classification drops it later.
func ParseKind(s string) Kind {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindWebPage, KindListPage, KindAnnouncementsPage, KindAnnouncement,
		KindFileCabinet, KindAttachment, KindComment, KindListItem:
		return k
	}
	return KindUnknown
}

// Entry is a single record from the exported site snapshot. Entries are not
// modified once the store is built.
type Entry struct {
	ID       string
	Kind     Kind
	Title    string
	PageName string // URL segment, meaningful for page kinds only
	Content  string
	Updated  time.Time
	Author   string
	Revision int
	ParentID string
}
