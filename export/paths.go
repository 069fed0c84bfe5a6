package export

import (
	"os"
	"strings"

	"github.com/gosimple/slug"

	"sitemirror/site"
)

// PagePath returns the relative output directory of a page: the page-name
// chain from the site root down to the page itself, slash-joined. The walk
// follows parent references with the same rules as the breadcrumb trail - an
// unresolved parent or a cycle truncates the chain there.
func PagePath(entry *site.Entry, store site.Store) string {
	segments := []string{segmentFor(entry)}
	visited := map[string]bool{entry.ID: true}
	current := entry
	for current.ParentID != "" {
		parent, ok := store.RecordFor(current.ParentID)
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		segments = append([]string{segmentFor(parent)}, segments...)
		current = parent
	}
	return strings.Join(segments, "/")
}

func segmentFor(e *site.Entry) string {
	if e.PageName != "" {
		return e.PageName
	}
	if e.Title != "" {
		return slug.Make(e.Title)
	}
	return slug.Make(e.ID)
}

// cleanFileName removes characters not allowed in file names.
func cleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if strings.ContainsRune(string(os.PathSeparator)+string(os.PathListSeparator), sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
