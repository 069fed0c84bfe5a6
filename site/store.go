package site

// Store provides child listing and id-based resolution for all records in an
// export batch. It is fully populated before rendering starts and is
// read-only afterwards.
type Store interface {
	// ChildrenOf returns the direct children of a page in snapshot order.
	ChildrenOf(pageID string) []*Entry
	// RecordFor resolves an entry by its ID.
	RecordFor(id string) (*Entry, bool)
}

// MemStore keeps a whole snapshot in memory, indexed by ID and by parent.
type MemStore struct {
	entries  []*Entry
	byID     map[string]*Entry
	children map[string][]*Entry
}

// NewMemStore builds a store from parsed snapshot entries. Later duplicates
// of an ID shadow earlier ones in the ID index but children keep snapshot
// order.
func NewMemStore(entries []*Entry) *MemStore {
	s := &MemStore{
		entries:  entries,
		byID:     make(map[string]*Entry, len(entries)),
		children: make(map[string][]*Entry),
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.byID[e.ID] = e
		if e.ParentID != "" {
			s.children[e.ParentID] = append(s.children[e.ParentID], e)
		}
	}
	return s
}

func (s *MemStore) ChildrenOf(pageID string) []*Entry {
	return s.children[pageID]
}

func (s *MemStore) RecordFor(id string) (*Entry, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Entries returns all records in snapshot order.
func (s *MemStore) Entries() []*Entry {
	return s.entries
}
