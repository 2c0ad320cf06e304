package message

// ReadSet is the set of message IDs marked read. It remembers insertion
// order so it round-trips through its persisted list form.
type ReadSet struct {
	ids   []string
	index map[string]struct{}
}

// NewReadSet builds a set from ids, dropping duplicates.
func NewReadSet(ids ...string) *ReadSet {
	s := &ReadSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was new.
func (s *ReadSet) Add(id string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Has reports whether id is in the set.
func (s *ReadSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Len returns the number of IDs.
func (s *ReadSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the IDs in insertion order.
func (s *ReadSet) IDs() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
