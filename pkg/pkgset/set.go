// Package pkgset provides an insertion-ordered set of package names.
package pkgset

// Set is a set of package names that remembers the order names were added in.
// The zero value is ready to use.
type Set struct {
	index map[string]struct{}
	items []string
}

// New creates a set holding names, dropping duplicates after their first occurrence
func New(names ...string) *Set {
	s := &Set{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

func (s *Set) m() map[string]struct{} {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	return s.index
}

// Add inserts name and reports whether it was not already present
func (s *Set) Add(name string) bool {
	if s.Has(name) {
		return false
	}
	s.m()[name] = struct{}{}
	s.items = append(s.items, name)
	return true
}

// Has reports whether name is in the set
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Remove deletes name from the set
func (s *Set) Remove(name string) {
	if !s.Has(name) {
		return
	}
	delete(s.index, name)
	for i, item := range s.items {
		if item == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Replace swaps old for name in old's position. If name is already present,
// old is only removed.
func (s *Set) Replace(old, name string) {
	if !s.Has(old) || old == name {
		return
	}
	if s.Has(name) {
		s.Remove(old)
		return
	}
	delete(s.index, old)
	s.m()[name] = struct{}{}
	for i, item := range s.items {
		if item == old {
			s.items[i] = name
			return
		}
	}
}

// Len returns the number of names in the set
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns a copy of the names in insertion order
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
