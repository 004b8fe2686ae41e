package intset

import "iter"

// All returns a sequence over the current elements. The order is unspecified.
// The sequence may be restarted; removing the element just yielded is allowed.
func (s *IntHashSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, entry := range s.table {
			for entry != nil {
				next := entry.Next
				if !yield(entry.Value) {
					return
				}
				entry = next
			}
		}
	}
}

// AddAll adds every element of other to s.
func (s *IntHashSet) AddAll(other *IntHashSet) {
	for v := range other.All() {
		s.Add(v)
	}
}

// ContainsAll reports whether every element of other is in s.
func (s *IntHashSet) ContainsAll(other *IntHashSet) bool {
	for v := range other.All() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Equals reports whether s and other hold the same elements.
// Equal sizes plus one-way containment is enough because neither set holds
// duplicates.
func (s *IntHashSet) Equals(other *IntHashSet) bool {
	if s.size != other.size {
		return false
	}
	return s.ContainsAll(other)
}

// RemoveAll removes every element of other from s.
func (s *IntHashSet) RemoveAll(other *IntHashSet) {
	for v := range other.All() {
		s.Remove(v)
	}
}

// RetainAll keeps only the elements of s that are also in other.
func (s *IntHashSet) RetainAll(other *IntHashSet) {
	common := New(WithLogger(s.logger))
	for v := range other.All() {
		if s.Contains(v) {
			common.Add(v)
		}
	}
	s.Clear()
	s.AddAll(common)
}

// Clone returns an independent copy of s with the same options.
func (s *IntHashSet) Clone() *IntHashSet {
	c := New(WithLogger(s.logger))
	c.debug = s.debug
	c.AddAll(s)
	return c
}
