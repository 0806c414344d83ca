// Package pkg provides small reusable utilities for maxcensus.
package pkg

import "sort"

// StringSet is an unordered collection of unique strings with sorted iteration.
type StringSet struct {
	members map[string]struct{}
}

// NewStringSet creates a StringSet containing the provided values.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{members: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.members[v] = struct{}{}
	}

	return s
}

// Add inserts value into the set. Adding an existing member is a no-op.
func (s *StringSet) Add(value string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}

	s.members[value] = struct{}{}
}

// Contains reports whether value is a member of the set.
func (s *StringSet) Contains(value string) bool {
	if s == nil {
		return false
	}

	_, ok := s.members[value]

	return ok
}

// Len returns the number of members.
func (s *StringSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.members)
}

// Sorted returns the members in ascending lexicographic order.
func (s *StringSet) Sorted() []string {
	if s == nil {
		return nil
	}

	out := make([]string, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}

	sort.Strings(out)

	return out
}

// Equal reports whether two sets contain exactly the same members.
func (s *StringSet) Equal(other *StringSet) bool {
	if s.Len() != other.Len() {
		return false
	}

	if s == nil {
		return true
	}

	for v := range s.members {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}
