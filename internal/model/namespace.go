package model

import (
	"strings"

	"github.com/maxport/maxcensus/pkg"
)

// NamespaceIndex maps a command-path prefix to the set of full command
// paths rooted at that prefix. Prefixes span 2..N segments; the bare
// single-segment root is excluded from aggregation.
type NamespaceIndex map[string]*pkg.StringSet

// NewNamespaceIndex creates an empty index.
func NewNamespaceIndex() NamespaceIndex {
	return make(NamespaceIndex)
}

// Insert records command under prefix.
func (ns NamespaceIndex) Insert(prefix, command string) {
	set, ok := ns[prefix]
	if !ok {
		set = pkg.NewStringSet()
		ns[prefix] = set
	}

	set.Add(command)
}

// Equal reports whether two indexes hold the same prefix/member associations.
func (ns NamespaceIndex) Equal(other NamespaceIndex) bool {
	if len(ns) != len(other) {
		return false
	}

	for prefix, set := range ns {
		otherSet, ok := other[prefix]
		if !ok || !set.Equal(otherSet) {
			return false
		}
	}

	return true
}

// SegmentCount returns the number of non-empty segments in a slash-delimited
// command path. The leading separator does not contribute a segment.
func SegmentCount(path string) int {
	count := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			count++
		}
	}

	return count
}
