// Package model defines the data structures for the patch census.
package model

// Path represents a file system path.
type Path string

// Node is one object harvested from a patch document. Field names in the
// JSON encoding follow the patch file vocabulary so the emitted artifacts
// line up with the source documents.
type Node struct {
	DeclaredType string    `json:"class"`
	Text         string    `json:"text"`
	ID           string    `json:"id"`
	Inlets       int       `json:"numinlets"`
	Outlets      int       `json:"numoutlets"`
	Rect         []float64 `json:"patching_rect"`
	SourceFile   Path      `json:"patch_file,omitempty"`
	AncestryPath string    `json:"parent_path"`

	// EffectiveKey is set only when the declared type is the generic
	// container sentinel and the key was derived from the node text.
	EffectiveKey string `json:"actual_class,omitempty"`

	// Args holds the remainder of the node text after the effective key.
	Args string `json:"args,omitempty"`
}

// NodeIndex maps an effective key to its instances in traversal order.
type NodeIndex map[string][]Node

// NewNodeIndex creates an empty index.
func NewNodeIndex() NodeIndex {
	return make(NodeIndex)
}

// Add appends a node under the given effective key.
func (idx NodeIndex) Add(key string, node Node) {
	idx[key] = append(idx[key], node)
}

// Merge folds other into idx, preserving per-key instance order.
func (idx NodeIndex) Merge(other NodeIndex) {
	for key, nodes := range other {
		idx[key] = append(idx[key], nodes...)
	}
}

// Counts returns the instance count per effective key.
func (idx NodeIndex) Counts() map[string]int {
	counts := make(map[string]int, len(idx))
	for key, nodes := range idx {
		counts[key] = len(nodes)
	}

	return counts
}

// Total returns the number of node instances across all keys.
func (idx NodeIndex) Total() int {
	total := 0
	for _, nodes := range idx {
		total += len(nodes)
	}

	return total
}
