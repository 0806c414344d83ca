// Package domain implements the census extraction and aggregation logic.
package domain

import (
	"errors"
	"fmt"
	"strings"

	m "github.com/maxport/maxcensus/internal/model"
)

// ErrTooDeep reports sub-document nesting beyond the configured bound.
var ErrTooDeep = errors.New("sub-document nesting too deep")

// Walker harvests node records from a decoded patch document.
//
// Patch files are arbitrary JSON in the wild, so the walker reads the
// decoded value defensively: missing or oddly typed fields default to
// neutral values, and anything that is not container-shaped contributes
// nothing rather than failing the file.
type Walker struct {
	Sentinel string
	MaxDepth int
}

// NewWalker creates a Walker configured from the classification tables.
func NewWalker(tables m.Tables) Walker {
	return Walker{Sentinel: tables.Sentinel, MaxDepth: tables.MaxDepth}
}

// Walk descends the document rooted at doc and appends one record per node
// to idx, tagging each with source and its ancestry path. Nodes are visited
// in document order, recursing into embedded sub-documents pre-order.
func (w Walker) Walk(doc any, source m.Path, idx m.NodeIndex) error {
	root, ok := asMap(doc)
	if !ok {
		return nil
	}

	return w.walkContainer(root["patcher"], source, "", idx, 0)
}

func (w Walker) walkContainer(container any, source m.Path, ancestry string, idx m.NodeIndex, depth int) error {
	if w.MaxDepth > 0 && depth > w.MaxDepth {
		return fmt.Errorf("%w: %s exceeds %d levels", ErrTooDeep, source, w.MaxDepth)
	}

	patcher, ok := asMap(container)
	if !ok {
		return nil
	}

	boxes, _ := patcher["boxes"].([]any)
	for _, entry := range boxes {
		wrapper, ok := asMap(entry)
		if !ok {
			continue
		}

		box, ok := asMap(wrapper["box"])
		if !ok {
			continue
		}

		node := m.Node{
			DeclaredType: str(box["maxclass"]),
			Text:         str(box["text"]),
			ID:           str(box["id"]),
			Inlets:       num(box["numinlets"]),
			Outlets:      num(box["numoutlets"]),
			Rect:         rect(box["patching_rect"]),
			SourceFile:   source,
			AncestryPath: ancestry,
		}

		key := node.DeclaredType
		if node.DeclaredType == w.Sentinel && strings.TrimSpace(node.Text) != "" {
			parts := strings.Fields(node.Text)
			key = parts[0]
			node.EffectiveKey = key
			node.Args = strings.Join(parts[1:], " ")
		}

		idx.Add(key, node)

		if sub, ok := box["patcher"]; ok {
			label := node.Text
			if label == "" {
				label = subDocumentLabel(node.ID)
			}

			if err := w.walkContainer(sub, source, ancestry+"/"+label, idx, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

func subDocumentLabel(id string) string {
	if id == "" {
		id = "unknown"
	}

	return "subpatcher_" + id
}

func asMap(v any) (map[string]any, bool) {
	mv, ok := v.(map[string]any)

	return mv, ok
}

func str(v any) string {
	s, _ := v.(string)

	return s
}

// num accepts the numeric shapes encoding/json produces for untyped decoding.
func num(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}

	return 0
}

// rect returns the node position when it is a well-formed 4-element numeric
// sequence, otherwise an empty sequence.
func rect(v any) []float64 {
	raw, ok := v.([]any)
	if !ok || len(raw) != 4 {
		return nil
	}

	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil
		}

		out = append(out, f)
	}

	return out
}
