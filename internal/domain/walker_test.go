package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/maxport/maxcensus/internal/model"
)

func decodeDoc(t *testing.T, raw string) any {
	t.Helper()

	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	return doc
}

func defaultWalker() Walker {
	return NewWalker(m.DefaultTables())
}

func TestWalkEmptyDocumentLeavesIndexUnchanged(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty patcher", `{"patcher": {}}`},
		{"empty boxes", `{"patcher": {"boxes": []}}`},
		{"no patcher", `{"appversion": {"major": 8}}`},
		{"patcher not a container", `{"patcher": "nope"}`},
		{"root not a container", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := m.NewNodeIndex()
			err := defaultWalker().Walk(decodeDoc(t, tt.raw), "a.maxpat", idx)

			require.NoError(t, err)
			assert.Empty(t, idx)
		})
	}
}

func TestWalkVisitsPreOrder(t *testing.T) {
	raw := `{
		"patcher": {
			"boxes": [
				{"box": {
					"maxclass": "newobj",
					"text": "route outer",
					"id": "obj-a",
					"patcher": {
						"boxes": [
							{"box": {"maxclass": "newobj", "text": "route inner", "id": "obj-x"}}
						]
					}
				}},
				{"box": {"maxclass": "newobj", "text": "route after", "id": "obj-b"}}
			]
		}
	}`

	idx := m.NewNodeIndex()
	require.NoError(t, defaultWalker().Walk(decodeDoc(t, raw), "a.maxpat", idx))

	// A's record, then its sub-document's X, then sibling B.
	require.Len(t, idx["route"], 3)
	assert.Equal(t, "obj-a", idx["route"][0].ID)
	assert.Equal(t, "obj-x", idx["route"][1].ID)
	assert.Equal(t, "obj-b", idx["route"][2].ID)

	assert.Equal(t, "", idx["route"][0].AncestryPath)
	assert.Equal(t, "/route outer", idx["route"][1].AncestryPath)
	assert.Equal(t, "", idx["route"][2].AncestryPath)
}

func TestWalkDerivesEffectiveKeyFromSentinelText(t *testing.T) {
	raw := `{
		"patcher": {
			"boxes": [
				{"box": {"maxclass": "newobj", "text": "foo~ 440 0.5", "id": "obj-1"}},
				{"box": {"maxclass": "panel", "text": "foo~ 440 0.5", "id": "obj-2"}},
				{"box": {"maxclass": "newobj", "text": "", "id": "obj-3"}}
			]
		}
	}`

	idx := m.NewNodeIndex()
	require.NoError(t, defaultWalker().Walk(decodeDoc(t, raw), "a.maxpat", idx))

	require.Len(t, idx["foo~"], 1)
	assert.Equal(t, "foo~", idx["foo~"][0].EffectiveKey)
	assert.Equal(t, "440 0.5", idx["foo~"][0].Args)

	// A non-sentinel class keeps its declared type, text untouched.
	require.Len(t, idx["panel"], 1)
	assert.Empty(t, idx["panel"][0].EffectiveKey)
	assert.Empty(t, idx["panel"][0].Args)

	// A sentinel with empty text falls back to the declared type.
	require.Len(t, idx["newobj"], 1)
	assert.Equal(t, "obj-3", idx["newobj"][0].ID)
}

func TestWalkDefaultsMissingFields(t *testing.T) {
	raw := `{
		"patcher": {
			"boxes": [
				{"box": {"maxclass": "comment"}},
				{"box": {"maxclass": "toggle", "numinlets": 1, "numoutlets": 2, "patching_rect": [10.0, 20.0, 50.0, 22.0]}},
				{"box": {"maxclass": "button", "patching_rect": [1.0, 2.0]}},
				{"not-a-box": {}},
				"bogus"
			]
		}
	}`

	idx := m.NewNodeIndex()
	require.NoError(t, defaultWalker().Walk(decodeDoc(t, raw), "a.maxpat", idx))

	require.Len(t, idx["comment"], 1)
	comment := idx["comment"][0]
	assert.Zero(t, comment.Inlets)
	assert.Zero(t, comment.Outlets)
	assert.Empty(t, comment.Rect)
	assert.Equal(t, m.Path("a.maxpat"), comment.SourceFile)

	toggle := idx["toggle"][0]
	assert.Equal(t, 1, toggle.Inlets)
	assert.Equal(t, 2, toggle.Outlets)
	assert.Equal(t, []float64{10, 20, 50, 22}, toggle.Rect)

	// A malformed position sequence defaults to empty.
	assert.Empty(t, idx["button"][0].Rect)

	assert.Equal(t, 3, idx.Total())
}

func TestWalkSubDocumentLabelFallback(t *testing.T) {
	raw := `{
		"patcher": {
			"boxes": [
				{"box": {
					"maxclass": "newobj",
					"text": "",
					"id": "p7",
					"patcher": {"boxes": [
						{"box": {"maxclass": "dac~", "id": "inner"}}
					]}
				}}
			]
		}
	}`

	idx := m.NewNodeIndex()
	require.NoError(t, defaultWalker().Walk(decodeDoc(t, raw), "a.maxpat", idx))

	require.Len(t, idx["dac~"], 1)
	assert.Equal(t, "/subpatcher_p7", idx["dac~"][0].AncestryPath)
}

func TestWalkDepthGuard(t *testing.T) {
	inner := `{"box": {"maxclass": "dac~", "id": "leaf"}}`
	for i := 0; i < 5; i++ {
		inner = fmt.Sprintf(
			`{"box": {"maxclass": "newobj", "text": "level %d", "id": "p%d", "patcher": {"boxes": [%s]}}}`,
			i, i, inner,
		)
	}

	raw := `{"patcher": {"boxes": [` + inner + `]}}`

	walker := Walker{Sentinel: "newobj", MaxDepth: 3}
	idx := m.NewNodeIndex()
	err := walker.Walk(decodeDoc(t, raw), "deep.maxpat", idx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooDeep))
	assert.Contains(t, err.Error(), "deep.maxpat")

	// The same document passes with a roomier bound.
	walker.MaxDepth = 64
	idx = m.NewNodeIndex()
	require.NoError(t, walker.Walk(decodeDoc(t, raw), "deep.maxpat", idx))
	require.Len(t, idx["dac~"], 1)
	assert.Equal(t, 5, strings.Count(idx["dac~"][0].AncestryPath, "/"))
}
