package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/maxport/maxcensus/internal/model"
)

func TestEnsureOutputDirCreatesMissingParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "census")

	store := NewLocalReportStore()
	require.NoError(t, store.EnsureOutputDir(m.Path(dir)))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Creating it again is fine.
	require.NoError(t, store.EnsureOutputDir(m.Path(dir)))
}

func TestSaveJSON(t *testing.T) {
	dir := t.TempDir()

	store := NewLocalReportStore()
	payload := map[string]int{"cycle~": 3, "dac~": 1}
	require.NoError(t, store.SaveJSON(m.Path(dir), "summary.json", payload))

	raw, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, payload, decoded)

	// Indented output, trailing newline.
	assert.Contains(t, string(raw), "\n  ")
	assert.Equal(t, byte('\n'), raw[len(raw)-1])
}

func TestSaveMarkdownWritesHTMLCompanion(t *testing.T) {
	dir := t.TempDir()

	store := NewLocalReportStore()
	text := "# Census\n\n- `dac~`: 2 instances\n"
	require.NoError(t, store.SaveMarkdown(m.Path(dir), "mapping_analysis.md", text))

	raw, err := os.ReadFile(filepath.Join(dir, "mapping_analysis.md"))
	require.NoError(t, err)
	assert.Equal(t, text, string(raw))

	html, err := os.ReadFile(filepath.Join(dir, "mapping_analysis.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Census</h1>")
	assert.Contains(t, string(html), "<code>dac~</code>")
}
