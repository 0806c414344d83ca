package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	m "github.com/maxport/maxcensus/internal/model"
)

// ReportStore persists census artifacts to an output directory.
type ReportStore interface {
	// EnsureOutputDir creates the output directory if it is absent.
	EnsureOutputDir(dir m.Path) error

	// SaveJSON writes v as indented JSON under dir.
	SaveJSON(dir m.Path, name string, v any) error

	// SaveMarkdown writes a narrative report under dir together with an
	// HTML rendering under the same base name.
	SaveMarkdown(dir m.Path, name, text string) error
}

// LocalReportStore is the disk-backed ReportStore implementation.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// EnsureOutputDir creates dir and any missing parents.
func (s *LocalReportStore) EnsureOutputDir(dir m.Path) error {
	return os.MkdirAll(string(dir), 0o750)
}

// SaveJSON writes v as indented JSON to dir/name.
func (s *LocalReportStore) SaveJSON(dir m.Path, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	data = append(data, '\n')

	return os.WriteFile(filepath.Join(string(dir), name), data, 0o600)
}

// SaveMarkdown writes the report text to dir/name and its HTML rendering to
// the companion .html file.
func (s *LocalReportStore) SaveMarkdown(dir m.Path, name, text string) error {
	if err := os.WriteFile(filepath.Join(string(dir), name), []byte(text), 0o600); err != nil {
		return err
	}

	htmlName := strings.TrimSuffix(name, filepath.Ext(name)) + ".html"

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return fmt.Errorf("render %s: %w", htmlName, err)
	}

	return os.WriteFile(filepath.Join(string(dir), htmlName), buf.Bytes(), 0o600)
}
