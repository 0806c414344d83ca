package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maxport/maxcensus/internal/adapter"
	"github.com/maxport/maxcensus/internal/controller"
	m "github.com/maxport/maxcensus/internal/model"
)

const (
	patchExtension   = ".maxpat"
	commandExtension = ".txt"

	summaryArtifact   = "summary.json"
	instancesArtifact = "detailed_objects.json"
	mappingArtifact   = "mapping_analysis.md"
	namespaceArtifact = "osc_namespace.md"

	instanceSampleLimit = 5
)

// PatchArgs carries the inputs for the patch census pipeline.
type PatchArgs struct {
	Input  m.Path
	Output m.Path
	Tables m.Tables
}

// OSCArgs carries the inputs for the namespace census pipeline.
type OSCArgs struct {
	Input  m.Path
	Output m.Path
}

// Workflow wires directory scanning, extraction, aggregation, rendering and
// persistence for both census pipelines.
type Workflow interface {
	AnalyzePatches(args PatchArgs) error
	AnalyzeOSC(args OSCArgs) error
}

type workflow struct {
	adapter.PatchFS
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a Workflow using the provided dependencies.
func NewWorkflow(fs adapter.PatchFS, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		PatchFS:     fs,
		ReportStore: store,
		UI:          ui,
	}
}

// AnalyzePatches scans args.Input recursively for patch files, harvests and
// classifies their nodes, and persists the census artifacts. Files that fail
// to read, parse or traverse are logged and excluded; the batch continues.
func (w *workflow) AnalyzePatches(args PatchArgs) error {
	if _, err := w.FileInfo(args.Input); err != nil {
		return fmt.Errorf("input directory: %w", err)
	}

	w.ScanStarted("patch census", args.Input)

	walker := NewWalker(args.Tables)
	index := m.NewNodeIndex()
	patchCount := 0

	err := w.Walk(args.Input, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != patchExtension {
			return nil
		}

		w.FileStarted(m.Path(path))

		fileIndex, walkErr := w.walkPatchFile(walker, m.Path(path))
		if walkErr != nil {
			w.FileFailed(m.Path(path), walkErr)

			return nil
		}

		index.Merge(fileIndex)
		patchCount++

		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", args.Input, err)
	}

	summary := Summarize(index, patchCount, NewClassifier(args.Tables))
	report := RenderMappingReport(summary, index)

	if err := w.EnsureOutputDir(args.Output); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	if err := w.SaveJSON(args.Output, summaryArtifact, summary); err != nil {
		return err
	}

	if err := w.SaveJSON(args.Output, instancesArtifact, SampleInstances(index, instanceSampleLimit)); err != nil {
		return err
	}

	if err := w.SaveMarkdown(args.Output, mappingArtifact, report); err != nil {
		return err
	}

	w.SummaryTable(summary)
	w.Report("Object Mapping Analysis", report)
	w.Saved(args.Output)

	return nil
}

// walkPatchFile reads and traverses one patch file into a fresh index so a
// failure part-way through contributes nothing to the shared index.
func (w *workflow) walkPatchFile(walker Walker, path m.Path) (m.NodeIndex, error) {
	raw, err := w.ReadFile(path)
	if err != nil {
		slog.Error("failed to read patch file", "path", path, "error", err)

		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Error("failed to parse patch file", "path", path, "error", err)

		return nil, err
	}

	fileIndex := m.NewNodeIndex()
	if err := walker.Walk(doc, path, fileIndex); err != nil {
		slog.Error("failed to traverse patch file", "path", path, "error", err)

		return nil, err
	}

	return fileIndex, nil
}

// AnalyzeOSC scans args.Input (non-recursive) for command dump files, builds
// the namespace index and persists the namespace report.
func (w *workflow) AnalyzeOSC(args OSCArgs) error {
	if _, err := w.FileInfo(args.Input); err != nil {
		return fmt.Errorf("input directory: %w", err)
	}

	w.ScanStarted("namespace census", args.Input)

	var commands []string

	err := w.Walk(args.Input, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != commandExtension {
			return nil
		}

		w.FileStarted(m.Path(path))

		raw, readErr := w.ReadFile(m.Path(path))
		if readErr != nil {
			slog.Error("failed to read command file", "path", path, "error", readErr)
			w.FileFailed(m.Path(path), readErr)

			return nil
		}

		parsed, parseErr := ParseCommandLines(bytes.NewReader(raw))
		if parseErr != nil {
			slog.Error("failed to parse command file", "path", path, "error", parseErr)
			w.FileFailed(m.Path(path), parseErr)

			return nil
		}

		commands = append(commands, parsed...)

		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", args.Input, err)
	}

	report := RenderNamespaceReport(Aggregate(commands))

	if err := w.EnsureOutputDir(args.Output); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	if err := w.SaveMarkdown(args.Output, namespaceArtifact, report); err != nil {
		return err
	}

	w.Report("OSC Namespace Analysis", report)
	w.Saved(args.Output)

	return nil
}
