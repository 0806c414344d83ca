// Package controller provides output adapters for displaying census results.
package controller

import (
	m "github.com/maxport/maxcensus/internal/model"
)

// UI defines the interface for reporting census progress and results.
// Implementations can use different output methods.
type UI interface {
	ScanStarted(pipeline string, input m.Path)
	FileStarted(path m.Path)
	FileFailed(path m.Path, err error)
	SummaryTable(sum m.Summary)
	Report(title, body string)
	Saved(output m.Path)
}
