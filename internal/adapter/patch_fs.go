// Package adapter contains filesystem and persistence adapters for the
// maxcensus CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "github.com/maxport/maxcensus/internal/model"
)

// PatchFS abstracts the filesystem operations the workflow relies on when
// scanning input directories. It hides direct `os` access so the census
// logic can be tested without touching the disk.
type PatchFS interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the workflow can check
	// existence before scanning.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalPatchFS is the disk-backed PatchFS implementation.
type LocalPatchFS struct{}

// NewLocalPatchFS constructs a LocalPatchFS ready to be wired into the
// workflow.
func NewLocalPatchFS() *LocalPatchFS {
	return &LocalPatchFS{}
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalPatchFS) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalPatchFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalPatchFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
