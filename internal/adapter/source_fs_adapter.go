// Package adapter contains infrastructure adapters for fixture resolution.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the resolver and
// loader rely on. It hides direct `os` access so resolution logic can be
// tested against fakes.
//
//nolint:interfacebloat // Report persistence shares the adapter with resolution.
type SourceFSAdapter interface {
	// Getwd returns the absolute path of the current working directory.
	Getwd() (m.Path, error)

	// Walk visits root and every entry below it exactly once. Errors for
	// individual entries are handed to fn, which decides whether to go on.
	Walk(root m.Path, fn WalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// WalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type into the domain
// layer.
type WalkFunc func(path string, entry fs.DirEntry, err error) error

// ErrSkipDir tells Walk to skip the directory named in the callback.
var ErrSkipDir = fs.SkipDir

// ErrSkipAll tells Walk to stop without reporting an error.
var ErrSkipAll = fs.SkipAll

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Getwd returns the current working directory.
func (a *LocalSourceFSAdapter) Getwd() (m.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(wd), nil
}

// Walk traverses root depth-first in lexical order without following
// symlinks.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn WalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		return fn(path, entry, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - fixture paths are discovered under the anchor
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
