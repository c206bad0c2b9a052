// Package adapter contains the infrastructure adapters behind the migration
// workflow: filesystem access and report persistence.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	m "snakeshift.dev/pkg/snakeshift/internal/model"
)

// ErrDestinationExists is returned by Rename when a file is already present
// at the destination path. Some platforms would silently overwrite; we refuse
// everywhere.
var ErrDestinationExists = errors.New("rename destination already exists")

// SourceFS abstracts the filesystem operations the migration workflow
// performs. It hides direct os access so the workflow logic can be exercised
// against throwaway trees in tests.
type SourceFS interface {
	// Walk traverses root recursively, calling fn for every entry.
	Walk(root m.Path, fn WalkFunc) error

	// Glob returns the files directly under root matching pattern, sorted.
	Glob(root m.Path, pattern string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Rename moves a file, failing with ErrDestinationExists when the
	// destination path is already occupied.
	Rename(oldPath, newPath m.Path) error

	// FileInfo returns metadata for a path so the workflow can check
	// existence before committing a rename.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// WalkFunc mirrors the callback shape of filepath.Walk. It is defined here to
// avoid leaking the standard-library type into the domain layer.
type WalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFS is the os-backed SourceFS implementation.
type LocalSourceFS struct{}

// NewLocalSourceFS constructs a LocalSourceFS ready to be wired into the
// migration workflow.
func NewLocalSourceFS() *LocalSourceFS {
	return &LocalSourceFS{}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalSourceFS) Walk(root m.Path, fn WalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// Glob matches files directly under root against pattern.
func (a *LocalSourceFS) Glob(root m.Path, pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(filepath.Join(string(root), pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q under %s: %w", pattern, root, err)
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Rename moves a file on disk. The destination must not exist yet.
func (a *LocalSourceFS) Rename(oldPath, newPath m.Path) error {
	if _, err := os.Lstat(string(newPath)); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, newPath)
	} else if !os.IsNotExist(err) {
		return err
	}

	return os.Rename(string(oldPath), string(newPath))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
