// Package filestore provides text-file access for the scaffold on top of afero.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store reads and writes text files relative to a root directory.
type Store struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// NewOS returns a Store rooted at dir on the OS filesystem. Paths passed to
// the Store are interpreted relative to dir.
func NewOS(dir string) *Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewMemory returns a Store backed by an in-memory filesystem.
func NewMemory() *Store {
	return New(afero.NewMemMapFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ReadText returns the contents of path.
func (s *Store) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText replaces the contents of path, keeping the file mode of an
// existing file and creating parent directories as needed.
func (s *Store) WriteText(path, text string) error {
	mode := fs.FileMode(filePerm)
	if info, err := s.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, []byte(text), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Rename moves oldPath to newPath, creating the destination directory. An
// existing file at newPath is replaced.
func (s *Store) Rename(oldPath, newPath string) error {
	if err := s.fs.MkdirAll(filepath.Dir(newPath), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", newPath, err)
	}
	if err := s.fs.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// Remove deletes path. With recursive set, directories are removed with
// their contents. Removing a path that does not exist is an error.
func (s *Store) Remove(path string, recursive bool) error {
	if _, err := s.fs.Stat(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	var err error
	if recursive {
		err = s.fs.RemoveAll(path)
	} else {
		err = s.fs.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
