// Package testutil provides test helpers: an embedded copy of the quickstart
// template and scripted fakes for prompts and processes.
package testutil

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/filestore"
)

//go:embed all:fixture
var fixtureFS embed.FS

// FixtureFS returns the quickstart template tree rooted at its top level.
func FixtureFS() fs.FS {
	sub, err := fs.Sub(fixtureFS, "fixture")
	if err != nil {
		panic(err)
	}
	return sub
}

// FixtureFile returns the contents of a template file.
func FixtureFile(t *testing.T, path string) string {
	t.Helper()
	data, err := fs.ReadFile(FixtureFS(), path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", path, err)
	}
	return string(data)
}

// NewFixtureStore returns an in-memory Store holding the template tree.
func NewFixtureStore(t *testing.T) *filestore.Store {
	t.Helper()
	store := filestore.NewMemory()
	err := fs.WalkDir(FixtureFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(FixtureFS(), path)
		if err != nil {
			return err
		}
		return afero.WriteFile(store.Fs(), path, data, 0o644)
	})
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}
	return store
}

// CopyFixture copies the template tree into a fresh temporary directory.
func CopyFixture(t *testing.T) string {
	t.Helper()
	dst := t.TempDir()
	if err := os.CopyFS(dst, FixtureFS()); err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
	return dst
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of dir/name.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}
