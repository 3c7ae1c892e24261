package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MemoryFS returns an in-memory filesystem holding files, a map from path
// to content. Parent directories are created as needed.
func MemoryFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	afs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := afero.WriteFile(afs, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
	return afs
}

// ReadMemFile returns the content of path in afs.
func ReadMemFile(t *testing.T, afs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(afs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// MemFileMode returns the permission bits of path in afs.
func MemFileMode(t *testing.T, afs afero.Fs, path string) os.FileMode {
	t.Helper()

	info, err := afs.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.Mode().Perm()
}
