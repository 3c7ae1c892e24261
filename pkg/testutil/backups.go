package testutil

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// Backups lists the backup files of path, which live next to it and are
// named <base>.<pid>.<timestamp>~. The result is sorted.
func Backups(t *testing.T, afs afero.Fs, path string) []string {
	t.Helper()

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	entries, err := afero.ReadDir(afs, dir)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", dir, err)
	}

	var found []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, base+".") && strings.HasSuffix(name, "~") {
			found = append(found, filepath.Join(dir, name))
		}
	}
	sort.Strings(found)
	return found
}
