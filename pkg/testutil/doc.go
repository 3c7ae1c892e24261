// Package testutil provides helpers for lineinfile tests.
//
// Key components:
//   - File helpers: create, read and stat files under t.TempDir()
//   - MemoryFS: an afero in-memory filesystem seeded from a map
//   - Backup helpers: find backup files written next to a destination
//
// Each test should be completely isolated with no shared state. Prefer
// MemoryFS for editor level tests and real temp dirs for command tests.
package testutil
