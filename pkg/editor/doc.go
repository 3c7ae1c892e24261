// Package editor applies a validated edit request to a file.
//
// EnsurePresent makes sure exactly the desired line is where the request
// says it should be; EnsureAbsent drops every line matching the pattern.
// Both are idempotent: running either again on its own output reports no
// change and leaves the bytes on disk untouched.
//
// All checks run before the first write. The new content is computed in
// memory and written in one atomic replace, preceded by an optional backup
// of the previous version.
package editor
