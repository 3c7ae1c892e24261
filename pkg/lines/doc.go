// Package lines holds the in-memory model of a text file and the scan that
// decides where a managed line lives.
//
// A Document is the file split into lines with their terminators kept, so
// that joining it back reproduces the original bytes exactly. Edits only
// touch the line being placed, replaced or removed; every other line keeps
// its own separator.
//
// Locate walks a Document once and reports the last line matching the
// primary pattern and the insertion point after the last line matching the
// anchor pattern. When several lines match, the highest index wins for both.
package lines
