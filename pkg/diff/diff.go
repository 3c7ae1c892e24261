// Package diff turns the before and after content of an edit into a line
// diff for display. It only reports; edits never go through it.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind tells whether a diff line is unchanged, added or removed.
type Kind int

const (
	Equal Kind = iota
	Insert
	Delete
	// Skip stands for a run of unchanged lines left out by Context.
	Skip
)

// Line is one line of a diff, without its terminator.
type Line struct {
	Kind Kind
	Text string
}

// Lines computes a line-level diff between before and after.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []Line
	for _, d := range diffs {
		kind := Equal
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = Insert
		case diffmatchpatch.DiffDelete:
			kind = Delete
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Kind: kind, Text: text})
		}
	}
	return out
}

// splitLines splits diffmatchpatch text, which keeps the trailing newline
// of every line, into lines without terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		p = strings.TrimSuffix(p, "\n")
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Context keeps changed lines and up to n unchanged lines around each of
// them. Every dropped run is replaced by a single Skip line.
func Context(diff []Line, n int) []Line {
	keep := make([]bool, len(diff))
	for i, l := range diff {
		if l.Kind == Equal {
			continue
		}
		lo, hi := i-n, i+n
		if lo < 0 {
			lo = 0
		}
		if hi > len(diff)-1 {
			hi = len(diff) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	var out []Line
	skipping := false
	for i, l := range diff {
		if keep[i] {
			out = append(out, l)
			skipping = false
			continue
		}
		if !skipping {
			out = append(out, Line{Kind: Skip})
			skipping = true
		}
	}
	return out
}

// Stats counts added and removed lines.
func Stats(diff []Line) (added, removed int) {
	for _, l := range diff {
		switch l.Kind {
		case Insert:
			added++
		case Delete:
			removed++
		}
	}
	return added, removed
}
