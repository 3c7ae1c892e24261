package lines

import (
	"fmt"
	"regexp"
)

// Index is an optional line position.
type Index struct {
	pos   int
	found bool
}

// At returns an Index pointing at pos.
func At(pos int) Index {
	return Index{pos: pos, found: true}
}

// None returns an empty Index.
func None() Index {
	return Index{}
}

// Found reports whether the Index holds a position.
func (i Index) Found() bool { return i.found }

// Pos returns the position; it is only meaningful when Found is true.
func (i Index) Pos() int { return i.pos }

func (i Index) String() string {
	if !i.found {
		return "none"
	}
	return fmt.Sprintf("%d", i.pos)
}

// AnchorKind selects how a new line is placed when nothing matches.
type AnchorKind int

const (
	// AnchorEOF appends at the end of the file.
	AnchorEOF AnchorKind = iota
	// AnchorBOF inserts at the top of the file.
	AnchorBOF
	// AnchorPattern inserts after the last line matching a pattern.
	AnchorPattern
)

// Anchor is the insert-after target: BOF, EOF, or a regular expression.
type Anchor struct {
	kind    AnchorKind
	pattern *regexp.Regexp
}

// EOF returns the end-of-file anchor.
func EOF() Anchor { return Anchor{kind: AnchorEOF} }

// BOF returns the beginning-of-file anchor.
func BOF() Anchor { return Anchor{kind: AnchorBOF} }

// After returns an anchor placing new lines after the last match of re.
func After(re *regexp.Regexp) Anchor {
	return Anchor{kind: AnchorPattern, pattern: re}
}

// Kind returns the anchor kind.
func (a Anchor) Kind() AnchorKind { return a.kind }

// Pattern returns the anchor pattern, nil for BOF and EOF.
func (a Anchor) Pattern() *regexp.Regexp { return a.pattern }

func (a Anchor) String() string {
	switch a.kind {
	case AnchorBOF:
		return "BOF"
	case AnchorPattern:
		return a.pattern.String()
	default:
		return "EOF"
	}
}

// MatchResult is the outcome of Locate.
type MatchResult struct {
	// Match is the last line matching the primary pattern.
	Match Index
	// Insert is one past the last line matching the anchor pattern. It is
	// never set for BOF and EOF anchors.
	Insert Index
}

// Locate scans doc once. A line matching primary only counts toward Match,
// even if it also matches the anchor pattern.
func Locate(doc Document, primary *regexp.Regexp, anchor Anchor) MatchResult {
	var result MatchResult
	for i, line := range doc {
		text := Text(line)
		if primary.MatchString(text) {
			result.Match = At(i)
		} else if anchor.kind == AnchorPattern && anchor.pattern.MatchString(text) {
			result.Insert = At(i + 1)
		}
	}
	return result
}

// Partition splits doc into the lines that do not match pattern and the
// lines that do, both in their original order.
func Partition(doc Document, pattern *regexp.Regexp) (kept, removed Document) {
	kept = make(Document, 0, len(doc))
	for _, line := range doc {
		if pattern.MatchString(Text(line)) {
			removed = append(removed, line)
			continue
		}
		kept = append(kept, line)
	}
	return kept, removed
}
