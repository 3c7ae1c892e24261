package types

import (
	"fmt"

	"github.com/arthur-debert/lineinfile/pkg/suggest"
)

// State is the desired state of the managed line.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// ParseState converts user input into a State. An empty string means present.
func ParseState(s string) (State, error) {
	switch State(s) {
	case "", StatePresent:
		return StatePresent, nil
	case StateAbsent:
		return StateAbsent, nil
	default:
		return "", fmt.Errorf("unknown state %q (expected %q or %q)%s", s, StatePresent, StateAbsent,
			suggest.Hint(s, []string{string(StatePresent), string(StateAbsent)}))
	}
}

// Diff holds the file content before and after an edit.
type Diff struct {
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// Result is the outcome of one edit. It is built once by the editor and
// not modified afterwards.
type Result struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Path    string `json:"path" yaml:"path"`
	State   State  `json:"state" yaml:"state"`
	Changed bool   `json:"changed" yaml:"changed"`
	Message string `json:"msg,omitempty" yaml:"msg,omitempty"`
	// MatchCount is only set in absent mode.
	MatchCount *int   `json:"match_count,omitempty" yaml:"match_count,omitempty"`
	Backup     string `json:"backup,omitempty" yaml:"backup,omitempty"`
	CheckMode  bool   `json:"check_mode,omitempty" yaml:"check_mode,omitempty"`
	Diff       *Diff  `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Count returns MatchCount, or zero when it is not set.
func (r *Result) Count() int {
	if r.MatchCount == nil {
		return 0
	}
	return *r.MatchCount
}
