// Package params turns loosely typed input (command-line flags or task file
// entries) into a validated Params value for the editor.
package params

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/lines"
	"github.com/arthur-debert/lineinfile/pkg/paths"
	"github.com/arthur-debert/lineinfile/pkg/types"
)

// Raw is one edit request as it arrives from the outside. Line is a pointer
// so an empty desired line can be told apart from a missing one.
type Raw struct {
	Name        string  `koanf:"name" mapstructure:"name"`
	Path        string  `koanf:"path" mapstructure:"path"`
	State       string  `koanf:"state" mapstructure:"state"`
	Regexp      string  `koanf:"regexp" mapstructure:"regexp"`
	Line        *string `koanf:"line" mapstructure:"line"`
	InsertAfter string  `koanf:"insert_after" mapstructure:"insert_after"`
	Create      bool    `koanf:"create" mapstructure:"create"`
	Backup      bool    `koanf:"backup" mapstructure:"backup"`
	Mode        string  `koanf:"mode" mapstructure:"mode"`
}

// Params is a validated edit request.
type Params struct {
	Name        string
	Path        string
	State       types.State
	Regexp      *regexp.Regexp
	Line        string
	InsertAfter lines.Anchor
	Create      bool
	Backup      bool
	// Mode applies to files created by the edit. Zero means the configured default.
	Mode os.FileMode

	// CheckMode computes the result without touching the disk.
	CheckMode bool
	// Diff attaches the before and after content to the result.
	Diff bool
}

// Validate checks r and builds Params. All usage errors are reported here,
// before the destination is looked at.
func (r Raw) Validate() (Params, error) {
	p := Params{
		Name:   r.Name,
		Path:   paths.ExpandHome(strings.TrimSpace(r.Path)),
		Create: r.Create,
		Backup: r.Backup,
	}

	if p.Path == "" {
		return Params{}, errors.New(errors.ErrMissingField, "path is required")
	}

	state, err := types.ParseState(r.State)
	if err != nil {
		return Params{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid state")
	}
	p.State = state

	if r.Regexp == "" {
		return Params{}, errors.New(errors.ErrMissingField, "regexp is required")
	}
	re, err := regexp.Compile(r.Regexp)
	if err != nil {
		return Params{}, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid regexp %q", r.Regexp).
			WithDetail("regexp", r.Regexp)
	}
	p.Regexp = re

	if p.State == types.StatePresent {
		if r.Line == nil {
			return Params{}, errors.New(errors.ErrMissingField, "line is required with state=present")
		}
		p.Line = *r.Line
	}

	anchor, err := ParseAnchor(r.InsertAfter)
	if err != nil {
		return Params{}, err
	}
	p.InsertAfter = anchor

	if r.Mode != "" {
		mode, err := ParseMode(r.Mode)
		if err != nil {
			return Params{}, err
		}
		p.Mode = mode
	}

	return p, nil
}

// ParseAnchor interprets an insert-after value: "BOF", "EOF" (or empty) or a
// regular expression.
func ParseAnchor(s string) (lines.Anchor, error) {
	switch s {
	case "", "EOF":
		return lines.EOF(), nil
	case "BOF":
		return lines.BOF(), nil
	}

	re, err := regexp.Compile(s)
	if err != nil {
		return lines.Anchor{}, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid insert_after %q", s).
			WithDetail("insert_after", s)
	}
	return lines.After(re), nil
}

// ParseMode parses an octal permission string such as "0644".
func ParseMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o7777 {
		return 0, errors.Newf(errors.ErrInvalidInput, "invalid mode %q (expected octal such as 0644)", s)
	}
	return os.FileMode(v), nil
}
