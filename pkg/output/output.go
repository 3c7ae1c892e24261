package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/suggest"
	"github.com/arthur-debert/lineinfile/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Renderer writes edit results in one output format.
type Renderer interface {
	// RenderResult writes the outcome of a single edit.
	RenderResult(result *types.Result) error
	// RenderResults writes the outcomes of a task file run with a summary.
	RenderResults(results []*types.Result) error
	// RenderError writes a failure.
	RenderError(err error) error
}

// Summary counts results by outcome.
type Summary struct {
	Changed int `json:"changed" yaml:"changed"`
	Ok      int `json:"ok" yaml:"ok"`
}

// Summarize counts changed and unchanged results.
func Summarize(results []*types.Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Changed {
			s.Changed++
		} else {
			s.Ok++
		}
	}
	return s
}

// errorDoc is the machine readable form of an error.
type errorDoc struct {
	Error string                 `json:"error" yaml:"error"`
	Code  errors.ErrorCode       `json:"code" yaml:"code"`
	Exit  int                    `json:"exit_code" yaml:"exit_code"`
	Extra map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

func newErrorDoc(err error) errorDoc {
	doc := errorDoc{
		Error: err.Error(),
		Code:  errors.GetErrorCode(err),
		Exit:  errors.ExitCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		doc.Extra = details
	}
	return doc
}

// resultsDoc is the machine readable form of a task file run.
type resultsDoc struct {
	Results []*types.Result `json:"results" yaml:"results"`
	Summary Summary         `json:"summary" yaml:"summary"`
}

// New returns the renderer for format writing to w. noColor strips all
// styling from text output.
func New(format string, w io.Writer, noColor bool) (Renderer, error) {
	switch format {
	case "", FormatText:
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return NewTextRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatYAML:
		return NewYAMLRenderer(w), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q (expected text, json or yaml)%s",
			format, suggest.Hint(format, Formats)).
			WithDetail("format", format)
	}
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
