package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/lineinfile/pkg/diff"
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/types"
)

// DiffContext is the number of unchanged lines shown around each change.
const DiffContext = 3

// TextRenderer writes styled, human readable results.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer creates a text renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) RenderResult(result *types.Result) error {
	return writeLine(r.w, formatResult(result))
}

func (r *TextRenderer) RenderResults(results []*types.Result) error {
	for _, result := range results {
		if err := r.RenderResult(result); err != nil {
			return err
		}
	}
	s := Summarize(results)
	summary := fmt.Sprintf("%s %s",
		GetStyle("Changed").Render(fmt.Sprintf("changed=%d", s.Changed)),
		GetStyle("Ok").Render(fmt.Sprintf("ok=%d", s.Ok)),
	)
	return writeLine(r.w, summary)
}

func (r *TextRenderer) RenderError(err error) error {
	msg := err.Error()
	var lifErr *errors.LineinfileError
	if stderrors.As(err, &lifErr) {
		msg = lifErr.Message
		if lifErr.Wrapped != nil {
			msg += ": " + lifErr.Wrapped.Error()
		}
	}
	return writeLine(r.w, GetStyle("Error").Render("Error:")+" "+msg)
}

// formatResult renders the status line and, when present, the backup path
// and the diff of one result.
func formatResult(result *types.Result) string {
	var b strings.Builder

	status := GetStyle("Ok").Render("ok")
	if result.Changed {
		status = GetStyle("Changed").Render("changed")
	}
	b.WriteString(status)
	b.WriteString(": ")
	if result.Name != "" {
		b.WriteString(result.Name)
		b.WriteString(" ")
	}
	b.WriteString(GetStyle("Path").Render(result.Path))

	var notes []string
	if result.Message != "" {
		notes = append(notes, result.Message)
	}
	if result.CheckMode {
		notes = append(notes, "check mode")
	}
	if len(notes) > 0 {
		b.WriteString(" ")
		b.WriteString(GetStyle("Muted").Render("(" + strings.Join(notes, ", ") + ")"))
	}

	if result.Backup != "" {
		b.WriteString("\n  backup: ")
		b.WriteString(GetStyle("Path").Render(result.Backup))
	}

	if result.Diff != nil && result.Changed {
		b.WriteString(formatDiff(result.Diff))
	}
	return b.String()
}

func formatDiff(d *types.Diff) string {
	var b strings.Builder
	for _, l := range diff.Context(diff.Lines(d.Before, d.After), DiffContext) {
		b.WriteString("\n  ")
		switch l.Kind {
		case diff.Insert:
			b.WriteString(GetStyle("DiffAdd").Render("+" + l.Text))
		case diff.Delete:
			b.WriteString(GetStyle("DiffDel").Render("-" + l.Text))
		case diff.Skip:
			b.WriteString(GetStyle("DiffSkip").Render("..."))
		default:
			b.WriteString(" " + l.Text)
		}
	}
	return b.String()
}
