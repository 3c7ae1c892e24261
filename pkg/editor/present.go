package editor

import (
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/lines"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/params"
	"github.com/arthur-debert/lineinfile/pkg/types"
)

// EnsurePresent makes sure p.Line is in the file at p.Path.
//
// Placement, in priority order: replace the last line matching p.Regexp;
// insert at the top for BOF; append for EOF or when the anchor never
// matched; otherwise insert after the last anchor match.
func (e *Editor) EnsurePresent(p params.Params) (*types.Result, error) {
	logger := e.logger.With().
		Str("path", p.Path).
		Str("state", string(types.StatePresent)).
		Logger()
	done := logging.LogOperationStart(logger, "ensure_present")
	defer done()

	dest, err := e.load(p.Path)
	if err != nil {
		return nil, err
	}
	if !dest.exists && !p.Create {
		return nil, errors.Newf(errors.ErrDestinationMissing, "destination %s does not exist", p.Path).
			WithDetail("path", p.Path)
	}

	if !p.Regexp.MatchString(p.Line) {
		return nil, errors.Newf(errors.ErrPatternMismatch, "line %q does not match regexp %q", p.Line, p.Regexp.String()).
			WithDetail("line", p.Line).
			WithDetail("regexp", p.Regexp.String())
	}

	match := lines.Locate(dest.doc, p.Regexp, p.InsertAfter)
	logger.Debug().
		Stringer("match", match.Match).
		Stringer("insert", match.Insert).
		Str("insert_after", p.InsertAfter.String()).
		Msg("Located line")

	updated, msg := Place(dest.doc, match, p.Line, p.InsertAfter)

	result := &types.Result{
		Name:      p.Name,
		Path:      p.Path,
		State:     types.StatePresent,
		Changed:   msg != "",
		Message:   msg,
		CheckMode: p.CheckMode,
	}
	if result.Changed {
		withDiff(result, p, dest.doc, updated)
	}

	if result.Changed && !p.CheckMode {
		backupPath, err := e.commit(p, dest, updated, logger)
		if err != nil {
			return nil, err
		}
		result.Backup = backupPath
	}

	logger.Info().
		Bool("changed", result.Changed).
		Str("msg", result.Message).
		Bool("check_mode", p.CheckMode).
		Msg("Ensured line present")

	return result, nil
}

// Place applies the placement policy to doc and returns the new Document
// with a message. An empty message means doc already holds the line and
// is returned unchanged.
func Place(doc lines.Document, match lines.MatchResult, line string, anchor lines.Anchor) (lines.Document, string) {
	switch {
	case match.Match.Found():
		i := match.Match.Pos()
		if doc[i] == line+lines.Separator {
			return doc, ""
		}
		return doc.Replace(i, line), MsgLineReplaced
	case anchor.Kind() == lines.AnchorBOF:
		return doc.Insert(0, line), MsgLineAdded
	case anchor.Kind() == lines.AnchorEOF || !match.Insert.Found():
		return doc.Append(line), MsgLineAdded
	default:
		return doc.Insert(match.Insert.Pos(), line), MsgLineAdded
	}
}
