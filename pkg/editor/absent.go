package editor

import (
	"fmt"

	"github.com/arthur-debert/lineinfile/pkg/lines"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/params"
	"github.com/arthur-debert/lineinfile/pkg/types"
)

// EnsureAbsent removes every line matching p.Regexp from the file at p.Path.
// A missing file already has no matching line and is reported unchanged; a
// directory is refused.
func (e *Editor) EnsureAbsent(p params.Params) (*types.Result, error) {
	logger := e.logger.With().
		Str("path", p.Path).
		Str("state", string(types.StateAbsent)).
		Logger()
	done := logging.LogOperationStart(logger, "ensure_absent")
	defer done()

	dest, err := e.load(p.Path)
	if err != nil {
		return nil, err
	}

	count := 0
	result := &types.Result{
		Name:       p.Name,
		Path:       p.Path,
		State:      types.StateAbsent,
		MatchCount: &count,
		CheckMode:  p.CheckMode,
	}

	if !dest.exists {
		result.Message = MsgFileNotPresent
		logger.Info().Msg("Destination missing, nothing to remove")
		return result, nil
	}

	kept, removed := lines.Partition(dest.doc, p.Regexp)
	count = len(removed)
	result.Changed = count > 0

	if result.Changed {
		result.Message = fmt.Sprintf(MsgLinesRemoved, count)
		withDiff(result, p, dest.doc, kept)

		if !p.CheckMode {
			backupPath, err := e.commit(p, dest, kept, logger)
			if err != nil {
				return nil, err
			}
			result.Backup = backupPath
		}
	}

	logger.Info().
		Bool("changed", result.Changed).
		Int("match_count", count).
		Bool("check_mode", p.CheckMode).
		Msg("Ensured line absent")

	return result, nil
}
