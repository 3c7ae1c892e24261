package tasks

import (
	"fmt"

	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/params"
	"github.com/arthur-debert/lineinfile/pkg/types"
)

// Applier performs one validated edit. *editor.Editor satisfies it.
type Applier interface {
	Apply(p params.Params) (*types.Result, error)
}

// RunOptions apply to every task of a run.
type RunOptions struct {
	CheckMode bool
	Diff      bool
}

// Report holds the results of the tasks that ran.
type Report struct {
	Results []*types.Result
	// Failed is the index of the task that stopped the run, or -1.
	Failed int
}

// Changed reports whether any task changed a file.
func (r *Report) Changed() bool {
	for _, res := range r.Results {
		if res.Changed {
			return true
		}
	}
	return false
}

// Runner executes tasks one after the other.
type Runner struct {
	applier Applier
	opts    RunOptions
}

// NewRunner creates a Runner applying edits through a.
func NewRunner(a Applier, opts RunOptions) *Runner {
	return &Runner{applier: a, opts: opts}
}

// Run validates and applies each task in order. The first failure stops
// the run; the report then holds the results gathered so far.
func (r *Runner) Run(tasks []params.Raw) (*Report, error) {
	logger := logging.GetLogger("tasks.runner")
	report := &Report{Failed: -1}

	for i, raw := range tasks {
		label := taskLabel(i, raw)

		p, err := raw.Validate()
		if err == nil {
			p.CheckMode = r.opts.CheckMode
			p.Diff = r.opts.Diff

			var result *types.Result
			result, err = r.applier.Apply(p)
			if err == nil {
				report.Results = append(report.Results, result)
				logger.Debug().
					Str("task", label).
					Bool("changed", result.Changed).
					Msg("Task done")
				continue
			}
		}

		report.Failed = i
		logger.Error().Err(err).Str("task", label).Msg("Task failed")
		return report, errors.Wrapf(err, errors.GetErrorCode(err), "task %s failed", label).
			WithDetail("task", i+1)
	}

	logger.Info().
		Int("tasks", len(tasks)).
		Bool("changed", report.Changed()).
		Msg("All tasks done")
	return report, nil
}

func taskLabel(i int, raw params.Raw) string {
	if raw.Name != "" {
		return fmt.Sprintf("%d (%s)", i+1, raw.Name)
	}
	return fmt.Sprintf("%d", i+1)
}
