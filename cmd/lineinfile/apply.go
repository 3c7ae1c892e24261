package lineinfile

import (
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/tasks"
	"github.com/spf13/cobra"
)

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var runOpts tasks.RunOptions

	cmd := &cobra.Command{
		Use:     "apply TASKFILE",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    exactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"toml", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.apply")

			file, err := tasks.Load(args[0])
			if err != nil {
				return err
			}

			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			logger.Info().
				Str("file", file.Source).
				Int("tasks", len(file.Tasks)).
				Bool("check", runOpts.CheckMode).
				Msg("Applying task file")

			report, runErr := tasks.NewRunner(opts.newEditor(), runOpts).Run(file.Tasks)

			// Results gathered before a failure are still reported
			if runErr == nil || len(report.Results) > 0 {
				if err := renderer.RenderResults(report.Results); err != nil {
					return errors.Wrap(err, errors.ErrInternal, MsgErrRender)
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&runOpts.CheckMode, "check", false, MsgFlagCheck)
	cmd.Flags().BoolVar(&runOpts.Diff, "diff", false, MsgFlagDiff)

	return cmd
}
