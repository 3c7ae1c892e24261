package lineinfile

import (
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/params"
	"github.com/spf13/cobra"
)

type editFlags struct {
	name        string
	path        string
	regexp      string
	line        string
	state       string
	insertAfter string
	create      bool
	backup      bool
	mode        string
	check       bool
	diff        bool
}

// raw converts the flags into an edit request. --line is only set when it
// was given, so an empty line stays distinguishable from a missing one.
func (f *editFlags) raw(cmd *cobra.Command) params.Raw {
	raw := params.Raw{
		Name:        f.name,
		Path:        f.path,
		State:       f.state,
		Regexp:      f.regexp,
		InsertAfter: f.insertAfter,
		Create:      f.create,
		Backup:      f.backup,
		Mode:        f.mode,
	}
	if cmd.Flags().Changed("line") {
		line := f.line
		raw.Line = &line
	}
	return raw
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	f := &editFlags{}

	cmd := &cobra.Command{
		Use:     "edit",
		Short:   MsgEditShort,
		Long:    MsgEditLong,
		Example: MsgEditExample,
		GroupID: "core",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.edit")

			p, err := f.raw(cmd).Validate()
			if err != nil {
				return err
			}
			p.CheckMode = f.check
			p.Diff = f.diff

			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			logger.Debug().
				Str("path", p.Path).
				Str("state", string(p.State)).
				Bool("check", p.CheckMode).
				Msg("Running edit")

			result, err := opts.newEditor().Apply(p)
			if err != nil {
				return err
			}

			if err := renderer.RenderResult(result); err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrRender)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.path, "path", "", MsgFlagPath)
	flags.StringVar(&f.regexp, "regexp", "", MsgFlagRegexp)
	flags.StringVar(&f.line, "line", "", MsgFlagLine)
	flags.StringVar(&f.state, "state", "present", MsgFlagState)
	flags.StringVar(&f.insertAfter, "insert-after", "EOF", MsgFlagInsertAfter)
	flags.BoolVar(&f.create, "create", false, MsgFlagCreate)
	flags.BoolVar(&f.backup, "backup", false, MsgFlagBackup)
	flags.StringVar(&f.mode, "mode", "", MsgFlagMode)
	flags.StringVar(&f.name, "name", "", MsgFlagName)
	flags.BoolVar(&f.check, "check", false, MsgFlagCheck)
	flags.BoolVar(&f.diff, "diff", false, MsgFlagDiff)

	_ = cmd.RegisterFlagCompletionFunc("state", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"present", "absent"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
