package lineinfile

import (
	"fmt"

	"github.com/arthur-debert/lineinfile/pkg/config"
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var initTemplate bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if initTemplate {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			content, err := config.Dump(opts.cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrConfigDump)
			}
			if opts.cfg.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", opts.cfg.Source)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&initTemplate, "init", false, MsgFlagInit)

	return cmd
}
