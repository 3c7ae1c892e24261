package lineinfile

import (
	"io"
	"os"

	"github.com/arthur-debert/lineinfile/internal/version"
	"github.com/arthur-debert/lineinfile/pkg/backup"
	"github.com/arthur-debert/lineinfile/pkg/config"
	"github.com/arthur-debert/lineinfile/pkg/editor"
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/filesystem"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags and what PersistentPreRunE derives
// from them.
type rootOptions struct {
	verbosity  int
	format     string
	noColor    bool
	configPath string

	cfg *config.Config
}

// outputFormat returns the format to render with. It is usable before the
// configuration is loaded.
func (o *rootOptions) outputFormat() string {
	if o.format != "" {
		return o.format
	}
	if o.cfg != nil {
		return o.cfg.Output.Format
	}
	return output.FormatText
}

func (o *rootOptions) renderer(w io.Writer) (output.Renderer, error) {
	return output.New(o.outputFormat(), w, o.noColor)
}

// newEditor builds an editor on the real filesystem using the configured
// modes and backup naming.
func (o *rootOptions) newEditor() *editor.Editor {
	cfg := o.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	fs := filesystem.NewOS()
	return editor.New(editor.Options{
		Fs:       fs,
		Backuper: backup.NewFileBackuper(fs, backup.WithTimeFormat(cfg.Backup.TimeFormat)),
		FileMode: cfg.Files.Mode.Perm(),
		DirMode:  cfg.Files.DirMode.Perm(),
	})
}

// setup runs before every command: logging first, then configuration and
// output settings.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	logging.SetupLogger(o.verbosity)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("Loaded config file")
	}

	if !cmd.Flags().Changed("output") {
		o.format = cfg.Output.Format
	}
	if !cfg.Output.Color || os.Getenv("NO_COLOR") != "" {
		o.noColor = true
	}

	if stylesPath := config.StylesPath(); fileExists(stylesPath) {
		if err := output.LoadStylesFromFile(stylesPath); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, MsgErrStylesLoad, stylesPath)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lineinfile",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "output", "o", "", MsgFlagOutput)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return output.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newEditCmd(opts))
	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	initTopics(rootCmd)

	return rootCmd
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.Newf(errors.ErrInvalidInput, MsgErrArgCount, n, len(args))
		}
		return nil
	}
}

// Run executes the command line in args and returns the process exit code.
// Failures are rendered to stderr in the selected output format.
func Run(args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitOK
	}

	// Errors cobra raises itself (unknown command or flag) carry no code
	if errors.GetErrorCode(err) == errors.ErrUnknown {
		err = errors.Wrap(err, errors.ErrInvalidInput, MsgErrUsage)
	}

	renderer, rerr := opts.renderer(stderr)
	if rerr != nil {
		renderer = output.NewTextRenderer(stderr)
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		log.Error().Err(rerr).Msg("Failed to render error")
	}
	return errors.ExitCode(err)
}
