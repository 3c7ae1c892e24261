package lineinfile

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Ensure a line is present in or absent from a file"
	MsgEditShort       = "Ensure one line is present or absent"
	MsgApplyShort      = "Run the edits of a task file"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the effective configuration as TOML.\n\nWith --init, print a starter config file with every value commented out."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput      = "Output format: text, json or yaml"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/lineinfile/config.toml)"
	MsgFlagPath        = "File to edit"
	MsgFlagRegexp      = "Regular expression selecting the managed line"
	MsgFlagLine        = "Line to ensure present (must match --regexp)"
	MsgFlagState       = "Desired state: present or absent"
	MsgFlagInsertAfter = "Where to insert when nothing matches: EOF, BOF or a regular expression"
	MsgFlagCreate      = "Create the file and its parent directories when missing"
	MsgFlagBackup      = "Keep a timestamped copy of the file before changing it"
	MsgFlagMode        = "Permissions for a created file, in octal"
	MsgFlagName        = "Label shown in the result"
	MsgFlagCheck       = "Report what would change without writing"
	MsgFlagDiff        = "Show the change"
	MsgFlagInit        = "Print a commented starter config file"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrUsage      = "invalid usage"
	MsgErrRender     = "failed to render output"
	MsgErrArgCount   = "expected %d argument(s), got %d"
	MsgErrManDir     = "failed to generate man pages in %s"
	MsgErrCompletion = "failed to generate %s completion"
	MsgErrConfigDump = "failed to render configuration"
	MsgErrStylesLoad = "failed to load styles from %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/edit-example.txt
	msgEditExampleRaw string
	MsgEditExample    = strings.TrimRight(msgEditExampleRaw, "\n")

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")
)
