package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "lineinfile"

	ConfigFileName = "config.toml"
	StylesFileName = "styles.yaml"
	LogFileName    = "lineinfile.log"

	// EnvHome is consulted when the OS cannot report a home directory
	EnvHome = "HOME"
)

// ConfigDir returns $XDG_CONFIG_HOME/lineinfile.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default user config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StylesFile returns the optional user styles file.
func StylesFile() string {
	return filepath.Join(ConfigDir(), StylesFileName)
}

// StateDir returns the state directory. XDG_STATE_HOME is read on every
// call so tests and wrappers can redirect it without reloading xdg.
func StateDir() string {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// HomeDir returns the user's home directory, falling back to $HOME.
func HomeDir() (string, bool) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir, true
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, true
	}
	return "", false
}

// ExpandHome expands a leading "~" or "~/" to the home directory. Other
// paths, including "~user", are returned as-is.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, ok := HomeDir()
	if !ok {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
