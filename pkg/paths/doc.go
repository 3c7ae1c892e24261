// Package paths centralizes the locations lineinfile reads and writes
// besides the edited files themselves: the user config directory, the
// state directory holding the log file, and home directory expansion for
// paths that never went through a shell.
package paths
