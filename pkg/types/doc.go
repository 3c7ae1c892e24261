// Package types defines the values shared between the editor, the task
// runner and the renderers: the desired State of a line and the Result of
// one edit.
package types
