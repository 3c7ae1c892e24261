// Package backup snapshots a file before lineinfile overwrites it.
package backup

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lineinfile/pkg/clock"
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultTimeFormat is the timestamp layout used in backup file names.
const DefaultTimeFormat = "2006-01-02@15:04:05"

// Backuper creates a snapshot of a file and returns the snapshot's path.
type Backuper interface {
	BackupIfRequested(path string) (string, error)
}

// FileBackuper copies a file next to itself as
// <path>.<pid>.<timestamp>~, keeping the original permissions.
type FileBackuper struct {
	fs         afero.Fs
	clock      clock.Clock
	timeFormat string
	pid        func() int
	logger     zerolog.Logger
}

// Option configures a FileBackuper.
type Option func(*FileBackuper)

// WithClock sets the clock used for the timestamp.
func WithClock(c clock.Clock) Option {
	return func(b *FileBackuper) { b.clock = c }
}

// WithTimeFormat sets the timestamp layout.
func WithTimeFormat(layout string) Option {
	return func(b *FileBackuper) {
		if layout != "" {
			b.timeFormat = layout
		}
	}
}

// WithPID overrides the process id source, for deterministic names in tests.
func WithPID(pid func() int) Option {
	return func(b *FileBackuper) { b.pid = pid }
}

// NewFileBackuper creates a FileBackuper writing to afs.
func NewFileBackuper(afs afero.Fs, opts ...Option) *FileBackuper {
	b := &FileBackuper{
		fs:         afs,
		clock:      clock.RealClock{},
		timeFormat: DefaultTimeFormat,
		pid:        os.Getpid,
		logger:     logging.GetLogger("backup"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backup path that would be used for path right now.
func (b *FileBackuper) Name(path string) string {
	return fmt.Sprintf("%s.%d.%s~", path, b.pid(), b.clock.Now().Format(b.timeFormat))
}

// BackupIfRequested copies path to its backup location.
func (b *FileBackuper) BackupIfRequested(path string) (string, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "cannot stat %s for backup", path)
	}

	content, err := afero.ReadFile(b.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "cannot read %s for backup", path)
	}

	dest := b.Name(path)
	if err := afero.WriteFile(b.fs, dest, content, info.Mode().Perm()); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "cannot write backup %s", dest)
	}

	b.logger.Info().
		Str("path", path).
		Str("backup", dest).
		Int("bytes", len(content)).
		Msg("Created backup")

	return dest, nil
}

// Disabled never creates anything.
type Disabled struct{}

func (Disabled) BackupIfRequested(string) (string, error) { return "", nil }
