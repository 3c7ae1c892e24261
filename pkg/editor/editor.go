package editor

import (
	"io/fs"

	"github.com/arthur-debert/lineinfile/pkg/backup"
	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/filesystem"
	"github.com/arthur-debert/lineinfile/pkg/lines"
	"github.com/arthur-debert/lineinfile/pkg/logging"
	"github.com/arthur-debert/lineinfile/pkg/params"
	"github.com/arthur-debert/lineinfile/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Result messages
const (
	MsgLineAdded      = "line added"
	MsgLineReplaced   = "line replaced"
	MsgLinesRemoved   = "%d line(s) removed"
	MsgFileNotPresent = "file not present"
)

// Default permissions for files and directories the editor creates.
const (
	DefaultFileMode fs.FileMode = 0644
	DefaultDirMode  fs.FileMode = 0755
)

// Options configures an Editor.
type Options struct {
	Fs       afero.Fs
	Backuper backup.Backuper
	// FileMode is used for new files when the request has no mode.
	FileMode fs.FileMode
	// DirMode is used for parent directories created with create=true.
	DirMode fs.FileMode
}

// Editor runs edit requests against a filesystem. It holds no state
// between calls.
type Editor struct {
	fs       afero.Fs
	backuper backup.Backuper
	fileMode fs.FileMode
	dirMode  fs.FileMode
	logger   zerolog.Logger
}

// New creates an Editor. Missing options fall back to the OS filesystem,
// a FileBackuper and the default modes.
func New(opts Options) *Editor {
	e := &Editor{
		fs:       opts.Fs,
		backuper: opts.Backuper,
		fileMode: opts.FileMode,
		dirMode:  opts.DirMode,
		logger:   logging.GetLogger("editor"),
	}
	if e.fs == nil {
		e.fs = filesystem.NewOS()
	}
	if e.backuper == nil {
		e.backuper = backup.NewFileBackuper(e.fs)
	}
	if e.fileMode == 0 {
		e.fileMode = DefaultFileMode
	}
	if e.dirMode == 0 {
		e.dirMode = DefaultDirMode
	}
	return e
}

// Apply dispatches p to EnsurePresent or EnsureAbsent.
func (e *Editor) Apply(p params.Params) (*types.Result, error) {
	if p.State == types.StateAbsent {
		return e.EnsureAbsent(p)
	}
	return e.EnsurePresent(p)
}

// keptModeBits are the mode bits carried over when a file is rewritten.
const keptModeBits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// destination describes the target path before the edit.
type destination struct {
	exists bool
	mode   fs.FileMode
	doc    lines.Document
}

// load stats and reads the destination. Directories are always refused.
func (e *Editor) load(path string) (destination, error) {
	info, err := filesystem.Inspect(e.fs, path)
	if err != nil {
		return destination{}, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", path)
	}
	if info == nil {
		return destination{doc: lines.Document{}}, nil
	}
	if info.IsDir() {
		return destination{}, errors.Newf(errors.ErrDestinationIsDirectory, "destination %s is a directory", path).
			WithDetail("path", path)
	}

	content, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return destination{}, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path)
	}

	return destination{
		exists: true,
		mode:   info.Mode() & keptModeBits,
		doc:    lines.Split(content),
	}, nil
}

// commit backs up (when asked and the file existed) and writes doc.
func (e *Editor) commit(p params.Params, dest destination, doc lines.Document, logger zerolog.Logger) (string, error) {
	var backupPath string
	if p.Backup && dest.exists {
		path, err := e.backuper.BackupIfRequested(p.Path)
		if err != nil {
			return "", err
		}
		backupPath = path
	}

	mode := dest.mode
	if !dest.exists {
		created, err := filesystem.EnsureParentDir(e.fs, p.Path, e.dirMode)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory of %s", p.Path)
		}
		if created {
			logger.Debug().Msg("Created parent directories")
		}
		mode = p.Mode
		if mode == 0 {
			mode = e.fileMode
		}
	}

	if err := filesystem.WriteFileAtomic(e.fs, p.Path, doc.Bytes(), mode); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", p.Path)
	}

	logger.Debug().Int("lines", len(doc)).Msg("Wrote file")
	return backupPath, nil
}

func withDiff(result *types.Result, p params.Params, before, after lines.Document) {
	if p.Diff {
		result.Diff = &types.Diff{Before: before.String(), After: after.String()}
	}
}
