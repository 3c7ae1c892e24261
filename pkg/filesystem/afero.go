package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Inspect stats path. A missing path is not an error: it returns a nil
// FileInfo.
func Inspect(afs afero.Fs, path string) (fs.FileInfo, error) {
	info, err := afs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// EnsureParentDir creates the parent directories of path when they are
// missing and reports whether it had to create anything.
func EnsureParentDir(afs afero.Fs, path string, perm fs.FileMode) (bool, error) {
	dir := filepath.Dir(path)
	exists, err := afero.DirExists(afs, dir)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := afs.MkdirAll(dir, perm); err != nil {
		return false, err
	}
	return true, nil
}

// maxLinkHops bounds symlink chains, matching the kernel's ELOOP limit.
const maxLinkHops = 40

var errLinkLoop = errors.New("too many levels of symbolic links")

// ResolveLinks follows path through any chain of symlinks and returns the
// path of the final target. A dangling link resolves to the missing target.
// Filesystems without symlink support return path unchanged.
func ResolveLinks(afs afero.Fs, path string) (string, error) {
	lstater, ok := afs.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := afs.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	for i := 0; i < maxLinkHops; i++ {
		info, lstatCalled, err := lstater.LstatIfPossible(path)
		if err != nil {
			if os.IsNotExist(err) {
				return path, nil
			}
			return "", err
		}
		if !lstatCalled || info.Mode()&fs.ModeSymlink == 0 {
			return path, nil
		}

		target, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", &fs.PathError{Op: "readlink", Path: path, Err: errLinkLoop}
}

// WriteFileAtomic replaces the content of path with data. Symlinks are
// followed so the file they point to is replaced and the links survive.
// The data goes to a temporary file next to the target which is then
// renamed over it, so readers see either the old or the new content. An
// existing target keeps its owner and group when the process may set them.
func WriteFileAtomic(afs afero.Fs, path string, data []byte, perm fs.FileMode) (err error) {
	path, err = ResolveLinks(afs, path)
	if err != nil {
		return err
	}

	var previous fs.FileInfo
	if info, statErr := afs.Stat(path); statErr == nil {
		previous = info
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(afs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = afs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	// chown clears setuid and setgid, so it runs before chmod
	if previous != nil {
		if uid, gid, ok := fileOwner(previous); ok {
			_ = afs.Chown(tmpName, uid, gid)
		}
	}
	if err = afs.Chmod(tmpName, perm); err != nil {
		return err
	}
	return afs.Rename(tmpName, path)
}
