// Package filesystem provides the filesystem used by lineinfile.
//
// Everything goes through an afero.Fs so the editor and the backup service
// run the same way against the real disk and against an in-memory
// filesystem in tests. The package also holds the two write helpers the
// editor needs: creating missing parent directories and replacing a file's
// content atomically.
package filesystem
