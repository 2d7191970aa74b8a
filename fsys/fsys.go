// Package fsys defines the filesystem abstraction the file handler operates
// on, together with go-billy backed implementations for the OS filesystem
// and for in-memory use. Errors returned by this layer preserve the standard
// sentinel identity (os.IsNotExist and friends keep working) while adding
// operation context.
package fsys

import (
	"io/fs"
	"os"
)

// File represents an open file handle supporting basic I/O operations.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	ReadAt(p []byte, off int64) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
	Truncate(size int64) error
}

// FS is the filesystem surface required by the handler: open, create,
// inspect, read/write whole files, and manage paths.
type FS interface {
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Create(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
	Exists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
