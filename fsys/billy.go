package fsys

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFS implements FS using go-billy.
type BillyFS struct {
	fs billy.Filesystem
}

// Open implements FS.Open.
//
//nolint:ireturn // API returns the File interface for flexibility.
func (b *BillyFS) Open(name string) (File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("fsys: open %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b}, nil
}

// OpenFile implements FS.OpenFile.
//
//nolint:ireturn // API returns the File interface for flexibility.
func (b *BillyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := b.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("fsys: openfile %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b}, nil
}

// Create implements FS.Create.
//
//nolint:ireturn // API returns the File interface for flexibility.
func (b *BillyFS) Create(name string) (File, error) {
	f, err := b.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("fsys: create %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b}, nil
}

// Stat implements FS.Stat.
func (b *BillyFS) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("fsys: stat %q: %w", name, err)
	}
	return info, nil
}

// Exists implements FS.Exists.
func (b *BillyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("fsys: stat %q: %w", path, err)
	}
}

// ReadFile implements FS.ReadFile.
func (b *BillyFS) ReadFile(path string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("fsys: readfile %q: %w", path, err)
	}
	return bts, nil
}

// WriteFile implements FS.WriteFile.
func (b *BillyFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, path, data, perm); err != nil {
		return fmt.Errorf("fsys: writefile %q: %w", path, err)
	}
	return nil
}

// MkdirAll implements FS.MkdirAll.
func (b *BillyFS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("fsys: mkdirall %q: %w", path, err)
	}
	return nil
}

// Rename implements FS.Rename.
func (b *BillyFS) Rename(oldpath, newpath string) error {
	if err := b.fs.Rename(oldpath, newpath); err != nil {
		return fmt.Errorf("fsys: rename %q -> %q: %w", oldpath, newpath, err)
	}
	return nil
}

// Remove implements FS.Remove.
func (b *BillyFS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("fsys: remove %q: %w", name, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // returning the interface exposes the adapter target.
func (b *BillyFS) Raw() billy.Filesystem {
	return b.fs
}

// New creates a BillyFS over the given go-billy filesystem.
func New(fsys billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fsys}
}

// NewMemory creates a new in-memory filesystem.
func NewMemory() *BillyFS {
	return &BillyFS{fs: memfs.New()}
}

// NewOSAt creates a filesystem rooted at the given directory.
func NewOSAt(root string) *BillyFS {
	return &BillyFS{fs: osfs.New(root)}
}

// baseOS is a billy.Filesystem that acts like the native filesystem.
type baseOS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *baseOS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (b *baseOS) Root() string {
	return "/"
}

// NewOS creates a filesystem that acts like the native filesystem, with
// no chroot applied. Paths passed to it are interpreted as OS paths.
func NewOS() *BillyFS {
	return &BillyFS{fs: &baseOS{}}
}
