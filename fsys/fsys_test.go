package fsys_test

import (
	"testing"

	"github.com/ti-oluwa/simple-file-handler/fsys"
	"github.com/ti-oluwa/simple-file-handler/fsys/fsystest"
)

func TestMemoryFS(t *testing.T) {
	fsystest.TestFS(t, func() fsys.FS {
		return fsys.NewMemory()
	})
}

func TestOSAtFS(t *testing.T) {
	fsystest.TestFS(t, func() fsys.FS {
		return fsys.NewOSAt(t.TempDir())
	})
}
