// Package fsystest provides a conformance test suite for validating
// filesystem implementations against the fsys.FS interface contracts.
//
// The suite is designed to validate interface contracts, not
// backend-specific behavior. Import it from an implementation package:
//
//	func TestMemory(t *testing.T) {
//	    fsystest.TestFS(t, func() fsys.FS {
//	        return fsys.NewMemory()
//	    })
//	}
package fsystest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/ti-oluwa/simple-file-handler/fsys"
)

// TestFS runs all conformance tests against a filesystem. The newFS
// function should return a fresh, empty filesystem for each test; tests
// create and modify files, so each invocation should start clean.
func TestFS(t *testing.T, newFS func() fsys.FS) {
	t.Run("ReadWrite", func(t *testing.T) {
		testReadWrite(t, newFS())
	})
	t.Run("OpenFile", func(t *testing.T) {
		testOpenFile(t, newFS())
	})
	t.Run("Exists", func(t *testing.T) {
		testExists(t, newFS())
	})
	t.Run("Rename", func(t *testing.T) {
		testRename(t, newFS())
	})
	t.Run("Remove", func(t *testing.T) {
		testRemove(t, newFS())
	})
	t.Run("MkdirAll", func(t *testing.T) {
		testMkdirAll(t, newFS())
	})
	t.Run("Truncate", func(t *testing.T) {
		testTruncate(t, newFS())
	})
}

// testReadWrite tests WriteFile/ReadFile round-trip and Open streaming.
func testReadWrite(t *testing.T, filesystem fsys.FS) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	data, err := filesystem.ReadFile("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(): got %q, want %q", data, testContent)
	}

	f, err := filesystem.Open("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Open(): got error %v, want nil", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	buf := make([]byte, len(testContent))
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("Read(): got error %v, want nil or EOF", err)
	}
	if n != len(testContent) {
		t.Errorf("Read(): read %d bytes, want %d", n, len(testContent))
	}
	if !bytes.Equal(buf, testContent) {
		t.Errorf("Read(): got %q, want %q", buf, testContent)
	}
}

// testOpenFile tests OpenFile with create, append, and read-only flags.
func testOpenFile(t *testing.T, filesystem fsys.FS) {
	f, err := filesystem.OpenFile("flags.txt", os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(O_CREATE|O_WRONLY): got error %v, want nil", err)
	}
	if _, err := f.Write([]byte("first")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	f, err = filesystem.OpenFile("flags.txt", os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(O_APPEND): got error %v, want nil", err)
	}
	if _, err := f.Write([]byte(" second")); err != nil {
		t.Fatalf("Write(append): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("flags.txt")
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if string(data) != "first second" {
		t.Errorf("ReadFile(): got %q, want %q", data, "first second")
	}

	// Opening a missing file without O_CREATE must fail with a
	// not-exist error.
	_, err = filesystem.OpenFile("missing.txt", os.O_RDONLY, 0o644)
	if err == nil {
		t.Fatal("OpenFile(missing, O_RDONLY): got nil error, want not-exist")
	}
	if !os.IsNotExist(err) && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenFile(missing): error %v does not report not-exist", err)
	}
}

// testExists tests Exists on present and absent paths.
func testExists(t *testing.T, filesystem fsys.FS) {
	if err := filesystem.WriteFile("here.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}

	ok, err := filesystem.Exists("here.txt")
	if err != nil {
		t.Fatalf("Exists(here.txt): got error %v, want nil", err)
	}
	if !ok {
		t.Error("Exists(here.txt) = false, want true")
	}

	ok, err = filesystem.Exists("nowhere.txt")
	if err != nil {
		t.Fatalf("Exists(nowhere.txt): got error %v, want nil", err)
	}
	if ok {
		t.Error("Exists(nowhere.txt) = true, want false")
	}
}

// testRename tests Rename moving content to the new path.
func testRename(t *testing.T, filesystem fsys.FS) {
	content := []byte("movable")
	if err := filesystem.WriteFile("old.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}

	if err := filesystem.Rename("old.txt", "new.txt"); err != nil {
		t.Fatalf("Rename(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("new.txt")
	if err != nil {
		t.Fatalf("ReadFile(new.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(new.txt): got %q, want %q", data, content)
	}

	ok, err := filesystem.Exists("old.txt")
	if err != nil {
		t.Fatalf("Exists(old.txt): got error %v, want nil", err)
	}
	if ok {
		t.Error("Exists(old.txt) = true after rename, want false")
	}
}

// testRemove tests Remove and the not-exist error on a second remove.
func testRemove(t *testing.T, filesystem fsys.FS) {
	if err := filesystem.WriteFile("gone.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}

	if err := filesystem.Remove("gone.txt"); err != nil {
		t.Fatalf("Remove(): got error %v, want nil", err)
	}

	ok, err := filesystem.Exists("gone.txt")
	if err != nil {
		t.Fatalf("Exists(gone.txt): got error %v, want nil", err)
	}
	if ok {
		t.Error("Exists(gone.txt) = true after remove, want false")
	}

	err = filesystem.Remove("gone.txt")
	if err == nil {
		t.Fatal("Remove(gone.txt) second call: got nil error, want not-exist")
	}
	if !os.IsNotExist(err) && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Remove(gone.txt): error %v does not report not-exist", err)
	}
}

// testMkdirAll tests nested directory creation and writing inside it.
func testMkdirAll(t *testing.T, filesystem fsys.FS) {
	if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll(a/b/c): got error %v, want nil", err)
	}

	if err := filesystem.WriteFile("a/b/c/deep.txt", []byte("deep"), 0o644); err != nil {
		t.Fatalf("WriteFile(a/b/c/deep.txt): got error %v, want nil", err)
	}

	info, err := filesystem.Stat("a/b/c/deep.txt")
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if info.Size() != 4 {
		t.Errorf("Stat(): size %d, want 4", info.Size())
	}

	// MkdirAll on an existing path is a no-op.
	if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
		t.Errorf("MkdirAll(existing): got error %v, want nil", err)
	}
}

// testTruncate tests truncating an open file to zero.
func testTruncate(t *testing.T, filesystem fsys.FS) {
	if err := filesystem.WriteFile("trunc.txt", []byte("some content"), 0o644); err != nil {
		t.Fatalf("WriteFile(): setup failed: %v", err)
	}

	f, err := filesystem.OpenFile("trunc.txt", os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(): got error %v, want nil", err)
	}
	if err := f.Truncate(0); err != nil {
		_ = f.Close()
		t.Fatalf("Truncate(0): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("trunc.txt")
	if err != nil {
		t.Fatalf("ReadFile(): got error %v, want nil", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadFile() after truncate: got %q, want empty", data)
	}
}
