// Package filehandler provides a small convenience wrapper around common
// file operations exposed through a single Handle with scoped-resource
// semantics. A Handle owns a path to a regular file and offers read,
// write, copy, move, rename and delete operations plus structured-format
// helpers (JSON, YAML, TOML, CSV). Each operation is atomic from the
// caller's perspective: it opens the file, acts, and closes it within one
// call.
//
// Basic usage:
//
//	err := filehandler.With("notes.txt", func(h *filehandler.Handle) error {
//	    if _, err := h.WriteText("Hello World!", "w"); err != nil {
//	        return err
//	    }
//	    text, err := h.ReadText("r")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(text)
//	    return nil
//	})
package filehandler

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	errs "github.com/ti-oluwa/simple-file-handler/errors"
	"github.com/ti-oluwa/simple-file-handler/fsys"
)

const filePerm = 0o644

// Handle owns a path to a regular file and performs operations on it.
// It does not keep the file open across calls; any OS-level resource an
// operation acquires is released before the operation returns, and Close
// releases anything still held.
type Handle struct {
	fs       fsys.FS
	customFS bool
	path     string

	encodingName  string
	enc           encoding.Encoding
	createMissing bool
	failIfExists  bool
	anyType       bool
	log           *zap.Logger

	created bool
	file    fsys.File
}

// New creates a Handle for the file at path. Missing files are created
// (parent directories included) unless WithCreateMissing(false) is set,
// in which case construction fails with CodeNotFound. An existing path
// that is not a regular file fails with CodeNotAFile.
func New(path string, opts ...Option) (*Handle, error) {
	h := &Handle{
		path:          path,
		createMissing: true,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.fs == nil {
		h.fs = fsys.NewOS()
	}
	if !h.customFS {
		abs, err := fsys.GetAbs(h.path)
		if err != nil {
			return nil, errs.Wrap(err, errs.CodeUnknown, "cannot resolve path")
		}
		h.path = abs
	}

	enc, err := resolveEncoding(h.encodingName)
	if err != nil {
		return nil, err
	}
	h.enc = enc

	if err := h.ensure(); err != nil {
		return nil, err
	}

	h.log.Debug("handle created",
		zap.String("path", h.path),
		zap.Bool("created", h.created),
	)
	return h, nil
}

// Open is an alias for New, reading naturally at scoped call sites:
//
//	h, err := filehandler.Open("config.yaml")
//	if err != nil { ... }
//	defer h.Close()
func Open(path string, opts ...Option) (*Handle, error) {
	return New(path, opts...)
}

// With runs fn with a Handle for path and guarantees the handle is
// closed on all exit paths, including when fn returns an error.
func With(path string, fn func(*Handle) error, opts ...Option) error {
	h, err := New(path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		_ = h.Close()
	}()
	return fn(h)
}

// ensure applies the existence policy: create the file when missing and
// allowed, and verify the path names a regular file.
func (h *Handle) ensure() error {
	exists, err := h.fs.Exists(h.path)
	if err != nil {
		return errs.FromOS(err, h.path)
	}

	if !exists {
		if !h.createMissing {
			return errs.Newf(errs.CodeNotFound, "file not found: %s", h.path)
		}
		if dir := filepath.Dir(h.path); dir != "" && dir != "." {
			if err := h.fs.MkdirAll(dir, 0o755); err != nil {
				return errs.FromOS(err, dir)
			}
		}
		f, err := h.fs.OpenFile(h.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
		if err != nil {
			return errs.FromOS(err, h.path)
		}
		if err := f.Close(); err != nil {
			return errs.FromOS(err, h.path)
		}
		h.created = true
		return nil
	}

	if h.failIfExists {
		return errs.Newf(errs.CodeAlreadyExists, "file already exists: %s", h.path)
	}
	info, err := h.fs.Stat(h.path)
	if err != nil {
		return errs.FromOS(err, h.path)
	}
	if !info.Mode().IsRegular() {
		return errs.Newf(errs.CodeNotAFile, "not a regular file: %s", h.path)
	}
	return nil
}

// Close releases any OS-level resource the handle still holds. It is
// safe to call multiple times.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	f := h.file
	h.file = nil
	if err := f.Close(); err != nil {
		return errs.Wrap(err, errs.CodeUnknown, "cannot close file")
	}
	return nil
}

// Path returns the path the handle is bound to.
func (h *Handle) Path() string { return h.path }

// Name returns the file's base name including its extension.
func (h *Handle) Name() string { return filepath.Base(h.path) }

// Stem returns the file's base name without its extension.
func (h *Handle) Stem() string {
	name := h.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Ext returns the file's extension including the leading dot.
func (h *Handle) Ext() string { return filepath.Ext(h.path) }

// Dir returns the path of the directory containing the file.
func (h *Handle) Dir() string { return filepath.Dir(h.path) }

// Type returns the normalized file type: the lowercase extension without
// the dot, with "yml" folded into "yaml".
func (h *Handle) Type() string {
	t := strings.ToLower(strings.TrimPrefix(filepath.Ext(h.path), "."))
	if t == "yml" {
		t = "yaml"
	}
	return t
}

// Exists reports whether the file currently exists.
func (h *Handle) Exists() (bool, error) {
	ok, err := h.fs.Exists(h.path)
	if err != nil {
		return false, errs.FromOS(err, h.path)
	}
	return ok, nil
}

// Size returns the file size in bytes.
func (h *Handle) Size() (int64, error) {
	info, err := h.fs.Stat(h.path)
	if err != nil {
		return 0, errs.FromOS(err, h.path)
	}
	return info.Size(), nil
}

// Created reports whether the handle created the file on construction.
func (h *Handle) Created() bool { return h.created }

// SupportedTypes returns the extensions (without dot) the handler
// accepts by default. Mostly text-based file types.
func SupportedTypes() []string {
	return []string{
		"txt", "doc", "docx", "pdf", "html", "htm", "xml",
		"js", "css", "md", "json", "csv", "yaml", "yml",
		"toml", "log", "xht", "xhtml", "shtml",
	}
}

// checkType enforces the supported-extension policy unless the handle
// was built with WithAnyType(true).
func (h *Handle) checkType() error {
	if h.anyType {
		return nil
	}
	t := strings.ToLower(strings.TrimPrefix(filepath.Ext(h.path), "."))
	for _, s := range SupportedTypes() {
		if t == s {
			return nil
		}
	}
	return errs.Newf(errs.CodeUnsupportedType, "unsupported file type %q", t)
}

// open opens the handled file with the parsed mode's flags, tracking the
// resource so Close can release it if the caller's operation dies before
// its own deferred close runs.
func (h *Handle) open(p mode) (fsys.File, error) {
	f, err := h.fs.OpenFile(h.path, p.flag(), filePerm)
	if err != nil {
		return nil, errs.FromOS(err, h.path)
	}
	h.file = f
	return f, nil
}

// release closes f and clears the handle's resource tracking. The close
// error wins only when the operation itself succeeded.
func (h *Handle) release(f fsys.File, opErr *error) {
	if h.file == f {
		h.file = nil
	}
	if err := f.Close(); err != nil && *opErr == nil {
		*opErr = errs.Wrap(err, errs.CodeUnknown, "cannot close file")
	}
}

// Read opens the file in the given binary read mode ("rb", "rb+") and
// returns the full contents. Text modes are rejected with
// CodeTypeMismatch; use ReadText for those.
func (h *Handle) Read(m Mode) (data []byte, err error) {
	if err := h.checkType(); err != nil {
		return nil, err
	}
	p, err := readMode(m)
	if err != nil {
		return nil, err
	}
	if !p.binary {
		return nil, errs.Newf(errs.CodeTypeMismatch, "text mode %q passed to Read; use ReadText", m)
	}
	return h.readAll(p, m)
}

// ReadText opens the file in the given text read mode ("r", "r+") and
// returns the contents decoded per the configured encoding. Binary modes
// are rejected with CodeTypeMismatch; use Read for those.
func (h *Handle) ReadText(m Mode) (text string, err error) {
	if err := h.checkType(); err != nil {
		return "", err
	}
	p, err := readMode(m)
	if err != nil {
		return "", err
	}
	if p.binary {
		return "", errs.Newf(errs.CodeTypeMismatch, "binary mode %q passed to ReadText; use Read", m)
	}
	data, err := h.readAll(p, m)
	if err != nil {
		return "", err
	}
	if h.enc != nil {
		decoded, decErr := h.enc.NewDecoder().Bytes(data)
		if decErr != nil {
			return "", errs.Wrap(decErr, errs.CodeDecodeFailed, "cannot decode file content")
		}
		data = decoded
	}
	return string(data), nil
}

func (h *Handle) readAll(p mode, m Mode) (data []byte, err error) {
	f, err := h.open(p)
	if err != nil {
		return nil, err
	}
	defer h.release(f, &err)

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, errs.FromOS(err, h.path)
	}
	h.log.Debug("read file",
		zap.String("path", h.path),
		zap.String("mode", string(m)),
		zap.Int("bytes", len(data)),
	)
	return data, nil
}

// Write opens the file in the given binary write mode ("wb", "ab") and
// writes data, returning the number of bytes written. Text modes are
// rejected with CodeTypeMismatch; use WriteText for those.
func (h *Handle) Write(data []byte, m Mode) (n int, err error) {
	if err := h.checkType(); err != nil {
		return 0, err
	}
	p, err := writeMode(m)
	if err != nil {
		return 0, err
	}
	if !p.binary {
		return 0, errs.Newf(errs.CodeTypeMismatch, "text mode %q passed to Write; use WriteText", m)
	}
	return h.writeAll(data, p, m)
}

// WriteText opens the file in the given text write mode ("w", "a") and
// writes s encoded per the configured encoding, returning the number of
// bytes written. Binary modes are rejected with CodeTypeMismatch; use
// Write for those.
func (h *Handle) WriteText(s string, m Mode) (n int, err error) {
	if err := h.checkType(); err != nil {
		return 0, err
	}
	p, err := writeMode(m)
	if err != nil {
		return 0, err
	}
	if p.binary {
		return 0, errs.Newf(errs.CodeTypeMismatch, "binary mode %q passed to WriteText; use Write", m)
	}
	data := []byte(s)
	if h.enc != nil {
		encoded, encErr := h.enc.NewEncoder().Bytes(data)
		if encErr != nil {
			return 0, errs.Wrap(encErr, errs.CodeEncodingFailed, "cannot encode content")
		}
		data = encoded
	}
	return h.writeAll(data, p, m)
}

func (h *Handle) writeAll(data []byte, p mode, m Mode) (n int, err error) {
	f, err := h.open(p)
	if err != nil {
		return 0, err
	}
	defer h.release(f, &err)

	n, err = f.Write(data)
	if err != nil {
		return n, errs.FromOS(err, h.path)
	}
	h.log.Debug("wrote file",
		zap.String("path", h.path),
		zap.String("mode", string(m)),
		zap.Int("bytes", n),
	)
	return n, nil
}
