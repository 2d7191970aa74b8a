package filehandler

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	errs "github.com/ti-oluwa/simple-file-handler/errors"
	"github.com/ti-oluwa/simple-file-handler/fsys"
)

// Option configures a Handle at construction time.
type Option func(*Handle)

// WithFS sets the filesystem the handle operates on. Defaults to the OS
// filesystem; paths are then resolved to absolute form. With an injected
// filesystem, paths are passed through as given.
func WithFS(filesystem fsys.FS) Option {
	return func(h *Handle) {
		h.fs = filesystem
		h.customFS = true
	}
}

// WithEncoding sets the charset used for text reads and writes, by IANA
// name (e.g. "latin1", "windows-1252"). The default is UTF-8, which
// bypasses transcoding entirely.
func WithEncoding(name string) Option {
	return func(h *Handle) {
		h.encodingName = name
	}
}

// WithCreateMissing controls whether a missing file is created on
// construction. Defaults to true; when false, a missing file fails with
// CodeNotFound.
func WithCreateMissing(create bool) Option {
	return func(h *Handle) {
		h.createMissing = create
	}
}

// WithFailIfExists makes construction fail with CodeAlreadyExists when
// the file is already present, for callers that want strict-uniqueness
// creation instead of handling an existing file.
func WithFailIfExists(fail bool) Option {
	return func(h *Handle) {
		h.failIfExists = fail
	}
}

// WithAnyType disables the supported-extension check on reads and writes.
func WithAnyType(allow bool) Option {
	return func(h *Handle) {
		h.anyType = allow
	}
}

// WithLogger sets the logger used for operation traces. Defaults to a
// no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(h *Handle) {
		if log != nil {
			h.log = log
		}
	}
}

// resolveEncoding maps a charset name to a transcoder. UTF-8 (and the
// empty name) resolve to nil, meaning no transcoding.
func resolveEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, errs.Newf(errs.CodeEncodingFailed, "unsupported encoding %q", name)
	}
	return enc, nil
}
