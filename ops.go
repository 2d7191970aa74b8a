package filehandler

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	errs "github.com/ti-oluwa/simple-file-handler/errors"
	"github.com/ti-oluwa/simple-file-handler/fsys"
)

// CopyOption configures Copy, Move and Rename placement.
type CopyOption func(*copyConfig)

type copyConfig struct {
	name string
}

// Named sets the destination base name. Given without an extension it
// inherits the source's; any other extension than the source's is
// rejected with CodeInvalidInput.
func Named(name string) CopyOption {
	return func(c *copyConfig) {
		c.name = name
	}
}

// destName resolves the destination base name for a copy, move or rename.
func (h *Handle) destName(cfg copyConfig) (string, error) {
	if cfg.name == "" {
		return h.Name(), nil
	}
	name := cfg.name
	if strings.ContainsAny(name, `/\`) {
		return "", errs.Newf(errs.CodeInvalidInput, "destination name %q must not contain path separators", name)
	}
	switch ext := filepath.Ext(name); ext {
	case "":
		name += h.Ext()
	case h.Ext():
	default:
		return "", errs.Newf(errs.CodeInvalidInput,
			"destination extension %q does not match source %q", ext, h.Ext())
	}
	return name, nil
}

// uniquePath joins dir and name, appending _1, _2, ... to the stem until
// the path does not exist. The suffixing is deterministic: the first free
// number wins.
func (h *Handle) uniquePath(dir, name string) (string, error) {
	target := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		exists, err := h.fs.Exists(target)
		if err != nil {
			return "", errs.FromOS(err, target)
		}
		if !exists {
			return target, nil
		}
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
}

// Copy copies the file's content into destDir, creating the directory if
// needed. The destination name defaults to the source's base name; a
// collision produces a numbered name (name_1.ext, name_2.ext, ...). The
// source is untouched. Returns a new Handle bound to the copy, carrying
// the source handle's configuration.
func (h *Handle) Copy(destDir string, opts ...CopyOption) (*Handle, error) {
	var cfg copyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return h.copyTo(destDir, cfg)
}

func (h *Handle) copyTo(destDir string, cfg copyConfig) (*Handle, error) {
	if !h.customFS {
		abs, err := fsysGetAbs(destDir)
		if err != nil {
			return nil, err
		}
		destDir = abs
	}

	name, err := h.destName(cfg)
	if err != nil {
		return nil, err
	}

	data, err := h.fs.ReadFile(h.path)
	if err != nil {
		return nil, errs.FromOS(err, h.path)
	}

	if err := h.fs.MkdirAll(destDir, 0o755); err != nil {
		return nil, errs.FromOS(err, destDir)
	}
	target, err := h.uniquePath(destDir, name)
	if err != nil {
		return nil, err
	}
	if err := h.fs.WriteFile(target, data, filePerm); err != nil {
		return nil, errs.FromOS(err, target)
	}

	h.log.Debug("copied file",
		zap.String("source", h.path),
		zap.String("target", target),
		zap.Int("bytes", len(data)),
	)
	return h.rebindNew(target), nil
}

// rebindNew builds a Handle for target sharing this handle's
// configuration. The destination was freshly placed by this handle, so
// the existence policy is not re-applied.
func (h *Handle) rebindNew(target string) *Handle {
	return &Handle{
		fs:            h.fs,
		customFS:      h.customFS,
		path:          target,
		encodingName:  h.encodingName,
		enc:           h.enc,
		createMissing: h.createMissing,
		anyType:       h.anyType,
		log:           h.log,
		created:       true,
	}
}

// Move copies the file into destDir with Copy's placement and naming
// policy, then removes the source. The handle re-binds to the destination
// path and is returned. Moving into the file's own directory fails with
// CodeInvalidInput; use Rename for that.
func (h *Handle) Move(destDir string, opts ...CopyOption) (*Handle, error) {
	var cfg copyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dir := filepath.Clean(destDir)
	if !h.customFS {
		abs, err := fsysGetAbs(destDir)
		if err != nil {
			return nil, err
		}
		dir = abs
	}
	if dir == h.Dir() {
		return nil, errs.Newf(errs.CodeInvalidInput,
			"move destination %q is the file's own directory", destDir)
	}

	copied, err := h.copyTo(dir, cfg)
	if err != nil {
		return nil, err
	}
	if err := h.fs.Remove(h.path); err != nil {
		return nil, errs.FromOS(err, h.path)
	}

	h.log.Debug("moved file",
		zap.String("source", h.path),
		zap.String("target", copied.path),
	)
	h.path = copied.path
	h.created = false
	return h, nil
}

// Rename renames the file within its directory, using the same collision
// policy as Copy. The handle re-binds to the new path and is returned.
func (h *Handle) Rename(newName string) (*Handle, error) {
	if newName == "" {
		return nil, errs.New(errs.CodeInvalidInput, "empty destination name")
	}
	name, err := h.destName(copyConfig{name: newName})
	if err != nil {
		return nil, err
	}

	// Renaming to the current name is a no-op; checked before uniquePath,
	// which would count the file itself as a collision.
	if filepath.Join(h.Dir(), name) == h.path {
		return h, nil
	}
	target, err := h.uniquePath(h.Dir(), name)
	if err != nil {
		return nil, err
	}
	if err := h.fs.Rename(h.path, target); err != nil {
		return nil, errs.FromOS(err, h.path)
	}

	h.log.Debug("renamed file",
		zap.String("source", h.path),
		zap.String("target", target),
	)
	h.path = target
	return h, nil
}

// Delete removes the file. Deleting a file that is already absent fails
// with CodeNotFound; deletion is deliberately not idempotent so callers
// notice double-delete bugs.
func (h *Handle) Delete() error {
	exists, err := h.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return errs.Newf(errs.CodeNotFound, "cannot delete, file does not exist: %s", h.path)
	}
	if err := h.Close(); err != nil {
		return err
	}
	if err := h.fs.Remove(h.path); err != nil {
		return errs.FromOS(err, h.path)
	}
	h.log.Debug("deleted file", zap.String("path", h.path))
	return nil
}

// Clear truncates the file to empty.
func (h *Handle) Clear() (err error) {
	f, err := h.open(mode{base: 'w', plus: true})
	if err != nil {
		return err
	}
	defer h.release(f, &err)
	h.log.Debug("cleared file", zap.String("path", h.path))
	return nil
}

// fsysGetAbs adapts fsys.GetAbs errors into the handler taxonomy.
func fsysGetAbs(path string) (string, error) {
	abs, err := fsys.GetAbs(path)
	if err != nil {
		return "", errs.Wrap(err, errs.CodeUnknown, "cannot resolve path")
	}
	return abs, nil
}
