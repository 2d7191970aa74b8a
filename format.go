package filehandler

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/ti-oluwa/simple-file-handler/codec"
	errs "github.com/ti-oluwa/simple-file-handler/errors"
)

// readRaw loads the full file content applying the supported-type policy.
func (h *Handle) readRaw() ([]byte, error) {
	if err := h.checkType(); err != nil {
		return nil, err
	}
	data, err := h.fs.ReadFile(h.path)
	if err != nil {
		return nil, errs.FromOS(err, h.path)
	}
	return data, nil
}

// writeRaw replaces the full file content applying the supported-type
// policy.
func (h *Handle) writeRaw(data []byte) error {
	if err := h.checkType(); err != nil {
		return err
	}
	if err := h.fs.WriteFile(h.path, data, filePerm); err != nil {
		return errs.FromOS(err, h.path)
	}
	h.log.Debug("wrote structured file",
		zap.String("path", h.path),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// readWith parses the file content into v using c.
func (h *Handle) readWith(c codec.Codec, v any) error {
	data, err := h.readRaw()
	if err != nil {
		return err
	}
	if err := c.Unmarshal(data, v); err != nil {
		return errs.WrapWithContext(err, errs.CodeDecodeFailed, "cannot parse file content", map[string]any{
			"path": h.path,
		})
	}
	return nil
}

// writeWith serializes v using c and replaces the file content.
func (h *Handle) writeWith(c codec.Codec, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return errs.WrapWithContext(err, errs.CodeEncodingFailed, "cannot serialize content", map[string]any{
			"path": h.path,
		})
	}
	return h.writeRaw(data)
}

// ReadJSON parses the file as JSON into v.
func (h *Handle) ReadJSON(v any) error {
	return h.readWith(codec.JSON{}, v)
}

// WriteJSON replaces the file content with v serialized as indented JSON.
func (h *Handle) WriteJSON(v any) error {
	return h.writeWith(codec.JSON{}, v)
}

// UpdateJSON merges patch into the file's top-level JSON object and
// writes the result back. A missing or empty file is treated as an empty
// object. Only usable with "json" files.
func (h *Handle) UpdateJSON(patch map[string]any) error {
	if h.Type() != "json" {
		return errs.Newf(errs.CodeUnsupportedType, "UpdateJSON cannot be used with %q files", h.Type())
	}
	current := map[string]any{}
	data, err := h.readRaw()
	if err != nil {
		// A file removed since construction still merges into {}.
		if !errs.IsCode(err, errs.CodeNotFound) {
			return err
		}
		data = nil
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := (codec.JSON{}).Unmarshal(data, &current); err != nil {
			return errs.Wrap(err, errs.CodeDecodeFailed, "cannot parse existing content")
		}
	}
	for k, v := range patch {
		current[k] = v
	}
	return h.WriteJSON(current)
}

// ReadYAML parses the file as YAML into v.
func (h *Handle) ReadYAML(v any) error {
	return h.readWith(codec.YAML{}, v)
}

// WriteYAML replaces the file content with v serialized as YAML.
func (h *Handle) WriteYAML(v any) error {
	return h.writeWith(codec.YAML{}, v)
}

// ReadTOML parses the file as TOML into v.
func (h *Handle) ReadTOML(v any) error {
	return h.readWith(codec.TOML{}, v)
}

// WriteTOML replaces the file content with v serialized as TOML.
func (h *Handle) WriteTOML(v any) error {
	return h.writeWith(codec.TOML{}, v)
}

// ReadCSV parses the file as CSV records. Rows may have varying field
// counts.
func (h *Handle) ReadCSV() ([][]string, error) {
	data, err := h.readRaw()
	if err != nil {
		return nil, err
	}
	records, err := codec.UnmarshalCSV(data)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeDecodeFailed, "cannot parse file content")
	}
	return records, nil
}

// WriteCSV replaces the file content with records serialized as CSV.
func (h *Handle) WriteCSV(records [][]string) error {
	data, err := codec.MarshalCSV(records)
	if err != nil {
		return errs.Wrap(err, errs.CodeEncodingFailed, "cannot serialize records")
	}
	return h.writeRaw(data)
}

// ReadStructured parses the file into v using the codec registered for
// the file's type. Fails with CodeUnsupportedType when no codec handles
// it.
func (h *Handle) ReadStructured(v any) error {
	c, ok := codec.ForExtension(h.Type())
	if !ok {
		return errs.Newf(errs.CodeUnsupportedType, "no codec for file type %q", h.Type())
	}
	return h.readWith(c, v)
}

// WriteStructured replaces the file content with v serialized by the
// codec registered for the file's type. Fails with CodeUnsupportedType
// when no codec handles it.
func (h *Handle) WriteStructured(v any) error {
	c, ok := codec.ForExtension(h.Type())
	if !ok {
		return errs.Newf(errs.CodeUnsupportedType, "no codec for file type %q", h.Type())
	}
	return h.writeWith(c, v)
}
