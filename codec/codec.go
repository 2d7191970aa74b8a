// Package codec provides the structured-format collaborators used by the
// file handler's format helpers. Each codec converts between Go values and
// serialized text; the handler owns all file I/O.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Codec converts between Go values and a serialized representation.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON encodes and decodes JSON documents with indented output.
type JSON struct {
	// Indent is the indentation unit for marshaled output. Empty means
	// four spaces, matching common hand-edited configuration files.
	Indent string
}

// Marshal implements Codec.Marshal.
func (c JSON) Marshal(v any) ([]byte, error) {
	indent := c.Indent
	if indent == "" {
		indent = "    "
	}
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal json: %w", err)
	}
	return data, nil
}

// Unmarshal implements Codec.Unmarshal.
func (c JSON) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal json: %w", err)
	}
	return nil
}

// YAML encodes and decodes YAML documents.
type YAML struct{}

// Marshal implements Codec.Marshal.
func (YAML) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal yaml: %w", err)
	}
	return data, nil
}

// Unmarshal implements Codec.Unmarshal.
func (YAML) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal yaml: %w", err)
	}
	return nil
}

// TOML encodes and decodes TOML documents.
type TOML struct{}

// Marshal implements Codec.Marshal.
func (TOML) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("codec: marshal toml: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements Codec.Unmarshal.
func (TOML) Unmarshal(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal toml: %w", err)
	}
	return nil
}

// ForExtension returns the codec registered for a file extension
// (without the leading dot, case-insensitive normalization is the
// caller's concern). The second return is false when no codec handles
// the extension.
//
//nolint:ireturn // registry lookup returns the Codec interface by design.
func ForExtension(ext string) (Codec, bool) {
	switch ext {
	case "json":
		return JSON{}, true
	case "yaml", "yml":
		return YAML{}, true
	case "toml":
		return TOML{}, true
	default:
		return nil, false
	}
}
