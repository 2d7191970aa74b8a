package filehandler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filehandler "github.com/ti-oluwa/simple-file-handler"
	"github.com/ti-oluwa/simple-file-handler/errors"
	"github.com/ti-oluwa/simple-file-handler/fsys"
)

type settings struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Retries int    `json:"retries" yaml:"retries" toml:"retries"`
}

func TestJSONRoundTrip(t *testing.T) {
	h := newHandle(t, "config.json")
	in := settings{Name: "svc", Retries: 3}

	require.NoError(t, h.WriteJSON(in))

	var out settings
	require.NoError(t, h.ReadJSON(&out))
	assert.Equal(t, in, out)
}

func TestReadJSONInvalid(t *testing.T) {
	h := newHandle(t, "broken.json")
	_, err := h.WriteText("{not json", "w")
	require.NoError(t, err)

	var out settings
	err = h.ReadJSON(&out)
	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
}

func TestUpdateJSON(t *testing.T) {
	h := newHandle(t, "config.json")
	require.NoError(t, h.WriteJSON(map[string]any{"name": "svc", "retries": 3}))

	require.NoError(t, h.UpdateJSON(map[string]any{"retries": 5, "debug": true}))

	var out map[string]any
	require.NoError(t, h.ReadJSON(&out))
	assert.Equal(t, "svc", out["name"])
	assert.EqualValues(t, 5, out["retries"])
	assert.Equal(t, true, out["debug"])
}

func TestUpdateJSONEmptyFile(t *testing.T) {
	h := newHandle(t, "fresh.json")

	require.NoError(t, h.UpdateJSON(map[string]any{"seeded": true}))

	var out map[string]any
	require.NoError(t, h.ReadJSON(&out))
	assert.Equal(t, true, out["seeded"])
}

func TestUpdateJSONMissingFile(t *testing.T) {
	h := newHandle(t, "removed.json")
	require.NoError(t, h.Delete())

	// A file removed after construction merges into an empty object.
	require.NoError(t, h.UpdateJSON(map[string]any{"restored": true}))

	var out map[string]any
	require.NoError(t, h.ReadJSON(&out))
	assert.Equal(t, map[string]any{"restored": true}, out)
}

func TestUpdateJSONWrongType(t *testing.T) {
	h := newHandle(t, "config.yaml")

	err := h.UpdateJSON(map[string]any{"x": 1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedType, errors.GetCode(err))
}

func TestYAMLRoundTrip(t *testing.T) {
	h := newHandle(t, "config.yaml")
	in := settings{Name: "svc", Retries: 3}

	require.NoError(t, h.WriteYAML(in))

	var out settings
	require.NoError(t, h.ReadYAML(&out))
	assert.Equal(t, in, out)
}

func TestTOMLRoundTrip(t *testing.T) {
	h := newHandle(t, "config.toml")
	in := settings{Name: "svc", Retries: 3}

	require.NoError(t, h.WriteTOML(in))

	var out settings
	require.NoError(t, h.ReadTOML(&out))
	assert.Equal(t, in, out)
}

func TestCSVRoundTrip(t *testing.T) {
	h := newHandle(t, "table.csv")
	in := [][]string{
		{"name", "retries"},
		{"svc", "3"},
	}

	require.NoError(t, h.WriteCSV(in))

	out, err := h.ReadCSV()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStructuredDispatch(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"json", "cfg.json"},
		{"yaml", "cfg.yaml"},
		{"yml", "cfg.yml"},
		{"toml", "cfg.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandle(t, tt.path)
			in := settings{Name: "svc", Retries: 3}

			require.NoError(t, h.WriteStructured(in))

			var out settings
			require.NoError(t, h.ReadStructured(&out))
			assert.Equal(t, in, out)
		})
	}
}

func TestStructuredUnsupported(t *testing.T) {
	h := newHandle(t, "readme.md")

	err := h.WriteStructured(settings{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedType, errors.GetCode(err))

	var out settings
	err = h.ReadStructured(&out)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedType, errors.GetCode(err))
}

func TestFormatHelpersRespectTypePolicy(t *testing.T) {
	mem := fsys.NewMemory()
	h, err := filehandler.New("data.bin", filehandler.WithFS(mem))
	require.NoError(t, err)
	defer h.Close()

	readErr := h.ReadJSON(&settings{})
	require.Error(t, readErr)
	assert.Equal(t, errors.CodeUnsupportedType, errors.GetCode(readErr))
}
