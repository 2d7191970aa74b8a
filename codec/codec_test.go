package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ti-oluwa/simple-file-handler/codec"
)

type sample struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Count int    `json:"count" yaml:"count" toml:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := sample{Name: "widget", Count: 3}

	data, err := codec.JSON{}.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"name\": \"widget\"")

	var out sample
	require.NoError(t, codec.JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONCustomIndent(t *testing.T) {
	data, err := codec.JSON{Indent: "\t"}.Marshal(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\t\"a\": 1")
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	var out sample
	err := codec.JSON{}.Unmarshal([]byte("{not json"), &out)
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := sample{Name: "widget", Count: 3}

	data, err := codec.YAML{}.Marshal(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, codec.YAML{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestTOMLRoundTrip(t *testing.T) {
	in := sample{Name: "widget", Count: 3}

	data, err := codec.TOML{}.Marshal(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, codec.TOML{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestForExtension(t *testing.T) {
	for _, ext := range []string{"json", "yaml", "yml", "toml"} {
		c, ok := codec.ForExtension(ext)
		assert.True(t, ok, "extension %q", ext)
		assert.NotNil(t, c)
	}

	_, ok := codec.ForExtension("txt")
	assert.False(t, ok)
}

func TestCSVRoundTrip(t *testing.T) {
	in := [][]string{
		{"name", "count"},
		{"widget", "3"},
		{"gadget", "7"},
	}

	data, err := codec.MarshalCSV(in)
	require.NoError(t, err)

	out, err := codec.UnmarshalCSV(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCSVRaggedRows(t *testing.T) {
	out, err := codec.UnmarshalCSV([]byte("a,b,c\nd,e\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}}, out)
}
