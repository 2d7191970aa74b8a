package filehandler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/ti-oluwa/simple-file-handler/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in       Mode
		ok       bool
		readable bool
		writable bool
		binary   bool
	}{
		{"r", true, true, false, false},
		{"R", true, true, false, false},
		{"r+", true, true, true, false},
		{"rb", true, true, false, true},
		{"rb+", true, true, true, true},
		{"w", true, false, true, false},
		{"w+", true, true, true, false},
		{"wb", true, false, true, true},
		{"a", true, false, true, false},
		{"a+", true, true, true, false},
		{"ab+", true, true, true, true},
		{"x", true, false, true, false},
		{"xb", true, false, true, true},
		{"", false, false, false, false},
		{"z", false, false, false, false},
		{"rbb", false, false, false, false},
		{"r++", false, false, false, false},
		{"rw", false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			p, err := parseMode(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				assert.Equal(t, errs.CodeInvalidMode, errs.GetCode(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.readable, p.readable(), "readable")
			assert.Equal(t, tt.writable, p.writable(), "writable")
			assert.Equal(t, tt.binary, p.binary, "binary")
		})
	}
}

func TestModePredicates(t *testing.T) {
	assert.True(t, ModeRead.Readable())
	assert.False(t, ModeRead.Writable())
	assert.True(t, ModeAppend.Writable())
	assert.True(t, ModeAppend.Append())
	assert.True(t, ModeReadBinary.Binary())
	assert.False(t, ModeWrite.Binary())
	assert.False(t, Mode("bogus").Readable())
	assert.False(t, Mode("bogus").Writable())
}

func TestReadModeRejectsWriteBases(t *testing.T) {
	for _, m := range []Mode{"w", "a", "x", "wb", "ab+"} {
		_, err := readMode(m)
		assert.Error(t, err, "mode %q", m)
	}
	for _, m := range []Mode{"r", "r+", "rb", "rb+"} {
		_, err := readMode(m)
		assert.NoError(t, err, "mode %q", m)
	}
}

func TestWriteModeRejectsReadAndExclusive(t *testing.T) {
	for _, m := range []Mode{"r", "r+", "rb", "x", "xb"} {
		_, err := writeMode(m)
		assert.Error(t, err, "mode %q", m)
	}
	for _, m := range []Mode{"w", "w+", "wb", "a", "a+", "ab"} {
		_, err := writeMode(m)
		assert.NoError(t, err, "mode %q", m)
	}
}
