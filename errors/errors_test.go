package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ti-oluwa/simple-file-handler/errors"
)

func TestErrorMessage(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "file not found")
	assert.Equal(t, "NOT_FOUND: file not found", err.Error())

	wrapped := errors.Wrap(stderrors.New("boom"), errors.CodeUnknown, "operation failed")
	assert.Equal(t, "UNKNOWN: operation failed: boom", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.CodeNotFound, "ignored"))
	assert.Nil(t, errors.WrapWithContext(nil, errors.CodeNotFound, "ignored", nil))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := errors.Wrap(cause, errors.CodePermissionDenied, "cannot open")
	assert.True(t, stderrors.Is(err, cause))
}

func TestGetCode(t *testing.T) {
	err := errors.New(errors.CodeInvalidMode, "bad mode")
	assert.Equal(t, errors.CodeInvalidMode, errors.GetCode(err))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.True(t, errors.IsCode(err, errors.CodeInvalidMode))
	assert.False(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestGetCodeNested(t *testing.T) {
	inner := errors.New(errors.CodeTypeMismatch, "bytes for text mode")
	outer := errors.Wrap(inner, errors.CodeTypeMismatch, "write failed")
	assert.Equal(t, errors.CodeTypeMismatch, errors.GetCode(outer))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.CodeNotFound, "missing: %s", "/tmp/x")
	assert.True(t, stderrors.Is(err, errors.New(errors.CodeNotFound, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.CodeAlreadyExists, "")))
}

func TestFromOS(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Code
	}{
		{"not exist", fs.ErrNotExist, errors.CodeNotFound},
		{"permission", fs.ErrPermission, errors.CodePermissionDenied},
		{"exist", fs.ErrExist, errors.CodeAlreadyExists},
		{"other", stderrors.New("disk on fire"), errors.CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.FromOS(tt.err, "/some/path")
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
			assert.True(t, stderrors.Is(got, tt.err))
			assert.Equal(t, "/some/path", got.Context["path"])
		})
	}
}

func TestFromOSNil(t *testing.T) {
	assert.Nil(t, errors.FromOS(nil, "/some/path"))
}
