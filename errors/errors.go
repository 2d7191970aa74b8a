package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// Error is a structured error carrying a classification code, a message,
// an optional wrapped cause, and optional key/value context.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code. This lets
// callers use errors.Is with a bare New(code, "") sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// WrapWithContext wraps err with a code, message, and key/value context
// describing the failed operation.
func WrapWithContext(err error, code Code, message string, context map[string]any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err, Context: context}
}

// GetCode extracts the code from err. Errors that are not (and do not
// wrap) an *Error report CodeUnknown.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// FromOS classifies an OS-level filesystem error for the given path.
// The original error remains reachable through errors.Is/As.
func FromOS(err error, path string) *Error {
	if err == nil {
		return nil
	}
	code := CodeUnknown
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case stderrors.Is(err, fs.ErrPermission):
		code = CodePermissionDenied
	case stderrors.Is(err, fs.ErrExist):
		code = CodeAlreadyExists
	}
	return WrapWithContext(err, code, "filesystem operation failed", map[string]any{
		"path": path,
	})
}
