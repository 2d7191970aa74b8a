// Package errors provides the error taxonomy for the file handler library.
// It extends Go's standard error handling with string error codes so callers
// can classify failures without matching on message text. Every OS-level
// error is translated into one of these codes at the operation boundary.
package errors

// Code identifies a specific failure condition. Codes are string-based for
// debuggability and natural JSON serialization.
type Code string

const (
	// Resource errors.

	// CodeNotFound indicates the handled file does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates a file already exists where one would be created.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeNotAFile indicates the path resolves to something other than a regular file.
	CodeNotAFile Code = "NOT_A_FILE"

	// Permission errors.

	// CodePermissionDenied indicates the filesystem refused the operation.
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// Usage errors.

	// CodeInvalidInput indicates an argument is invalid or malformed.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInvalidMode indicates the supplied open mode is unknown or
	// incompatible with the operation (e.g. a write mode passed to a read).
	CodeInvalidMode Code = "INVALID_MODE"

	// CodeTypeMismatch indicates the data shape does not match the mode's
	// text/binary setting.
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeUnsupportedType indicates the file's extension is outside the
	// supported set and the handle was not configured to allow any type.
	CodeUnsupportedType Code = "UNSUPPORTED_FILE_TYPE"

	// Format errors.

	// CodeEncodingFailed indicates serialization or charset encoding failed.
	CodeEncodingFailed Code = "ENCODING_FAILED"

	// CodeDecodeFailed indicates parsing or charset decoding failed.
	CodeDecodeFailed Code = "DECODE_FAILED"

	// Generic errors.

	// CodeUnknown indicates an unclassified failure.
	CodeUnknown Code = "UNKNOWN"
)
