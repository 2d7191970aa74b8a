package filehandler

import (
	"os"
	"strings"

	errs "github.com/ti-oluwa/simple-file-handler/errors"
)

// Mode is an open-mode string in the familiar r/w/a/x notation. A "b"
// marks binary intent and a "+" adds the opposite direction, e.g. "rb",
// "a+", "wb+". Mode strings are case-insensitive.
type Mode string

// Common modes.
const (
	ModeRead         Mode = "r"
	ModeReadBinary   Mode = "rb"
	ModeWrite        Mode = "w"
	ModeWriteBinary  Mode = "wb"
	ModeAppend       Mode = "a"
	ModeAppendBinary Mode = "ab"
	ModeCreate       Mode = "x"
	ModeCreateBinary Mode = "xb"
)

// mode is the parsed form of a Mode string.
type mode struct {
	base   byte // 'r', 'w', 'a' or 'x'
	binary bool
	plus   bool
}

// parseMode validates and parses a mode string.
func parseMode(m Mode) (mode, error) {
	s := strings.ToLower(string(m))
	if s == "" {
		return mode{}, errs.New(errs.CodeInvalidMode, "empty mode")
	}

	var p mode
	switch s[0] {
	case 'r', 'w', 'a', 'x':
		p.base = s[0]
	default:
		return mode{}, errs.Newf(errs.CodeInvalidMode, "invalid mode %q", m)
	}
	for _, c := range s[1:] {
		switch c {
		case 'b':
			if p.binary {
				return mode{}, errs.Newf(errs.CodeInvalidMode, "invalid mode %q", m)
			}
			p.binary = true
		case '+':
			if p.plus {
				return mode{}, errs.Newf(errs.CodeInvalidMode, "invalid mode %q", m)
			}
			p.plus = true
		default:
			return mode{}, errs.Newf(errs.CodeInvalidMode, "invalid mode %q", m)
		}
	}
	return p, nil
}

// readable reports whether the mode permits reading.
func (p mode) readable() bool {
	return p.base == 'r' || p.plus
}

// writable reports whether the mode permits writing.
func (p mode) writable() bool {
	return p.base != 'r' || p.plus
}

// flag converts the mode to os.OpenFile flags.
func (p mode) flag() int {
	var f int
	switch {
	case p.plus:
		f = os.O_RDWR
	case p.base == 'r':
		f = os.O_RDONLY
	default:
		f = os.O_WRONLY
	}
	switch p.base {
	case 'w':
		f |= os.O_CREATE | os.O_TRUNC
	case 'a':
		f |= os.O_CREATE | os.O_APPEND
	case 'x':
		f |= os.O_CREATE | os.O_EXCL
	}
	return f
}

// Readable reports whether the mode permits reading at all.
func (m Mode) Readable() bool {
	p, err := parseMode(m)
	return err == nil && p.readable()
}

// Writable reports whether the mode permits writing at all.
func (m Mode) Writable() bool {
	p, err := parseMode(m)
	return err == nil && p.writable()
}

// Binary reports whether the mode carries binary intent.
func (m Mode) Binary() bool {
	p, err := parseMode(m)
	return err == nil && p.binary
}

// Append reports whether the mode appends to existing content.
func (m Mode) Append() bool {
	p, err := parseMode(m)
	return err == nil && p.base == 'a'
}

// readMode validates that m is a read mode (base 'r'). The result
// carries CodeInvalidMode otherwise.
func readMode(m Mode) (mode, error) {
	p, err := parseMode(m)
	if err != nil {
		return mode{}, err
	}
	if p.base != 'r' {
		return mode{}, errs.Newf(errs.CodeInvalidMode, "invalid read mode %q", m)
	}
	return p, nil
}

// writeMode validates that m is a write mode (base 'w' or 'a'). Exclusive
// creation ('x') and read modes are rejected with CodeInvalidMode.
func writeMode(m Mode) (mode, error) {
	p, err := parseMode(m)
	if err != nil {
		return mode{}, err
	}
	if p.base != 'w' && p.base != 'a' {
		return mode{}, errs.Newf(errs.CodeInvalidMode, "invalid write mode %q", m)
	}
	return p, nil
}
