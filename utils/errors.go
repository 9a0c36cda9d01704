package utils

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned by line readers when standard input is exhausted
// before a line could be read.
var ErrEndOfInput = errors.New("end of input")

// ParseError reports user input that cannot be interpreted. It is always
// recoverable: callers print a short message and re-prompt or fall back to a
// neutral default.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// ParseErrorf builds a *ParseError for input with a formatted reason.
func ParseErrorf(input, format string, args ...any) error {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// ReadError wraps a failure of the underlying line read. It terminates the
// program.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	if e == nil || e.Err == nil {
		return "read line"
	}
	return "read line: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// IsParseError reports whether err carries a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsReadError reports whether err carries a *ReadError.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}
