package aoc

import (
	"errors"
	"fmt"
)

// UsageError reports a bad invocation: an unknown day or part, or a bad flag.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef returns a *UsageError with a formatted message.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// IOError reports an input file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports puzzle input that does not have the expected shape.
type ParseError struct {
	Line int    // 1-based; 0 if the error is not tied to a single line
	Text string // offending input, if any
	Err  error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseErrorf returns a *ParseError for text with a formatted reason.
func ParseErrorf(text, format string, args ...any) *ParseError {
	return &ParseError{Text: text, Err: fmt.Errorf(format, args...)}
}

// AtLine attaches a 1-based line number to err. A *ParseError that
// already carries a line keeps it; any other error is wrapped in a
// *ParseError.
func AtLine(err error, line int) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.Line == 0 {
			pe.Line = line
		}
		return err
	}
	return &ParseError{Line: line, Err: err}
}
