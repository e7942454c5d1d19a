package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrNotInteger   = errors.New("value is not an integer")
	ErrNotObject    = errors.New("entry is not an object")
)

// Source points at a position in a config file. Line and Column are zero
// when the format does not expose positions.
type Source struct {
	File   string
	Line   int
	Column int
}

func (s Source) String() string {
	if s.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return s.File
}

// EntryError reports a malformed entry. The entry is left out of the table
// but loading continues.
type EntryError struct {
	Entry  string
	Field  string // empty when the entry as a whole is unusable
	Source Source
	Err    error
}

func (e *EntryError) Error() string {
	if e == nil {
		return "<nil>"
	}
	prefix := ""
	if e.Source.File != "" {
		prefix = e.Source.String() + ": "
	}
	if e.Field == "" {
		return fmt.Sprintf("%sentry %q: %v", prefix, e.Entry, e.Err)
	}
	return fmt.Sprintf("%sentry %q: field %q: %v", prefix, e.Entry, e.Field, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// SyntaxError is returned when the file cannot be read as a mapping of
// process names to objects. It is fatal for the run.
type SyntaxError struct {
	Source Source
	Err    error
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: failed to parse: %v", e.Source, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
