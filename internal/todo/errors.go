package todo

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is classification.
var (
	ErrSelection = errors.New("invalid selection")
	ErrParse     = errors.New("invalid number")
	ErrIO        = errors.New("i/o failure")

	ErrEmptyText = errors.New("empty text")
)

// SelectionError reports a user choice outside the valid set, e.g. an
// index outside 1..len or an unknown menu entry.
type SelectionError struct {
	Input string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %s", e.Input)
}

func (e *SelectionError) Is(target error) bool { return target == ErrSelection }

// ParseError reports non-numeric input where an index was expected.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IOError wraps a failure of the input stream or the file system.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// Recoverable reports whether err should be shown to the user and the menu
// loop continued. Only I/O failures are not recoverable.
func Recoverable(err error) bool {
	return err != nil && !errors.Is(err, ErrIO)
}
