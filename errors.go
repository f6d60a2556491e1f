package caret

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is reported when the program is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// QueryError - The terminal dimensions could not be determined. This happens before raw mode is
// entered, so there is nothing to restore.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query terminal size: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IOError - A read or write against the terminal failed mid-session. The session cannot continue,
// but the terminal must still be restored before exiting.
type IOError struct {
	Op  string // "open", "read" or "write"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
