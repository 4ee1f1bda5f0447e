package decl

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	ErrEmptyListing    = errors.New("listing declares no types")
	ErrInvalidRecord   = errors.New("invalid record")
	ErrDuplicateMethod = errors.New("duplicate method declaration")
	ErrNoListingsFound = errors.New("no listing files found")
)

// Error provides structured error information for listing input.
// File names the offending listing ("<stdin>" for standard input),
// Names carries the offending identifiers.
type Error struct {
	File  string
	Names []string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Names) > 0 {
		return fmt.Sprintf("%s: %v: %s", e.File, e.Cause, strings.Join(e.Names, ", "))
	}
	return fmt.Sprintf("%s: %v", e.File, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func newError(file string, cause error, names ...string) *Error {
	return &Error{File: file, Names: names, Cause: cause}
}
