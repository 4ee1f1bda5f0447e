package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors. Every build failure wraps one of these.
var (
	ErrUnknownType      = errors.New("unknown type reference")
	ErrInheritanceCycle = errors.New("inheritance cycle")
	ErrDuplicateType    = errors.New("duplicate type declaration")
	ErrDuplicateMethod  = errors.New("duplicate method declaration")
	ErrInvalidKind      = errors.New("invalid type kind")
	ErrInvalidBehavior  = errors.New("invalid body-behavior tag")
)

// BuildError provides structured error information for model
// construction. Names carries the offending identifiers (for a cycle,
// the cycle path in order).
type BuildError struct {
	Op       string
	TypeName string
	Names    []string
	Cause    error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.TypeName != "" {
		if len(e.Names) > 0 {
			return fmt.Sprintf("%s %s: %v: %s", e.Op, e.TypeName, e.Cause, strings.Join(e.Names, ", "))
		}
		return fmt.Sprintf("%s %s: %v", e.Op, e.TypeName, e.Cause)
	}
	if len(e.Names) > 0 {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Cause, strings.Join(e.Names, " -> "))
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *BuildError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func duplicateTypeError(name string) error {
	return &BuildError{Op: "build", TypeName: name, Cause: ErrDuplicateType}
}

func duplicateMethodError(owner, signature string) error {
	return &BuildError{Op: "build", TypeName: owner, Names: []string{signature}, Cause: ErrDuplicateMethod}
}

func unknownTypeError(owner string, names ...string) error {
	return &BuildError{Op: "build", TypeName: owner, Names: names, Cause: ErrUnknownType}
}

func cycleError(path []string) error {
	return &BuildError{Op: "build", Names: path, Cause: ErrInheritanceCycle}
}

// IsMalformed reports whether the error indicates malformed input, as
// opposed to an environmental failure.
func IsMalformed(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}
