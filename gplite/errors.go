package gplite

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind distinguishes the root engine error's sub-kinds.
type ErrorKind int

const (
	// KindConfig marks a malformed Config: out-of-range numerics, elite
	// exceeding popSize, NaN or negative budgets.
	KindConfig ErrorKind = iota
	// KindProblem marks a Problem missing a required operator.
	KindProblem
	// KindEvolution is reserved for internal invariant breaches not
	// currently raised by the loop.
	KindEvolution
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "ConfigError"
	case KindProblem:
		return "ProblemError"
	case KindEvolution:
		return "EvolutionError"
	default:
		return "UnknownError"
	}
}

// Error is the root engine error. ConfigError, ProblemError, and
// EvolutionError are all this same concrete type distinguished by Kind —
// construction-time validation never recovers from it, it always
// propagates synchronously from New.
type Error struct {
	kind  ErrorKind
	cause error
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, cause: pkgerrors.New(msg)}
}

func newErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{kind: kind, cause: pkgerrors.Errorf(format, args...)}
}

// Kind reports which of the three sub-kinds this error is.
func (e *Error) Kind() ErrorKind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	return e.kind.String() + ": " + e.cause.Error()
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == KindConfig
}

// IsProblemError reports whether err is a ProblemError.
func IsProblemError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == KindProblem
}
