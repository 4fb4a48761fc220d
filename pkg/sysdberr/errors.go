// Package sysdberr is the error taxonomy shared by every core component
// (store, analyzer, executor): a small closed set of kinds callers can
// switch on, plus an optional wrapped cause for diagnostics.
package sysdberr

import "errors"

// Kind classifies a SysDB error into a small closed set callers can switch on.
type Kind int

const (
	// ArgumentError indicates the caller's contract was violated (bad name,
	// missing parent coordinates, malformed AST shape).
	ArgumentError Kind = iota
	// NotFound indicates a FETCH of a missing path.
	NotFound
	// TypeError indicates the analyzer rejected a query.
	TypeError
	// StaleUpdate is writer-path informational: a write lost the
	// last-writer-wins race.
	StaleUpdate
	// Resource indicates an allocation or regex-compilation failure.
	Resource
	// Internal indicates an invariant violation that should be unreachable.
	Internal
)

func (k Kind) String() string {
	switch k {
	case ArgumentError:
		return "ArgumentError"
	case NotFound:
		return "NotFound"
	case TypeError:
		return "TypeError"
	case StaleUpdate:
		return "StaleUpdate"
	case Resource:
		return "Resource"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is a typed SysDB error with an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap returns an *Error that wraps err.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
