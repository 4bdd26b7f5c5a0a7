package reminders

import (
	"errors"
	"fmt"
)

// Kind classifies every failure this layer can report. The kind name is
// always part of the user-visible message.
type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindDate               Kind = "DateError"
	KindPermission         Kind = "PermissionError"
	KindCollectionNotFound Kind = "CollectionNotFoundError"
	KindExecution          Kind = "ExecutionError"
	KindParse              Kind = "ParseError"
)

// Error is the single error type crossing the backend boundary.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of err. Anything unrecognized coerces to
// KindExecution so no failure escapes the taxonomy.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindExecution
}
