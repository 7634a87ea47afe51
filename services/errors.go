package services

import "errors"

// Kind classifies a service failure so transport layers can map it to a status
// code without inspecting message text.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindInvalidInput
	KindPreconditionFailed
	KindUnauthorized
)

// Error is the failure type returned by every service operation
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ErrKind extracts the Kind from err, or 0 when err is not a service Error
func ErrKind(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
