// Package common defines the error taxonomy, shared constants and small
// helpers used by both the client and the server of VaultKeeper. Callers
// should use errors.Is / errors.As to match these values.
package common

// Code is a machine-checkable error code carried to clients.
type Code string

const (
	// CodeBadRequest marks malformed or missing caller input, or an
	// integrity mismatch such as a wrong login code.
	CodeBadRequest Code = "BAD_REQUEST"

	// CodeInvalidSession marks an operation that needs an authenticated
	// session the request does not carry.
	CodeInvalidSession Code = "INVALID_SESSION"

	// CodeNotFound marks a referenced entity that does not exist.
	CodeNotFound Code = "NOT_FOUND"
)

// Error is a typed failure with a code and a human readable message.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so
// errors.Is(err, common.ErrorNotFound) holds for every not-found error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates an error with the given code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// BadRequest creates a CodeBadRequest error.
func BadRequest(message string) *Error {
	return NewError(CodeBadRequest, message)
}

// NotFound creates a CodeNotFound error.
func NotFound(message string) *Error {
	return NewError(CodeNotFound, message)
}

// InvalidSession creates a CodeInvalidSession error.
func InvalidSession() *Error {
	return NewError(CodeInvalidSession, "invalid session")
}
