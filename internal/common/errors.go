package common

import "errors"

var (
	// Repository-level errors. Repositories return ErrorNotFound when a
	// record does not exist.
	ErrorNotFound = NotFound("not found")

	// Service-level sentinels, match with errors.Is.
	ErrBadRequest     = BadRequest("bad request")
	ErrInvalidSession = InvalidSession()

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)
