package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Transport errors.
	ErrorUnavailable = errors.New("store unavailable")

	// Auth errors (invalid or malformed key).
	ErrInvalidToken = errors.New("invalid token")

	// Share links that cannot be decoded.
	ErrInvalidLink = errors.New("invalid share link")
)
