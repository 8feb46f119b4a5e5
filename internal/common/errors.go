// Package common defines shared constants, sentinel errors and small helpers
// used across the gateway server, its façades and the client. Callers should
// use errors.Is to match the error values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInvalidInput = errors.New("invalid input")
	ErrorConflict     = errors.New("conflict")

	// Auth errors (missing or malformed bearer credential).
	ErrInvalidToken = errors.New("invalid token")
)
