package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("user already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotLoggedIn  = errors.New("not logged in")
)
