package auth

import "errors"

var (
	// ErrMissingToken is returned when the request carries no bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned when the token is malformed, expired or signed with another key.
	ErrInvalidToken = errors.New("invalid token")
)
