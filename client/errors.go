package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
)

// errorBody mirrors the service's JSON error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// APIError is a non-2xx response from the service.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
	Field      string
}

func newAPIError(op string, status int, body errorBody) *APIError {
	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Operation: op, StatusCode: status, Message: msg, Field: body.Field}
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: status %d: %s (field %s)", e.Operation, e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Is maps status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}
