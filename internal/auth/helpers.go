package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// ExtractBearer extracts the token from an "Authorization: Bearer <token>" header.
func ExtractBearer(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("%w: expected 'Bearer <token>'", ErrInvalidToken)
	}

	return parts[1], nil
}
