package middleware

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingToken  = errors.New("Authorization header is required")
	ErrInvalidBearer = errors.New("Authorization header must start with 'Bearer '")
)

// ExtractBearerToken returns the token of the Authorization header.
// ErrMissingToken means the request is anonymous.
func ExtractBearerToken(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get("Authorization"))
	if value == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(value, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidBearer
	}

	return token, nil
}
