package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines a custom error structure that includes an HTTP status code and message
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

// Implement the Error() method to satisfy the error interface
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError instance with a custom status code and message
func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// ToHTTPError maps the domain error taxonomy onto HTTP status codes.
// Anything unrecognized becomes a 500.
func ToHTTPError(err error) *HTTPError {
	var (
		httpErr      *HTTPError
		validation   *ValidationError
		duplicate    *DuplicateError
		notFound     *NotFoundError
		unauthorized *UnauthorizedError
		upstream     *UpstreamUnavailableError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &validation):
		return &HTTPError{Code: http.StatusBadRequest, Message: validation.Message}
	case errors.As(err, &duplicate):
		return &HTTPError{Code: http.StatusBadRequest, Message: duplicate.Message}
	case errors.As(err, &notFound):
		return &HTTPError{Code: http.StatusNotFound, Message: notFound.Message}
	case errors.As(err, &unauthorized):
		return &HTTPError{Code: http.StatusUnauthorized, Message: unauthorized.Message}
	case errors.As(err, &upstream):
		return &HTTPError{Code: http.StatusBadGateway, Message: upstream.Message}
	default:
		return &HTTPError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
	}
}

// WriteError is a helper function to send the error response as JSON
func WriteError(w http.ResponseWriter, err error) {
	httpErr := ToHTTPError(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	fmt.Fprintf(w, `{"error": %q}`, httpErr.Message)
}
