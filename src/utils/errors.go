package utils

import "fmt"

// Domain error taxonomy. Handlers translate these to HTTP status codes;
// everything below the API layer deals in these types only.

// ValidationError signals malformed or non-positive input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError signals a create on an already existing key.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

func NewDuplicateError(format string, args ...interface{}) error {
	return &DuplicateError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals an operation on a nonexistent key.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UnauthorizedError signals a request with no resolved user identity.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(format string, args ...interface{}) error {
	return &UnauthorizedError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamUnavailableError signals a quote source failure. The valuation
// engine absorbs it per holding; it only reaches the caller when an
// operation cannot proceed at all without the upstream.
type UpstreamUnavailableError struct {
	Message string
	Cause   error
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Cause
}

func NewUpstreamUnavailableError(cause error, format string, args ...interface{}) error {
	return &UpstreamUnavailableError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
