// Package apierrors defines client-visible API errors. Each error
// carries the HTTP status code to respond with and a short
// human-readable message; callers are expected to match on the status
// code, not the message text.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is an error that maps directly to an HTTP response.
type APIError struct {
	HTTPCode int
	Message  string
	cause    error
}

// Error returns the client-visible message.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for server-side logging. The
// cause is never echoed to the client.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewErrFieldRequired reports a missing required request field.
func NewErrFieldRequired(field string) *APIError {
	return &APIError{HTTPCode: http.StatusUnprocessableEntity, Message: fmt.Sprintf("%s is required", field)}
}

// NewErrPasswordsDoNotMatch reports a password/confirmation mismatch
// on registration.
func NewErrPasswordsDoNotMatch() *APIError {
	return &APIError{HTTPCode: http.StatusUnprocessableEntity, Message: "passwords do not match"}
}

// NewErrEmailIsTaken reports a registration attempt with an email that
// already belongs to a user.
func NewErrEmailIsTaken() *APIError {
	return &APIError{HTTPCode: http.StatusUnprocessableEntity, Message: "please use another e-mail"}
}

// NewErrUserNotFound reports a lookup for a user that does not exist.
func NewErrUserNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "user not found"}
}

// NewErrIncorrectPassword reports a failed password check on login.
func NewErrIncorrectPassword() *APIError {
	return &APIError{HTTPCode: http.StatusUnprocessableEntity, Message: "incorrect password"}
}

// NewErrMissingAuthorizationToken reports a protected request without
// a bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "access denied"}
}

// NewErrInvalidAuthorizationToken reports a bearer token that failed
// verification. Expired, malformed and wrongly signed tokens are not
// distinguished.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: "invalid token"}
}

// NewErrInternalServerError wraps an unexpected server fault behind a
// generic message.
func NewErrInternalServerError(cause error) *APIError {
	return &APIError{HTTPCode: http.StatusInternalServerError, Message: "internal server error", cause: cause}
}
