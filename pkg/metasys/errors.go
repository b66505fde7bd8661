package metasys

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int    `json:"status"  yaml:"status"`
	Message    string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("api error: %s (status: %d)", msg, e.StatusCode)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrHostRequired       = errors.New("host is required")
	ErrNotAuthenticated   = errors.New("not authenticated: call Login first")
	ErrInvalidReference   = errors.New("invalid item reference")
	ErrTokenEmpty         = errors.New("login response contained no access token")
	ErrStaticTokenExpired = errors.New("static access token rejected by server")
)

// IsNotFound checks if the error is a not-found response from the server.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication rejection from the
// server.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// LoginFailureReason classifies a failed login exchange.
type LoginFailureReason string

const (
	// LoginFailureConnection covers refused, reset, or proxied-away connections.
	LoginFailureConnection LoginFailureReason = "connection"

	// LoginFailureUnknownHost covers hosts that do not resolve.
	LoginFailureUnknownHost LoginFailureReason = "unknown-host"

	// LoginFailureBadCredentials covers 401/403 from the login endpoint.
	LoginFailureBadCredentials LoginFailureReason = "bad-credentials"

	// LoginFailureUntrustedCertificate covers TLS verification failures,
	// typically a self-signed certificate the caller has not trusted.
	LoginFailureUntrustedCertificate LoginFailureReason = "untrusted-certificate"

	// LoginFailureUnclassified covers everything else.
	LoginFailureUnclassified LoginFailureReason = "unclassified"
)

// LoginFailure is the diagnostic for a failed login exchange. Login never
// surfaces the underlying error to the caller directly; it reports success
// as a boolean and carries the classification here.
type LoginFailure struct {
	Reason  LoginFailureReason
	Message string
	Err     error
}

// String returns the human-readable diagnostic.
func (f *LoginFailure) String() string {
	return fmt.Sprintf("login failed (%s): %s", f.Reason, f.Message)
}

// Unwrap exposes the underlying error for inspection with errors.Is/As.
func (f *LoginFailure) Unwrap() error {
	return f.Err
}
