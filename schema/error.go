package schema

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthExpired is matched by a 401 HTTPError once the refresh path is exhausted.
	ErrAuthExpired      = errors.New("authentication expired")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrMissingProductID = errors.New("product id is required")
)

// HTTPError represents non 2xx response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, e.Message)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrAuthExpired && e.StatusCode == http.StatusUnauthorized
}

// NetworkError represents a failed round trip
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedError represents an unexpected response body shape
type MalformedError struct {
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTPError
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewMalformedError creates a MalformedError
func NewMalformedError(reason string, err error) *MalformedError {
	return &MalformedError{Reason: reason, Err: err}
}
