package greader

import (
	"errors"
	"fmt"
)

// Common errors returned by the GReader client.
var (
	// ErrInvalidArgument indicates a locally detected precondition failure.
	// Requests failing with it never reached the network.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoAuthToken indicates an operation that requires authentication
	// was attempted before an auth token was set or obtained.
	ErrNoAuthToken = errors.New("no auth token set")
)

// APIError represents a non-success response from the GReader server.
// Body carries the raw response text for caller inspection.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("greader API error: status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}
