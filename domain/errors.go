package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRepoName is returned when a repository name crossing the service
// boundary does not have the organization/project/repository shape.
var ErrInvalidRepoName = errors.New(
	"repository name must be in the form organization/project/repository",
)

// AuthenticationError indicates a missing or rejected credential.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Message
}

// APIError indicates a non-2xx response from the provider's API.
type APIError struct {
	Provider   ProviderType
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// ConnectivityError indicates a transport-level failure (DNS, timeout,
// connection reset) before any HTTP status was received.
type ConnectivityError struct {
	Provider ProviderType
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
