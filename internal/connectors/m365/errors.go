package m365

import (
	"errors"
	"net/http"
)

// Error types for Microsoft Graph API responses. These propagate to the caller
// unmodified; this layer adds no retry or translation on top of them.
var (
	// ErrUnauthorised indicates the client credentials are invalid or the
	// token was rejected.
	ErrUnauthorised = errors.New("m365: unauthorised")

	// ErrForbidden indicates the application lacks permission for the
	// requested resource.
	ErrForbidden = errors.New("m365: forbidden")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("m365: not found")

	// ErrRateLimited indicates the request was throttled by Microsoft Graph.
	ErrRateLimited = errors.New("m365: rate limited")

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = errors.New("m365: bad request")

	// ErrServerError indicates a server-side error from Microsoft Graph.
	ErrServerError = errors.New("m365: server error")
)

// WrapError converts an HTTP status code to an appropriate error.
func WrapError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorised
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		if statusCode >= 500 {
			return ErrServerError
		}
		return nil
	}
}

// IsNotFound checks if the status code indicates a missing resource.
func IsNotFound(statusCode int) bool {
	return statusCode == http.StatusNotFound
}
