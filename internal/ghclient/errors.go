package ghclient

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"
)

// Configuration errors abort the run before any API call is made.
var (
	ErrMissingToken = errors.New("GitHub token not provided. Set the GITHUB_TOKEN environment variable")
	ErrMissingRepo  = errors.New("repository not specified. Use --repo owner/name or set GITHUB_REPOSITORY")
)

// ErrBadCredentials indicates the upstream host rejected the token.
var ErrBadCredentials = errors.New("GitHub rejected the provided credentials")

// ErrPermission indicates a write operation was denied. Once a write is
// denied the entire run cannot make progress, so this is always fatal.
var ErrPermission = errors.New("insufficient permissions to modify the repository")

// statusOf extracts the HTTP status code from a go-github error response,
// or 0 when the error carries none (network failure, context timeout).
func statusOf(err error) int {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	return 0
}

// wrapRead classifies an error from a read operation. Authentication
// failures are promoted to ErrBadCredentials; everything else surfaces as a
// wrapped transport error.
func wrapRead(op string, err error) error {
	if err == nil {
		return nil
	}
	if statusOf(err) == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, ErrBadCredentials)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// wrapWrite classifies an error from a mutating operation. A 403 means the
// token lacks write access and is escalated to ErrPermission.
func wrapWrite(op string, err error) error {
	if err == nil {
		return nil
	}
	switch statusOf(err) {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", op, ErrBadCredentials)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, ErrPermission)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsNotFound reports whether the error is a 404 from the upstream host.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}
