package espn

import (
	"errors"
	"fmt"
)

// ErrUpstream matches every failure to obtain a usable scoreboard from ESPN:
// transport errors, non-200 responses and bodies that are not JSON.
var ErrUpstream = errors.New("espn upstream error")

// APIError captures a non-200 response.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("espn: unexpected status %d", e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *APIError) Is(target error) bool {
	return target == ErrUpstream
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
