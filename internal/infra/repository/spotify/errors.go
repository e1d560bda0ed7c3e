package spotify

import (
	"errors"
	"fmt"
)

var ErrMissingCredentials = errors.New("missing spotify client credentials")

// APIError carries the status code and raw body of a failed Spotify call so
// callers can surface exactly what the upstream said.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify: status %d: %s", e.Status, e.Body)
}
