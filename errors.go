package musickit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"musickit/resource"
)

// Construction errors.
var (
	// ErrEmptyDeveloperToken is returned by NewClient when no developer
	// token is supplied.
	ErrEmptyDeveloperToken = errors.New("musickit: developer token is empty")
	// ErrInvalidStorefront is returned by NewClient when the storefront is
	// not a two-letter lowercase country code.
	ErrInvalidStorefront = errors.New("musickit: storefront must be a two-letter lowercase country code")
)

// APIError is a non-2xx response from the Apple Music API, carrying the
// decoded error envelope when the body contained one.
type APIError struct {
	StatusCode int
	Envelope   resource.ErrorEnvelope
}

func (e *APIError) Error() string {
	if len(e.Envelope.Errors) == 0 {
		return fmt.Sprintf("musickit: api error: HTTP %d", e.StatusCode)
	}
	titles := make([]string, 0, len(e.Envelope.Errors))
	for _, detail := range e.Envelope.Errors {
		titles = append(titles, detail.Title)
	}
	return fmt.Sprintf("musickit: api error: HTTP %d: %s", e.StatusCode, strings.Join(titles, "; "))
}

// IsNotFound reports whether err is an API error with status 404. One,
// Many and List already map 404 to an empty result; this helps callers
// using the lower-level verbs.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
