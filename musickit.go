// Package musickit is a client for the Apple Music web API.
//
// A Client holds the developer token, the media user token and the default
// storefront. Typed fetch entry points live in the catalog, library and me
// subpackages and share the generic request machinery in this package.
package musickit

import (
	"net/http"
	"regexp"
)

const (
	defaultBaseURL      = "https://api.music.apple.com"
	defaultLocalization = "en-US"
)

// DefaultFetchLimit is the default number of entries requested per page.
const DefaultFetchLimit = 21

var storefrontPattern = regexp.MustCompile(`^[a-z]{2}$`)

// Client is an Apple Music API client. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	http           *http.Client
	baseURL        string
	developerToken string
	mediaUserToken string
	storefront     string
	localization   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Use this to set
// timeouts or a custom transport; the library enforces neither.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLocalization sets the default localization tag sent with every
// request ("en-US" if unset).
func WithLocalization(l string) Option {
	return func(c *Client) {
		c.localization = l
	}
}

// NewClient creates a client from the caller-supplied credentials.
//
// The developer token must be non-empty and the storefront must be a
// two-letter lowercase country code. The media user token may be empty;
// catalog endpoints work without one, /v1/me endpoints will be rejected
// by the API. No network call is made here.
func NewClient(developerToken, mediaUserToken, storefront string, opts ...Option) (*Client, error) {
	if developerToken == "" {
		return nil, ErrEmptyDeveloperToken
	}
	if !storefrontPattern.MatchString(storefront) {
		return nil, ErrInvalidStorefront
	}

	c := &Client{
		http:           &http.Client{},
		baseURL:        defaultBaseURL,
		developerToken: developerToken,
		mediaUserToken: mediaUserToken,
		storefront:     storefront,
		localization:   defaultLocalization,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Storefront returns the client's default storefront country code.
func (c *Client) Storefront() string {
	return c.storefront
}

// Localization returns the client's default localization tag.
func (c *Client) Localization() string {
	return c.localization
}
