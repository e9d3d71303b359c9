package musickit

import (
	"context"
	"strings"

	"musickit/resource"
)

// Storefronts returns a fetch builder for storefront lookup. One takes a
// two-letter country code, Many a list of codes, All iterates every
// storefront the API knows about.
func Storefronts() *Request[resource.Storefront] {
	return NewRequest[resource.Storefront](Endpoint{
		Object: "storefronts",
		Path:   "/v1/storefronts",
	})
}

// StorefrontsByCountry fetches the storefronts for the given country
// codes, lowercasing them the way the API expects.
func StorefrontsByCountry(ctx context.Context, c *Client, countries []string) ([]resource.Storefront, error) {
	ids := make([]string, 0, len(countries))
	for _, country := range countries {
		ids = append(ids, strings.ToLower(country))
	}
	return Storefronts().Many(ctx, c, ids)
}
