// Package catalog exposes typed fetch entry points for Apple Music
// catalog resources. Each entry point returns a musickit.Request builder;
// call One, Many, List or All on it with a client.
package catalog

import "musickit"

func endpoint(object string) musickit.Endpoint {
	return musickit.Endpoint{
		Object: object,
		Path:   "/v1/catalog/{storefront}/" + object,
	}
}
