package library

import (
	"musickit"
	"musickit/resource"
)

// Library artist relationship names for Request.Include.
const (
	ArtistAlbums  = "albums"
	ArtistCatalog = "catalog"
)

// Artists fetches artists from the user's library.
func Artists() *musickit.Request[resource.LibraryArtist] {
	return musickit.NewRequest[resource.LibraryArtist](endpoint(resource.TypeLibraryArtists, "artists"))
}
