package library

import (
	"musickit"
	"musickit/resource"
)

// Library album relationship names for Request.Include.
const (
	AlbumArtists = "artists"
	AlbumCatalog = "catalog"
	AlbumTracks  = "tracks"
)

// Albums fetches albums from the user's library.
func Albums() *musickit.Request[resource.LibraryAlbum] {
	return musickit.NewRequest[resource.LibraryAlbum](endpoint(resource.TypeLibraryAlbums, "albums"))
}
