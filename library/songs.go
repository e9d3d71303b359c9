package library

import (
	"musickit"
	"musickit/resource"
)

// Library song relationship names for Request.Include.
const (
	SongAlbums  = "albums"
	SongArtists = "artists"
	SongCatalog = "catalog"
)

// Songs fetches songs from the user's library.
func Songs() *musickit.Request[resource.LibrarySong] {
	return musickit.NewRequest[resource.LibrarySong](endpoint(resource.TypeLibrarySongs, "songs"))
}
