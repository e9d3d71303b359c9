package library

import (
	"musickit"
	"musickit/resource"
)

// Library music video relationship names for Request.Include.
const (
	MusicVideoAlbums  = "albums"
	MusicVideoArtists = "artists"
	MusicVideoCatalog = "catalog"
)

// MusicVideos fetches music videos from the user's library.
func MusicVideos() *musickit.Request[resource.LibraryMusicVideo] {
	return musickit.NewRequest[resource.LibraryMusicVideo](endpoint(resource.TypeLibraryMusicVideos, "music-videos"))
}
