package catalog

import (
	"musickit"
	"musickit/resource"
)

// Artist relationship names for Request.Include.
const (
	ArtistAlbums      = "albums"
	ArtistGenres      = "genres"
	ArtistMusicVideos = "music-videos"
	ArtistPlaylists   = "playlists"
	ArtistStation     = "station"
)

// Artist view names for Request.View.
const (
	ArtistAppearsOnAlbums     = "appears-on-albums"
	ArtistCompilationAlbums   = "compilation-albums"
	ArtistFeaturedAlbums      = "featured-albums"
	ArtistFeaturedMusicVideos = "featured-music-videos"
	ArtistFeaturedPlaylists   = "featured-playlists"
	ArtistFullAlbums          = "full-albums"
	ArtistLatestRelease       = "latest-release"
	ArtistLiveAlbums          = "live-albums"
	ArtistSimilarArtists      = "similar-artists"
	ArtistSingles             = "singles"
	ArtistTopMusicVideos      = "top-music-videos"
	ArtistTopSongs            = "top-songs"
)

// Artists returns a fetch builder for catalog artists.
func Artists() *musickit.Request[resource.Artist] {
	return musickit.NewRequest[resource.Artist](endpoint(resource.TypeArtists))
}
