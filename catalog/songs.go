package catalog

import (
	"context"
	"strings"

	"musickit"
	"musickit/resource"
)

// Song relationship names for Request.Include.
const (
	SongAlbums      = "albums"
	SongArtists     = "artists"
	SongComposers   = "composers"
	SongGenres      = "genres"
	SongLibrary     = "library"
	SongMusicVideos = "music-videos"
	SongStation     = "station"
)

// Song extended attribute names for Request.Extend.
const (
	SongArtistURL     = "artistUrl"
	SongAudioVariants = "audioVariants"
)

// Songs returns a fetch builder for catalog songs.
func Songs() *musickit.Request[resource.Song] {
	return musickit.NewRequest[resource.Song](endpoint(resource.TypeSongs))
}

// SongsByISRC fetches songs by International Standard Recording Code
// instead of catalog id.
func SongsByISRC(ctx context.Context, c *musickit.Client, isrcs []string) ([]resource.Song, error) {
	return Songs().Filter("isrc", strings.Join(isrcs, ",")).List(ctx, c)
}
