package catalog

import (
	"context"
	"strings"

	"musickit"
	"musickit/resource"
)

// Music video relationship names for Request.Include.
const (
	MusicVideoAlbums  = "albums"
	MusicVideoArtists = "artists"
	MusicVideoGenres  = "genres"
	MusicVideoLibrary = "library"
	MusicVideoSongs   = "songs"
)

// Music video view names for Request.View.
const (
	MusicVideoMoreByArtist = "more-by-artist"
	MusicVideoMoreInGenre  = "more-in-genre"
)

// MusicVideos returns a fetch builder for catalog music videos.
func MusicVideos() *musickit.Request[resource.MusicVideo] {
	return musickit.NewRequest[resource.MusicVideo](endpoint(resource.TypeMusicVideos))
}

// MusicVideosByISRC fetches music videos by International Standard
// Recording Code instead of catalog id.
func MusicVideosByISRC(ctx context.Context, c *musickit.Client, isrcs []string) ([]resource.MusicVideo, error) {
	return MusicVideos().Filter("isrc", strings.Join(isrcs, ",")).List(ctx, c)
}
