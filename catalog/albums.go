package catalog

import (
	"context"
	"strings"

	"musickit"
	"musickit/resource"
)

// Album relationship names for Request.Include.
const (
	AlbumArtists      = "artists"
	AlbumGenres       = "genres"
	AlbumTracks       = "tracks"
	AlbumLibrary      = "library"
	AlbumRecordLabels = "record-labels"
)

// Album view names for Request.View.
const (
	AlbumAppearsOn     = "appears-on"
	AlbumOtherVersions = "other-versions"
	AlbumRelatedAlbums = "related-albums"
	AlbumRelatedVideos = "related-videos"
)

// Album extended attribute names for Request.Extend.
const (
	AlbumArtistURL     = "artistUrl"
	AlbumAudioVariants = "audioVariants"
)

// Albums returns a fetch builder for catalog albums.
func Albums() *musickit.Request[resource.Album] {
	return musickit.NewRequest[resource.Album](endpoint(resource.TypeAlbums))
}

// AlbumsByUPC fetches albums by Universal Product Code instead of
// catalog id.
func AlbumsByUPC(ctx context.Context, c *musickit.Client, upcs []string) ([]resource.Album, error) {
	return Albums().Filter("upc", strings.Join(upcs, ",")).List(ctx, c)
}
