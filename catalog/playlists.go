package catalog

import (
	"context"

	"musickit"
	"musickit/resource"
)

// Playlist relationship names for Request.Include.
const (
	PlaylistCurator = "curator"
	PlaylistLibrary = "library"
	PlaylistTracks  = "tracks"
)

// Playlist view names for Request.View.
const (
	PlaylistFeaturedArtists = "featured-artists"
	PlaylistMoreByCurator   = "more-by-curator"
)

// Playlist extended attribute names for Request.Extend.
const PlaylistTrackTypes = "trackTypes"

// Playlists returns a fetch builder for catalog playlists.
func Playlists() *musickit.Request[resource.Playlist] {
	return musickit.NewRequest[resource.Playlist](endpoint(resource.TypePlaylists))
}

// ChartPlaylists fetches the chart playlists of a storefront.
func ChartPlaylists(ctx context.Context, c *musickit.Client, storefront string) ([]resource.Playlist, error) {
	return Playlists().Filter("storefront-chart", storefront).List(ctx, c)
}
