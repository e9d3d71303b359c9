// Package me binds the personalized sections of the Apple Music API:
// ratings, listening history and recommendations. All of it requires a
// client configured with a media user token.
package me

import (
	"context"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"musickit"
	"musickit/resource"
)

// HistoryTrackType narrows recently played tracks to a resource kind.
type HistoryTrackType string

// Track kinds recently played tracks can return.
const (
	HistorySongs              HistoryTrackType = "songs"
	HistoryMusicVideos        HistoryTrackType = "music-videos"
	HistoryLibrarySongs       HistoryTrackType = "library-songs"
	HistoryLibraryMusicVideos HistoryTrackType = "library-music-videos"
)

// HeavyRotation streams the resources the user has had in heavy
// rotation, paginating from offset in pages of limit.
func HeavyRotation(ctx context.Context, c *musickit.Client, limit, offset int) iter.Seq2[resource.Resource, error] {
	return musickit.Stream[resource.Resource](ctx, c, "/v1/me/history/heavy-rotation", limitQuery(limit), offset)
}

// RecentlyPlayed streams the resources the user played recently.
func RecentlyPlayed(ctx context.Context, c *musickit.Client, limit, offset int) iter.Seq2[resource.Resource, error] {
	return musickit.Stream[resource.Resource](ctx, c, "/v1/me/recent/played", limitQuery(limit), offset)
}

// RecentlyPlayedTracks streams the tracks the user played recently,
// narrowed to the given track kinds.
func RecentlyPlayedTracks(ctx context.Context, c *musickit.Client, types []HistoryTrackType, limit, offset int) iter.Seq2[resource.Resource, error] {
	q := limitQuery(limit)
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	q.Set("types", strings.Join(names, ","))
	return musickit.Stream[resource.Resource](ctx, c, "/v1/me/recent/played/tracks", q, offset)
}

// RecentlyPlayedStations streams the radio stations the user played
// recently.
func RecentlyPlayedStations(ctx context.Context, c *musickit.Client, limit, offset int) iter.Seq2[resource.Station, error] {
	return musickit.Stream[resource.Station](ctx, c, "/v1/me/recent/radio-stations", limitQuery(limit), offset)
}

// RecentlyAdded streams the resources most recently added to the
// user's library.
func RecentlyAdded(ctx context.Context, c *musickit.Client, limit, offset int) iter.Seq2[resource.Resource, error] {
	return musickit.Stream[resource.Resource](ctx, c, "/v1/me/library/recently-added", limitQuery(limit), offset)
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
