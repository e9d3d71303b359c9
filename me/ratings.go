package me

import (
	"context"
	"net/url"

	"musickit"
	"musickit/resource"
)

// RatingType names the kind of resource a rating applies to.
type RatingType string

// Rateable resource kinds.
const (
	RateAlbums             RatingType = "albums"
	RateMusicVideos        RatingType = "music-videos"
	RatePlaylists          RatingType = "playlists"
	RateSongs              RatingType = "songs"
	RateStations           RatingType = "stations"
	RateLibraryAlbums      RatingType = "library-albums"
	RateLibraryMusicVideos RatingType = "library-music-videos"
	RateLibraryPlaylists   RatingType = "library-playlists"
	RateLibrarySongs       RatingType = "library-songs"
)

// Rating relationship names for Request.Include.
const (
	RatingContent = "content"
)

// Ratings fetches the user's ratings for resources of the given kind.
func Ratings(typ RatingType) *musickit.Request[resource.Rating] {
	return musickit.NewRequest[resource.Rating](musickit.Endpoint{
		Object: resource.TypeRatings,
		Path:   "/v1/me/ratings/" + string(typ),
	})
}

type ratingPayload struct {
	Type       string           `json:"type"`
	Attributes ratingAttributes `json:"attributes"`
}

type ratingAttributes struct {
	Value int `json:"value"`
}

// AddRating loves (value 1) or dislikes (value -1) the resource with
// the given id and returns the stored rating.
func AddRating(ctx context.Context, c *musickit.Client, typ RatingType, id string, value int) (*resource.Rating, error) {
	payload := ratingPayload{Type: "rating", Attributes: ratingAttributes{Value: value}}
	res, err := musickit.PutJSON[resource.Response[resource.Rating]](ctx, c, "/v1/me/ratings/"+string(typ)+"/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, nil
	}
	return &res.Data[0], nil
}

// RemoveRating deletes the user's rating for the resource with the
// given id.
func RemoveRating(ctx context.Context, c *musickit.Client, typ RatingType, id string) error {
	return musickit.Delete(ctx, c, "/v1/me/ratings/"+string(typ)+"/"+url.PathEscape(id), nil)
}
