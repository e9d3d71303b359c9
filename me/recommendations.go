package me

import (
	"context"
	"iter"

	"musickit"
	"musickit/resource"
)

// Recommendation relationship names for Request.Include.
const (
	RecommendationContents = "contents"
)

// Recommendations fetches the user's personal recommendations.
func Recommendations() *musickit.Request[resource.PersonalRecommendation] {
	return musickit.NewRequest[resource.PersonalRecommendation](musickit.Endpoint{
		Object: resource.TypePersonalRecommendation,
		Path:   "/v1/me/recommendations",
	})
}

// DefaultRecommendations streams the user's default recommendation
// groups, paginating from offset in pages of limit.
func DefaultRecommendations(ctx context.Context, c *musickit.Client, limit, offset int) iter.Seq2[resource.PersonalRecommendation, error] {
	return musickit.Stream[resource.PersonalRecommendation](ctx, c, "/v1/me/recommendations", limitQuery(limit), offset)
}
