package catalog

import (
	"context"
	"iter"

	"musickit"
	"musickit/resource"
)

// Genre extended attribute name for Request.Extend.
const GenreChartLabel = "chartLabel"

// Genres returns a fetch builder for catalog genres.
func Genres() *musickit.Request[resource.Genre] {
	return musickit.NewRequest[resource.Genre](endpoint(resource.TypeGenres))
}

// TopChartGenres iterates every genre of the current top charts.
func TopChartGenres(ctx context.Context, c *musickit.Client, limit, offset int) iter.Seq2[resource.Genre, error] {
	return Genres().Limit(limit).Offset(offset).All(ctx, c)
}
