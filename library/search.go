package library

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"musickit"
	"musickit/resource"
)

// SearchType selects which library resource types a search covers.
type SearchType string

// Searchable library resource types.
const (
	SearchLibraryAlbums      SearchType = "library-albums"
	SearchLibraryArtists     SearchType = "library-artists"
	SearchLibraryMusicVideos SearchType = "library-music-videos"
	SearchLibraryPlaylists   SearchType = "library-playlists"
	SearchLibrarySongs       SearchType = "library-songs"
)

// SearchRequest is a library search builder.
type SearchRequest struct {
	localization string
	limit        int
	offset       int
	types        []SearchType
}

// Search creates a library search over the given resource types.
func Search(types ...SearchType) *SearchRequest {
	return &SearchRequest{types: types}
}

// Localization overrides the client's localization for this search.
func (s *SearchRequest) Localization(localization string) *SearchRequest {
	s.localization = localization
	return s
}

// Limit caps the number of results per type.
func (s *SearchRequest) Limit(n int) *SearchRequest {
	s.limit = n
	return s
}

// Offset sets the result offset.
func (s *SearchRequest) Offset(n int) *SearchRequest {
	s.offset = n
	return s
}

type searchEnvelope struct {
	Results resource.LibrarySearchResults `json:"results"`
}

// Do searches the user's library for term.
func (s *SearchRequest) Do(ctx context.Context, c *musickit.Client, term string) (*resource.LibrarySearchResults, error) {
	q := url.Values{}
	q.Set("term", term)
	names := make([]string, 0, len(s.types))
	for _, t := range s.types {
		names = append(names, string(t))
	}
	q.Set("types", strings.Join(names, ","))
	if s.localization != "" {
		q.Set("l", s.localization)
	}
	if s.limit > 0 {
		q.Set("limit", strconv.Itoa(s.limit))
	}
	if s.offset > 0 {
		q.Set("offset", strconv.Itoa(s.offset))
	}

	res, err := musickit.Get[searchEnvelope](ctx, c, "/v1/me/library/search", q)
	if err != nil {
		return nil, err
	}
	return &res.Results, nil
}
