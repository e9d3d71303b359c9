package catalog

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"musickit"
	"musickit/resource"
)

// SearchType selects which resource types a catalog search covers.
type SearchType string

// Searchable catalog resource types.
const (
	SearchActivities    SearchType = "activities"
	SearchAlbums        SearchType = "albums"
	SearchAppleCurators SearchType = "apple-curators"
	SearchCurators      SearchType = "curators"
	SearchArtists       SearchType = "artists"
	SearchMusicVideos   SearchType = "music-videos"
	SearchPlaylists     SearchType = "playlists"
	SearchRecordLabels  SearchType = "record-labels"
	SearchSongs         SearchType = "songs"
	SearchStations      SearchType = "stations"
)

// SuggestionKind selects the kinds of search suggestions to return.
type SuggestionKind string

// Suggestion kinds.
const (
	SuggestTerms      SuggestionKind = "terms"
	SuggestTopResults SuggestionKind = "topResults"
)

// SearchRequest is a catalog search builder.
type SearchRequest struct {
	storefront   string
	localization string
	limit        int
	offset       int
	types        []SearchType
}

// Search creates a catalog search over the given resource types.
func Search(types ...SearchType) *SearchRequest {
	return &SearchRequest{types: types}
}

// Storefront overrides the client's storefront for this search.
func (s *SearchRequest) Storefront(storefront string) *SearchRequest {
	s.storefront = storefront
	return s
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

type resultsEnvelope[T any] struct {
	Results T `json:"results"`
}

type hintResults struct {
	Terms []string `json:"terms"`
}

type suggestionResults struct {
	Suggestions []resource.SearchSuggestion `json:"suggestions"`
}

// Do searches the catalog for term.
func (s *SearchRequest) Do(ctx context.Context, c *musickit.Client, term string) (*resource.SearchResults, error) {
	q := s.query(term)
	if len(s.types) > 0 {
		q.Set("types", joinTypes(s.types))
	}
	res, err := musickit.Get[resultsEnvelope[resource.SearchResults]](ctx, c, s.path(c), q)
	if err != nil {
		return nil, err
	}
	return &res.Results, nil
}

// Hints fetches search completion hints for term.
func (s *SearchRequest) Hints(ctx context.Context, c *musickit.Client, term string) ([]string, error) {
	res, err := musickit.Get[resultsEnvelope[hintResults]](ctx, c, s.path(c)+"/hints", s.query(term))
	if err != nil {
		return nil, err
	}
	return res.Results.Terms, nil
}

// Suggestions fetches search suggestions of the given kinds for term.
func (s *SearchRequest) Suggestions(ctx context.Context, c *musickit.Client, term string, kinds ...SuggestionKind) ([]resource.SearchSuggestion, error) {
	q := s.query(term)
	if len(s.types) > 0 {
		q.Set("types", joinTypes(s.types))
	}
	kindNames := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		kindNames = append(kindNames, string(kind))
	}
	q.Set("kinds", strings.Join(kindNames, ","))
	res, err := musickit.Get[resultsEnvelope[suggestionResults]](ctx, c, s.path(c)+"/suggestions", q)
	if err != nil {
		return nil, err
	}
	return res.Results.Suggestions, nil
}

func (s *SearchRequest) path(c *musickit.Client) string {
	storefront := s.storefront
	if storefront == "" {
		storefront = c.Storefront()
	}
	return "/v1/catalog/" + storefront + "/search"
}

func (s *SearchRequest) query(term string) url.Values {
	q := url.Values{}
	q.Set("term", term)
	if s.localization != "" {
		q.Set("l", s.localization)
	}
	if s.limit > 0 {
		q.Set("limit", strconv.Itoa(s.limit))
	}
	if s.offset > 0 {
		q.Set("offset", strconv.Itoa(s.offset))
	}
	return q
}

func joinTypes(types []SearchType) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ",")
}
