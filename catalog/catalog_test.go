package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"musickit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *musickit.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := musickit.NewClient("dev-token", "", "us", musickit.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestEndpointPaths(t *testing.T) {
	tests := []struct {
		name     string
		fetch    func(ctx context.Context, c *musickit.Client) error
		wantPath string
	}{
		{
			name: "albums",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Albums().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/albums/1",
		},
		{
			name: "artists",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Artists().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/artists/1",
		},
		{
			name: "songs",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Songs().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/songs/1",
		},
		{
			name: "playlists",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Playlists().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/playlists/1",
		},
		{
			name: "music videos",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := MusicVideos().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/music-videos/1",
		},
		{
			name: "stations",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Stations().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/stations/1",
		},
		{
			name: "curators",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Curators().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/curators/1",
		},
		{
			name: "apple curators",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := AppleCurators().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/apple-curators/1",
		},
		{
			name: "activities",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Activities().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/activities/1",
		},
		{
			name: "record labels",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := RecordLabels().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/record-labels/1",
		},
		{
			name: "genres",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Genres().One(ctx, c, "1")
				return err
			},
			wantPath: "/v1/catalog/us/genres/1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				fmt.Fprint(w, `{"data":[]}`)
			})
			if err := tt.fetch(context.Background(), c); err != nil {
				t.Fatalf("fetch error = %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestAlbumsByUPC(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filter[upc]"); got != "1234,5678" {
			t.Errorf("filter[upc] = %q", got)
		}
		fmt.Fprint(w, `{"data":[{"id":"1","type":"albums"}]}`)
	})

	albums, err := AlbumsByUPC(context.Background(), c, []string{"1234", "5678"})
	if err != nil {
		t.Fatalf("AlbumsByUPC() error = %v", err)
	}
	if len(albums) != 1 {
		t.Errorf("len(albums) = %d", len(albums))
	}
}

func TestSongsByISRC(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filter[isrc]"); got != "GBAYE0601477" {
			t.Errorf("filter[isrc] = %q", got)
		}
		fmt.Fprint(w, `{"data":[{"id":"1","type":"songs"}]}`)
	})

	if _, err := SongsByISRC(context.Background(), c, []string{"GBAYE0601477"}); err != nil {
		t.Fatalf("SongsByISRC() error = %v", err)
	}
}

func TestChartPlaylists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filter[storefront-chart]"); got != "us" {
			t.Errorf("filter[storefront-chart] = %q", got)
		}
		fmt.Fprint(w, `{"data":[]}`)
	})

	if _, err := ChartPlaylists(context.Background(), c, "us"); err != nil {
		t.Fatalf("ChartPlaylists() error = %v", err)
	}
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/catalog/us/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("term") != "massive attack" {
			t.Errorf("term = %q", q.Get("term"))
		}
		if q.Get("types") != "albums,songs" {
			t.Errorf("types = %q", q.Get("types"))
		}
		if q.Get("limit") != "5" {
			t.Errorf("limit = %q", q.Get("limit"))
		}
		fmt.Fprint(w, `{"results":{"albums":{"data":[{"id":"1","type":"albums"}]}}}`)
	})

	results, err := Search(SearchAlbums, SearchSongs).
		Limit(5).
		Do(context.Background(), c, "massive attack")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(results.Albums.Data) != 1 {
		t.Errorf("Albums = %+v", results.Albums)
	}
}

func TestSearchHints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/catalog/us/search/hints" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"results":{"terms":["massive attack","massive attack mezzanine"]}}`)
	})

	terms, err := Search().Hints(context.Background(), c, "massive")
	if err != nil {
		t.Fatalf("Hints() error = %v", err)
	}
	if len(terms) != 2 || terms[0] != "massive attack" {
		t.Errorf("terms = %v", terms)
	}
}

func TestSearchSuggestions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/catalog/us/search/suggestions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if kinds := r.URL.Query().Get("kinds"); kinds != "terms" {
			t.Errorf("kinds = %q", kinds)
		}
		fmt.Fprint(w, `{"results":{"suggestions":[{"kind":"terms","searchTerm":"portishead","displayTerm":"portishead"}]}}`)
	})

	suggestions, err := Search().Suggestions(context.Background(), c, "portis", SuggestTerms)
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].SearchTerm != "portishead" {
		t.Errorf("suggestions = %+v", suggestions)
	}
}

func TestPersonalStation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filter[identity]"); got != "personal" {
			t.Errorf("filter[identity] = %q", got)
		}
		fmt.Fprint(w, `{"data":[{"id":"ra.1","type":"stations"}]}`)
	})

	station, err := PersonalStation(context.Background(), c)
	if err != nil {
		t.Fatalf("PersonalStation() error = %v", err)
	}
	if station == nil || station.ID != "ra.1" {
		t.Errorf("station = %+v", station)
	}
}
