package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"musickit"
	"musickit/resource"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *musickit.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := musickit.NewClient("dev-token", "user-token", "us", musickit.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestLibraryPaths(t *testing.T) {
	tests := []struct {
		name     string
		fetch    func(ctx context.Context, c *musickit.Client) error
		wantPath string
	}{
		{
			name: "albums",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Albums().One(ctx, c, "l.1")
				return err
			},
			wantPath: "/v1/me/library/albums/l.1",
		},
		{
			name: "artists",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Artists().One(ctx, c, "r.1")
				return err
			},
			wantPath: "/v1/me/library/artists/r.1",
		},
		{
			name: "songs",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Songs().One(ctx, c, "i.1")
				return err
			},
			wantPath: "/v1/me/library/songs/i.1",
		},
		{
			name: "music videos",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := MusicVideos().One(ctx, c, "i.2")
				return err
			},
			wantPath: "/v1/me/library/music-videos/i.2",
		},
		{
			name: "playlists",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := Playlists().One(ctx, c, "p.1")
				return err
			},
			wantPath: "/v1/me/library/playlists/p.1",
		},
		{
			name: "playlist folders",
			fetch: func(ctx context.Context, c *musickit.Client) error {
				_, err := PlaylistFolders().One(ctx, c, "f.1")
				return err
			},
			wantPath: "/v1/me/library/playlist-folders/f.1",
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

func TestAdd(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if r.URL.Path != "/v1/me/library" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("representation") != "ids" {
			t.Errorf("representation = %q", q.Get("representation"))
		}
		if q.Get("ids[albums]") != "1,2" {
			t.Errorf("ids[albums] = %q", q.Get("ids[albums]"))
		}
		if q.Get("ids[songs]") != "3" {
			t.Errorf("ids[songs] = %q", q.Get("ids[songs]"))
		}
		w.WriteHeader(http.StatusAccepted)
	})

	_, err := Add().Albums("1", "2").Songs("3").Do(context.Background(), c)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestAddUnsupportedResource(t *testing.T) {
	genre := &resource.Resource{ResourceHeader: resource.ResourceHeader{ID: "21", Type: resource.TypeGenres}}
	_, err := Add().Resources(genre).Do(context.Background(), nil)
	if !errors.Is(err, ErrUnsupportedResource) {
		t.Errorf("Do() error = %v, want ErrUnsupportedResource", err)
	}
}

func TestCreatePlaylist(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/me/library/playlists" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("body decode error = %v", err)
		}
		attrs := payload["attributes"].(map[string]any)
		if attrs["name"] != "Trip Hop" {
			t.Errorf("name = %v", attrs["name"])
		}
		if attrs["description"] != "slow beats" {
			t.Errorf("description = %v", attrs["description"])
		}
		if attrs["isPublic"] != true {
			t.Errorf("isPublic = %v", attrs["isPublic"])
		}
		rels := payload["relationships"].(map[string]any)
		tracks := rels["tracks"].(map[string]any)["data"].([]any)
		if len(tracks) != 1 {
			t.Fatalf("tracks = %v", tracks)
		}
		track := tracks[0].(map[string]any)
		if track["id"] != "1" || track["type"] != "songs" {
			t.Errorf("track = %v", track)
		}
		fmt.Fprint(w, `{"data":[{"id":"p.new","type":"library-playlists","attributes":{"name":"Trip Hop"}}]}`)
	})

	song := &resource.Resource{ResourceHeader: resource.ResourceHeader{ID: "1", Type: resource.TypeSongs}}
	playlist, err := CreatePlaylist("Trip Hop").
		Description("slow beats").
		Public(true).
		Tracks(song).
		Do(context.Background(), c)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if playlist == nil || playlist.ID != "p.new" {
		t.Errorf("playlist = %+v", playlist)
	}
}

func TestCreatePlaylistRejectsNonTracks(t *testing.T) {
	album := &resource.Resource{ResourceHeader: resource.ResourceHeader{ID: "1", Type: resource.TypeAlbums}}
	_, err := CreatePlaylist("x").Tracks(album).Do(context.Background(), nil)
	if !errors.Is(err, ErrUnsupportedResource) {
		t.Errorf("Do() error = %v, want ErrUnsupportedResource", err)
	}
}

func TestAddPlaylistTracks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/me/library/playlists/p.1/tracks" {
			t.Errorf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Data []struct {
				ID   string `json:"id"`
				Type string `json:"type"`
			} `json:"data"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("body decode error = %v", err)
		}
		if len(payload.Data) != 2 || payload.Data[1].Type != "library-songs" {
			t.Errorf("payload = %+v", payload)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	tracks := []*resource.Resource{
		{ResourceHeader: resource.ResourceHeader{ID: "1", Type: resource.TypeSongs}},
		{ResourceHeader: resource.ResourceHeader{ID: "i.2", Type: resource.TypeLibrarySongs}},
	}
	if err := AddPlaylistTracks(context.Background(), c, "p.1", tracks...); err != nil {
		t.Fatalf("AddPlaylistTracks() error = %v", err)
	}
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/me/library/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("types") != "library-albums,library-songs" {
			t.Errorf("types = %q", q.Get("types"))
		}
		if q.Get("term") != "mezzanine" {
			t.Errorf("term = %q", q.Get("term"))
		}
		fmt.Fprint(w, `{"results":{"library-albums":{"data":[{"id":"l.1","type":"library-albums"}]}}}`)
	})

	results, err := Search(SearchLibraryAlbums, SearchLibrarySongs).
		Do(context.Background(), c, "mezzanine")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(results.LibraryAlbums.Data) != 1 {
		t.Errorf("LibraryAlbums = %+v", results.LibraryAlbums)
	}
}
