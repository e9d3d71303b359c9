package resource

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestResourceCast(t *testing.T) {
	raw := `[
		{"id":"1","type":"albums","href":"/v1/catalog/us/albums/1","attributes":{"name":"Blue Lines","artistName":"Massive Attack"}},
		{"id":"2","type":"songs","attributes":{"name":"Safe From Harm"}},
		{"id":"3","type":"library-songs","attributes":{"name":"Unfinished Sympathy","artistName":"Massive Attack"}}
	]`

	var resources []Resource
	if err := json.Unmarshal([]byte(raw), &resources); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	album, ok := resources[0].Album()
	if !ok {
		t.Fatal("Album() not ok for albums resource")
	}
	if album.Attributes == nil || album.Attributes.Name != "Blue Lines" {
		t.Errorf("album attributes = %+v", album.Attributes)
	}
	if _, ok := resources[0].Song(); ok {
		t.Error("Song() ok for albums resource")
	}

	song, ok := resources[1].Song()
	if !ok || song.Attributes.Name != "Safe From Harm" {
		t.Errorf("Song() = %+v, %v", song, ok)
	}

	librarySong, ok := resources[2].LibrarySong()
	if !ok || librarySong.Attributes.ArtistName != "Massive Attack" {
		t.Errorf("LibrarySong() = %+v, %v", librarySong, ok)
	}
}

func TestResourceRoundTrip(t *testing.T) {
	raw := `{"id":"1","type":"playlists","attributes":{"name":"Chill","curatorName":"Apple Music"}}`

	var r Resource
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if r.ID != "1" || r.Type != TypePlaylists {
		t.Errorf("header = %+v", r.ResourceHeader)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var original, encoded map[string]any
	if err := json.Unmarshal([]byte(raw), &original); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &encoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(original, encoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesAbsence(t *testing.T) {
	// Identifier-only responses carry no attributes object at all.
	var album Album
	if err := json.Unmarshal([]byte(`{"id":"1","type":"albums"}`), &album); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if album.Attributes != nil {
		t.Errorf("Attributes = %+v, want nil", album.Attributes)
	}

	var full Album
	if err := json.Unmarshal([]byte(`{"id":"1","type":"albums","attributes":{"name":"x"}}`), &full); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if full.Attributes == nil {
		t.Error("Attributes = nil, want present")
	}
}

func TestReleaseDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     time.Time
		yearOnly bool
	}{
		{name: "full date", raw: `"1991-04-08"`, want: time.Date(1991, 4, 8, 0, 0, 0, 0, time.UTC)},
		{name: "year only", raw: `"1991"`, want: time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC), yearOnly: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ReleaseDate
			if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.raw, err)
			}
			if !d.Time.Equal(tt.want) || d.YearOnly != tt.yearOnly {
				t.Errorf("got %v yearOnly=%v, want %v yearOnly=%v", d.Time, d.YearOnly, tt.want, tt.yearOnly)
			}

			out, err := json.Marshal(d)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(out) != tt.raw {
				t.Errorf("Marshal() = %s, want %s", out, tt.raw)
			}
		})
	}
}

func TestArtworkImageURL(t *testing.T) {
	art := Artwork{
		Width:  3000,
		Height: 3000,
		URL:    "https://example.mzstatic.com/image/thumb/cover.jpg/{w}x{h}bb.{f}",
	}

	got := art.ImageURL(640, 640, ImageJPEG)
	want := "https://example.mzstatic.com/image/thumb/cover.jpg/640x640bb.jpg"
	if got != want {
		t.Errorf("ImageURL() = %q, want %q", got, want)
	}

	if got := art.ImageURL(100, 100, ImageWebP); got != "https://example.mzstatic.com/image/thumb/cover.jpg/100x100bb.webp" {
		t.Errorf("ImageURL() webp = %q", got)
	}
}

func TestSearchResultsDecode(t *testing.T) {
	raw := `{
		"albums":{"href":"/v1/catalog/us/search?types=albums","data":[{"id":"1","type":"albums"}]},
		"apple-curators":{"data":[{"id":"2","type":"apple-curators"}]}
	}`

	var results SearchResults
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(results.Albums.Data) != 1 || results.Albums.Data[0].ID != "1" {
		t.Errorf("Albums = %+v", results.Albums)
	}
	if len(results.AppleCurators.Data) != 1 {
		t.Errorf("AppleCurators = %+v", results.AppleCurators)
	}
	if len(results.Songs.Data) != 0 {
		t.Errorf("Songs = %+v, want empty", results.Songs)
	}
}
