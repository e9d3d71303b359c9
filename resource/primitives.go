package resource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// PlayParameters identify a playable item for playback requests.
type PlayParameters struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// EditorialNotes are the notes shown for content in the store.
type EditorialNotes struct {
	Name     string `json:"name,omitempty"`
	Short    string `json:"short,omitempty"`
	Standard string `json:"standard,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
}

// Preview is a preview asset for a song or music video.
type Preview struct {
	URL     string   `json:"url"`
	HlsURL  string   `json:"hlsUrl,omitempty"`
	Artwork *Artwork `json:"artwork,omitempty"`
}

// ContentRating is the RIAA rating of the content.
type ContentRating string

// Content ratings.
const (
	RatingClean    ContentRating = "clean"
	RatingExplicit ContentRating = "explicit"
)

// AudioVariant is a specific audio quality variant of an album or song.
type AudioVariant string

// Audio variants.
const (
	AudioDolbyAtmos    AudioVariant = "dolby-atmos"
	AudioDolbyAudio    AudioVariant = "dolby-audio"
	AudioHiResLossless AudioVariant = "hi-res-lossless"
	AudioLossless      AudioVariant = "lossless"
	AudioLossyStereo   AudioVariant = "lossy-stereo"
)

// TrackType is a track resource kind, used to filter track listings.
type TrackType string

// Track types.
const (
	TrackLibraryMusicVideos TrackType = "library-music-videos"
	TrackLibrarySongs       TrackType = "library-songs"
	TrackMusicVideos        TrackType = "music-videos"
	TrackSongs              TrackType = "songs"
)

// ReleaseDate is a date the API reports either as YYYY or as YYYY-MM-DD.
// When only the year is known, YearOnly is true and the date is January 1
// of that year.
type ReleaseDate struct {
	time.Time
	YearOnly bool
}

const releaseDateLayout = "2006-01-02"

func (d *ReleaseDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) == 4 {
		year, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("resource: invalid release year %q: %w", s, err)
		}
		d.Time = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		d.YearOnly = true
		return nil
	}
	t, err := time.Parse(releaseDateLayout, s)
	if err != nil {
		return fmt.Errorf("resource: invalid release date %q: %w", s, err)
	}
	d.Time = t
	d.YearOnly = false
	return nil
}

func (d ReleaseDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d ReleaseDate) String() string {
	if d.YearOnly {
		return strconv.Itoa(d.Year())
	}
	return d.Format(releaseDateLayout)
}
