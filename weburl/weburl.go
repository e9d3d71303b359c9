// Package weburl parses music.apple.com share links into catalog
// identifiers usable with the API.
package weburl

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	// Regex patterns for extracting IDs
	albumRegex    = regexp.MustCompile(`/album/[^/]+/(\d+)`)
	playlistRegex = regexp.MustCompile(`/playlist/[^/]+/(pl\.[a-zA-Z0-9-]+)`)
	artistRegex   = regexp.MustCompile(`/artist/[^/]+/(\d+)`)
	stationRegex  = regexp.MustCompile(`/station/[^/]+/(ra\.[a-zA-Z0-9-]+)`)
)

// ErrNotAppleMusic is returned for URLs outside apple.com.
var ErrNotAppleMusic = errors.New("weburl: not an Apple Music URL")

// ErrUnrecognized is returned when no identifiers could be extracted
// from an apple.com URL.
var ErrUnrecognized = errors.New("weburl: could not parse Apple Music URL")

// ShareLink holds the identifiers extracted from a share URL. At least
// one ID field is set; Storefront holds the two-letter country code
// from the URL path when present.
type ShareLink struct {
	Storefront string
	AlbumID    string
	TrackID    string
	PlaylistID string
	ArtistID   string
	StationID  string
}

// Parse extracts catalog identifiers from an Apple Music share URL.
// Both music.apple.com and itunes.apple.com hosts are accepted. Song
// links carry the album ID in the path and the song ID in the ?i=
// query parameter.
func Parse(rawURL string) (ShareLink, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return ShareLink{}, err
	}

	if !strings.Contains(parsedURL.Host, "apple.com") {
		log.Warnf("URL does not contain apple.com: %s", rawURL)
		return ShareLink{}, ErrNotAppleMusic
	}

	link := ShareLink{}

	// Extract country code (e.g., /us/album/...)
	pathParts := strings.Split(strings.TrimPrefix(parsedURL.Path, "/"), "/")
	if len(pathParts) > 0 && len(pathParts[0]) == 2 {
		link.Storefront = strings.ToLower(pathParts[0])
		log.Tracef("Extracted storefront: %s", link.Storefront)
	}

	// Check for track ID in query params (e.g., ?i=1646389445)
	if trackID := parsedURL.Query().Get("i"); trackID != "" {
		link.TrackID = trackID
		log.Tracef("Parsed Apple Music track URL: track=%s", trackID)

		// Also need album ID for track context
		if matches := albumRegex.FindStringSubmatch(parsedURL.Path); len(matches) > 1 {
			link.AlbumID = matches[1]
			log.Tracef("Extracted album ID from track URL: %s", link.AlbumID)
		}
		return link, nil
	}

	switch {
	case strings.Contains(parsedURL.Path, "/album/"):
		if matches := albumRegex.FindStringSubmatch(parsedURL.Path); len(matches) > 1 {
			link.AlbumID = matches[1]
			log.Tracef("Parsed Apple Music album URL: %s", link.AlbumID)
		}
	case strings.Contains(parsedURL.Path, "/playlist/"):
		if matches := playlistRegex.FindStringSubmatch(parsedURL.Path); len(matches) > 1 {
			link.PlaylistID = matches[1]
			log.Tracef("Parsed Apple Music playlist URL: %s", link.PlaylistID)
		}
	case strings.Contains(parsedURL.Path, "/artist/"):
		if matches := artistRegex.FindStringSubmatch(parsedURL.Path); len(matches) > 1 {
			link.ArtistID = matches[1]
			log.Tracef("Parsed Apple Music artist URL: %s", link.ArtistID)
		}
	case strings.Contains(parsedURL.Path, "/station/"):
		if matches := stationRegex.FindStringSubmatch(parsedURL.Path); len(matches) > 1 {
			link.StationID = matches[1]
			log.Tracef("Parsed Apple Music station URL: %s", link.StationID)
		}
	}

	if link.TrackID == "" && link.AlbumID == "" && link.PlaylistID == "" &&
		link.ArtistID == "" && link.StationID == "" {
		log.Warnf("Could not parse Apple Music URL (no IDs extracted): %s", rawURL)
		return ShareLink{}, ErrUnrecognized
	}

	return link, nil
}
