// Package resource holds the typed response models of the Apple Music
// API. The structs are plain data containers; fetching lives in the
// musickit root package and its catalog, library and me subpackages.
//
// Attributes are always pointers: the API omits them depending on the
// requested fields, and a nil pointer keeps "absent" distinct from "empty".
package resource

import "encoding/json"

// Resource type names as they appear in the "type" field.
const (
	TypeActivities             = "activities"
	TypeAlbums                 = "albums"
	TypeAppleCurators          = "apple-curators"
	TypeArtists                = "artists"
	TypeCurators               = "curators"
	TypeGenres                 = "genres"
	TypeMusicVideos            = "music-videos"
	TypePersonalRecommendation = "personal-recommendation"
	TypePlaylists              = "playlists"
	TypeRatings                = "ratings"
	TypeRecordLabels           = "record-labels"
	TypeSongs                  = "songs"
	TypeStations               = "stations"
	TypeStationGenres          = "station-genres"
	TypeLibraryAlbums          = "library-albums"
	TypeLibraryArtists         = "library-artists"
	TypeLibraryMusicVideos     = "library-music-videos"
	TypeLibraryPlaylists       = "library-playlists"
	TypeLibraryPlaylistFolders = "library-playlist-folders"
	TypeLibrarySongs           = "library-songs"
)

// ResourceHeader is the identifying payload common to every resource.
type ResourceHeader struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Href string `json:"href,omitempty"`
}

// Response is the standard API envelope: a data array of resources.
type Response[T any] struct {
	Data []T `json:"data"`
}

// ErrorEnvelope is the body the API sends with non-2xx responses.
type ErrorEnvelope struct {
	Code    *int          `json:"code,omitempty"`
	Message string        `json:"message,omitempty"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is a single error inside an ErrorEnvelope.
type ErrorDetail struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status string `json:"status"`
	Code   string `json:"code"`
}

// Resource is a type-tagged resource of any kind, used where the API
// returns heterogeneous data: album and playlist tracks, history, search
// curators, rating content. The typed accessors decode the payload on
// demand and report false when the tag does not match.
type Resource struct {
	ResourceHeader
	raw json.RawMessage
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var header ResourceHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	r.ResourceHeader = header
	r.raw = append(r.raw[:0], data...)
	return nil
}

func (r Resource) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	return json.Marshal(r.ResourceHeader)
}

func decodeResource[T any](r Resource, want string) (*T, bool) {
	if r.Type != want || r.raw == nil {
		return nil, false
	}
	out := new(T)
	if err := json.Unmarshal(r.raw, out); err != nil {
		return nil, false
	}
	return out, true
}

// Activity decodes the resource as an Activity.
func (r Resource) Activity() (*Activity, bool) { return decodeResource[Activity](r, TypeActivities) }

// Album decodes the resource as an Album.
func (r Resource) Album() (*Album, bool) { return decodeResource[Album](r, TypeAlbums) }

// AppleCurator decodes the resource as an AppleCurator.
func (r Resource) AppleCurator() (*AppleCurator, bool) {
	return decodeResource[AppleCurator](r, TypeAppleCurators)
}

// Artist decodes the resource as an Artist.
func (r Resource) Artist() (*Artist, bool) { return decodeResource[Artist](r, TypeArtists) }

// Curator decodes the resource as a Curator.
func (r Resource) Curator() (*Curator, bool) { return decodeResource[Curator](r, TypeCurators) }

// Genre decodes the resource as a Genre.
func (r Resource) Genre() (*Genre, bool) { return decodeResource[Genre](r, TypeGenres) }

// MusicVideo decodes the resource as a MusicVideo.
func (r Resource) MusicVideo() (*MusicVideo, bool) {
	return decodeResource[MusicVideo](r, TypeMusicVideos)
}

// PersonalRecommendation decodes the resource as a PersonalRecommendation.
func (r Resource) PersonalRecommendation() (*PersonalRecommendation, bool) {
	return decodeResource[PersonalRecommendation](r, TypePersonalRecommendation)
}

// Playlist decodes the resource as a Playlist.
func (r Resource) Playlist() (*Playlist, bool) { return decodeResource[Playlist](r, TypePlaylists) }

// Rating decodes the resource as a Rating.
func (r Resource) Rating() (*Rating, bool) { return decodeResource[Rating](r, TypeRatings) }

// RecordLabel decodes the resource as a RecordLabel.
func (r Resource) RecordLabel() (*RecordLabel, bool) {
	return decodeResource[RecordLabel](r, TypeRecordLabels)
}

// Song decodes the resource as a Song.
func (r Resource) Song() (*Song, bool) { return decodeResource[Song](r, TypeSongs) }

// Station decodes the resource as a Station.
func (r Resource) Station() (*Station, bool) { return decodeResource[Station](r, TypeStations) }

// StationGenre decodes the resource as a StationGenre.
func (r Resource) StationGenre() (*StationGenre, bool) {
	return decodeResource[StationGenre](r, TypeStationGenres)
}

// LibraryAlbum decodes the resource as a LibraryAlbum.
func (r Resource) LibraryAlbum() (*LibraryAlbum, bool) {
	return decodeResource[LibraryAlbum](r, TypeLibraryAlbums)
}

// LibraryArtist decodes the resource as a LibraryArtist.
func (r Resource) LibraryArtist() (*LibraryArtist, bool) {
	return decodeResource[LibraryArtist](r, TypeLibraryArtists)
}

// LibraryMusicVideo decodes the resource as a LibraryMusicVideo.
func (r Resource) LibraryMusicVideo() (*LibraryMusicVideo, bool) {
	return decodeResource[LibraryMusicVideo](r, TypeLibraryMusicVideos)
}

// LibraryPlaylist decodes the resource as a LibraryPlaylist.
func (r Resource) LibraryPlaylist() (*LibraryPlaylist, bool) {
	return decodeResource[LibraryPlaylist](r, TypeLibraryPlaylists)
}

// LibraryPlaylistFolder decodes the resource as a LibraryPlaylistFolder.
func (r Resource) LibraryPlaylistFolder() (*LibraryPlaylistFolder, bool) {
	return decodeResource[LibraryPlaylistFolder](r, TypeLibraryPlaylistFolders)
}

// LibrarySong decodes the resource as a LibrarySong.
func (r Resource) LibrarySong() (*LibrarySong, bool) {
	return decodeResource[LibrarySong](r, TypeLibrarySongs)
}
