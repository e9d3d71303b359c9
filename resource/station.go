package resource

// Station is a catalog radio station.
type Station struct {
	ResourceHeader
	Attributes    *StationAttributes    `json:"attributes,omitempty"`
	Relationships *StationRelationships `json:"relationships,omitempty"`
}

// StationAttributes are the attributes of a catalog station.
type StationAttributes struct {
	Artwork             Artwork         `json:"artwork"`
	DurationInMillis    *int            `json:"durationInMillis,omitempty"`
	EditorialNotes      *EditorialNotes `json:"editorialNotes,omitempty"`
	EpisodeNumber       string          `json:"episodeNumber,omitempty"`
	ContentRating       ContentRating   `json:"contentRating,omitempty"`
	IsLive              bool            `json:"isLive"`
	MediaKind           MediaKind       `json:"mediaKind"`
	Name                string          `json:"name"`
	PlayParams          *PlayParameters `json:"playParams,omitempty"`
	StationProviderName string          `json:"stationProviderName,omitempty"`
	URL                 string          `json:"url"`
}

// MediaKind is the media kind of a station.
type MediaKind string

// Station media kinds.
const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

// StationRelationships are the relationships of a catalog station.
type StationRelationships struct {
	RadioShow *Relationship[AppleCurator] `json:"radio-show,omitempty"`
}

// StationGenre is a genre of catalog stations.
type StationGenre struct {
	ResourceHeader
	Attributes    *StationGenreAttributes    `json:"attributes,omitempty"`
	Relationships *StationGenreRelationships `json:"relationships,omitempty"`
}

// StationGenreAttributes are the attributes of a station genre.
type StationGenreAttributes struct {
	Name string `json:"name"`
}

// StationGenreRelationships are the relationships of a station genre.
type StationGenreRelationships struct {
	Stations *Relationship[Station] `json:"stations,omitempty"`
}
