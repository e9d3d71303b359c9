package resource

// Song is a catalog song.
type Song struct {
	ResourceHeader
	Attributes    *SongAttributes    `json:"attributes,omitempty"`
	Relationships *SongRelationships `json:"relationships,omitempty"`
}

// SongAttributes are the attributes of a catalog song. ArtistURL and
// AudioVariants are extended attributes, present only when requested.
type SongAttributes struct {
	AlbumName            string          `json:"albumName"`
	ArtistName           string          `json:"artistName"`
	ArtistURL            string          `json:"artistUrl,omitempty"`
	Artwork              Artwork         `json:"artwork"`
	Attribution          string          `json:"attribution,omitempty"`
	AudioVariants        []AudioVariant  `json:"audioVariants,omitempty"`
	ComposerName         string          `json:"composerName,omitempty"`
	ContentRating        ContentRating   `json:"contentRating,omitempty"`
	DiscNumber           *int            `json:"discNumber,omitempty"`
	DurationInMillis     int             `json:"durationInMillis"`
	EditorialNotes       *EditorialNotes `json:"editorialNotes,omitempty"`
	GenreNames           []string        `json:"genreNames"`
	HasLyrics            bool            `json:"hasLyrics"`
	IsAppleDigitalMaster bool            `json:"isAppleDigitalMaster"`
	ISRC                 string          `json:"isrc,omitempty"`
	MovementCount        int             `json:"movementCount,omitempty"`
	MovementName         string          `json:"movementName,omitempty"`
	MovementNumber       int             `json:"movementNumber,omitempty"`
	Name                 string          `json:"name"`
	PlayParams           *PlayParameters `json:"playParams,omitempty"`
	Previews             []Preview       `json:"previews"`
	ReleaseDate          *ReleaseDate    `json:"releaseDate,omitempty"`
	TrackNumber          *int            `json:"trackNumber,omitempty"`
	URL                  string          `json:"url"`
	WorkName             string          `json:"workName,omitempty"`
}

// SongRelationships are the relationships of a catalog song.
type SongRelationships struct {
	Albums      *Relationship[Album]       `json:"albums,omitempty"`
	Artists     *Relationship[Artist]      `json:"artists,omitempty"`
	Composers   *Relationship[Artist]      `json:"composers,omitempty"`
	Genres      *Relationship[Genre]       `json:"genres,omitempty"`
	Library     *Relationship[LibrarySong] `json:"library,omitempty"`
	MusicVideos *Relationship[MusicVideo]  `json:"music-videos,omitempty"`
	Station     *Relationship[Station]     `json:"station,omitempty"`
}
