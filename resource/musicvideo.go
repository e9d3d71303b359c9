package resource

// MusicVideo is a catalog music video.
type MusicVideo struct {
	ResourceHeader
	Attributes    *MusicVideoAttributes    `json:"attributes,omitempty"`
	Relationships *MusicVideoRelationships `json:"relationships,omitempty"`
	Views         *MusicVideoViews         `json:"views,omitempty"`
}

// MusicVideoAttributes are the attributes of a catalog music video.
type MusicVideoAttributes struct {
	AlbumName        string          `json:"albumName,omitempty"`
	ArtistName       string          `json:"artistName"`
	ArtistURL        string          `json:"artistUrl,omitempty"`
	Artwork          *Artwork        `json:"artwork,omitempty"`
	ContentRating    ContentRating   `json:"contentRating,omitempty"`
	DurationInMillis int             `json:"durationInMillis"`
	EditorialNotes   *EditorialNotes `json:"editorialNotes,omitempty"`
	GenreNames       []string        `json:"genreNames"`
	Has4K            bool            `json:"has4K"`
	HasHDR           bool            `json:"hasHDR"`
	ISRC             string          `json:"isrc,omitempty"`
	Name             string          `json:"name"`
	PlayParams       *PlayParameters `json:"playParams,omitempty"`
	Previews         []Preview       `json:"previews"`
	ReleaseDate      *ReleaseDate    `json:"releaseDate,omitempty"`
	TrackNumber      *int            `json:"trackNumber,omitempty"`
	URL              string          `json:"url"`
	VideoSubType     string          `json:"videoSubType,omitempty"`
	WorkID           string          `json:"workId,omitempty"`
	WorkName         string          `json:"workName,omitempty"`
}

// MusicVideoRelationships are the relationships of a catalog music video.
type MusicVideoRelationships struct {
	Albums  *Relationship[Album]             `json:"albums,omitempty"`
	Artists *Relationship[Artist]            `json:"artists,omitempty"`
	Genres  *Relationship[Genre]             `json:"genres,omitempty"`
	Library *Relationship[LibraryMusicVideo] `json:"library,omitempty"`
	Songs   *Relationship[Song]              `json:"songs,omitempty"`
}

// MusicVideoViews are the relationship views of a catalog music video.
type MusicVideoViews struct {
	MoreByArtist *View[MusicVideo] `json:"more-by-artist,omitempty"`
	MoreInGenre  *View[MusicVideo] `json:"more-in-genre,omitempty"`
}
