package resource

// Album is a catalog album.
type Album struct {
	ResourceHeader
	Attributes    *AlbumAttributes    `json:"attributes,omitempty"`
	Relationships *AlbumRelationships `json:"relationships,omitempty"`
	Views         *AlbumViews         `json:"views,omitempty"`
}

// AlbumAttributes are the attributes of a catalog album. ArtistURL and
// AudioVariants are extended attributes, present only when requested.
type AlbumAttributes struct {
	ArtistName          string          `json:"artistName"`
	ArtistURL           string          `json:"artistUrl,omitempty"`
	Artwork             Artwork         `json:"artwork"`
	AudioVariants       []AudioVariant  `json:"audioVariants,omitempty"`
	ContentRating       ContentRating   `json:"contentRating,omitempty"`
	Copyright           string          `json:"copyright,omitempty"`
	EditorialNotes      *EditorialNotes `json:"editorialNotes,omitempty"`
	GenreNames          []string        `json:"genreNames"`
	IsCompilation       bool            `json:"isCompilation"`
	IsComplete          bool            `json:"isComplete"`
	IsMasteredForItunes bool            `json:"isMasteredForItunes"`
	IsSingle            bool            `json:"isSingle"`
	Name                string          `json:"name"`
	PlayParams          *PlayParameters `json:"playParams,omitempty"`
	RecordLabel         string          `json:"recordLabel,omitempty"`
	ReleaseDate         *ReleaseDate    `json:"releaseDate,omitempty"`
	TrackCount          int             `json:"trackCount"`
	UPC                 string          `json:"upc,omitempty"`
	URL                 string          `json:"url"`
}

// AlbumRelationships are the relationships of a catalog album. Tracks mix
// songs and music videos, so entries are type-tagged Resources.
type AlbumRelationships struct {
	Artists      *Relationship[Artist]       `json:"artists,omitempty"`
	Genres       *Relationship[Genre]        `json:"genres,omitempty"`
	Tracks       *Relationship[Resource]     `json:"tracks,omitempty"`
	Library      *Relationship[LibraryAlbum] `json:"library,omitempty"`
	RecordLabels *Relationship[RecordLabel]  `json:"record-labels,omitempty"`
}

// AlbumViews are the relationship views of a catalog album.
type AlbumViews struct {
	AppearsOn     *View[Playlist]   `json:"appears-on,omitempty"`
	OtherVersions *View[Album]      `json:"other-versions,omitempty"`
	RelatedAlbums *View[Album]      `json:"related-albums,omitempty"`
	RelatedVideos *View[MusicVideo] `json:"related-videos,omitempty"`
}
