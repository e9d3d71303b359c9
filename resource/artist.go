package resource

// Artist is a catalog artist.
type Artist struct {
	ResourceHeader
	Attributes    *ArtistAttributes    `json:"attributes,omitempty"`
	Relationships *ArtistRelationships `json:"relationships,omitempty"`
	Views         *ArtistViews         `json:"views,omitempty"`
}

// ArtistAttributes are the attributes of a catalog artist.
type ArtistAttributes struct {
	Artwork        *Artwork        `json:"artwork,omitempty"`
	EditorialNotes *EditorialNotes `json:"editorialNotes,omitempty"`
	GenreNames     []string        `json:"genreNames"`
	Name           string          `json:"name"`
	URL            string          `json:"url"`
}

// ArtistRelationships are the relationships of a catalog artist.
type ArtistRelationships struct {
	Albums      *Relationship[Album]      `json:"albums,omitempty"`
	Genres      *Relationship[Genre]      `json:"genres,omitempty"`
	MusicVideos *Relationship[MusicVideo] `json:"music-videos,omitempty"`
	Playlists   *Relationship[Playlist]   `json:"playlists,omitempty"`
	Station     *Relationship[Station]    `json:"station,omitempty"`
}

// ArtistViews are the relationship views of a catalog artist.
type ArtistViews struct {
	AppearsOnAlbums     *View[Album]      `json:"appears-on-albums,omitempty"`
	CompilationAlbums   *View[Album]      `json:"compilation-albums,omitempty"`
	FeaturedAlbums      *View[Album]      `json:"featured-albums,omitempty"`
	FeaturedMusicVideos *View[MusicVideo] `json:"featured-music-videos,omitempty"`
	FeaturedPlaylists   *View[Playlist]   `json:"featured-playlists,omitempty"`
	FullAlbums          *View[Album]      `json:"full-albums,omitempty"`
	LatestRelease       *View[Album]      `json:"latest-release,omitempty"`
	LiveAlbums          *View[Album]      `json:"live-albums,omitempty"`
	SimilarArtists      *View[Artist]     `json:"similar-artists,omitempty"`
	Singles             *View[Album]      `json:"singles,omitempty"`
	TopMusicVideos      *View[MusicVideo] `json:"top-music-videos,omitempty"`
	TopSongs            *View[Song]       `json:"top-songs,omitempty"`
}
