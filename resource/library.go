package resource

import "time"

// LibraryAlbum is an album in the user's library.
type LibraryAlbum struct {
	ResourceHeader
	Attributes    *LibraryAlbumAttributes    `json:"attributes,omitempty"`
	Relationships *LibraryAlbumRelationships `json:"relationships,omitempty"`
}

// LibraryAlbumAttributes are the attributes of a library album.
type LibraryAlbumAttributes struct {
	ArtistName    string          `json:"artistName"`
	Artwork       Artwork         `json:"artwork"`
	ContentRating ContentRating   `json:"contentRating,omitempty"`
	DateAdded     *ReleaseDate    `json:"dateAdded,omitempty"`
	Name          string          `json:"name"`
	PlayParams    *PlayParameters `json:"playParams,omitempty"`
	ReleaseDate   *ReleaseDate    `json:"releaseDate,omitempty"`
	TrackCount    int             `json:"trackCount"`
	GenreNames    []string        `json:"genreNames"`
}

// LibraryAlbumRelationships are the relationships of a library album.
type LibraryAlbumRelationships struct {
	Artists *Relationship[LibraryArtist] `json:"artists,omitempty"`
	Catalog *Relationship[Album]         `json:"catalog,omitempty"`
	Tracks  *Relationship[Resource]      `json:"tracks,omitempty"`
}

// LibraryArtist is an artist in the user's library.
type LibraryArtist struct {
	ResourceHeader
	Attributes    *LibraryArtistAttributes    `json:"attributes,omitempty"`
	Relationships *LibraryArtistRelationships `json:"relationships,omitempty"`
}

// LibraryArtistAttributes are the attributes of a library artist.
type LibraryArtistAttributes struct {
	Name string `json:"name"`
}

// LibraryArtistRelationships are the relationships of a library artist.
type LibraryArtistRelationships struct {
	Albums  *Relationship[LibraryAlbum] `json:"albums,omitempty"`
	Catalog *Relationship[Artist]       `json:"catalog,omitempty"`
}

// LibrarySong is a song in the user's library.
type LibrarySong struct {
	ResourceHeader
	Attributes    *LibrarySongAttributes    `json:"attributes,omitempty"`
	Relationships *LibrarySongRelationships `json:"relationships,omitempty"`
}

// LibrarySongAttributes are the attributes of a library song.
type LibrarySongAttributes struct {
	AlbumName        string          `json:"albumName,omitempty"`
	ArtistName       string          `json:"artistName"`
	Artwork          Artwork         `json:"artwork"`
	ContentRating    ContentRating   `json:"contentRating,omitempty"`
	DiscNumber       *int            `json:"discNumber,omitempty"`
	DurationInMillis int             `json:"durationInMillis"`
	GenreNames       []string        `json:"genreNames"`
	HasLyrics        bool            `json:"hasLyrics"`
	Name             string          `json:"name"`
	PlayParams       *PlayParameters `json:"playParams,omitempty"`
	ReleaseDate      *ReleaseDate    `json:"releaseDate,omitempty"`
	TrackNumber      *int            `json:"trackNumber,omitempty"`
}

// LibrarySongRelationships are the relationships of a library song.
type LibrarySongRelationships struct {
	Albums  *Relationship[LibraryAlbum]  `json:"albums,omitempty"`
	Artists *Relationship[LibraryArtist] `json:"artists,omitempty"`
	Catalog *Relationship[Song]          `json:"catalog,omitempty"`
}

// LibraryMusicVideo is a music video in the user's library.
type LibraryMusicVideo struct {
	ResourceHeader
	Attributes    *LibraryMusicVideoAttributes    `json:"attributes,omitempty"`
	Relationships *LibraryMusicVideoRelationships `json:"relationships,omitempty"`
}

// LibraryMusicVideoAttributes are the attributes of a library music
// video.
type LibraryMusicVideoAttributes struct {
	AlbumName        string          `json:"albumName,omitempty"`
	ArtistName       string          `json:"artistName"`
	Artwork          Artwork         `json:"artwork"`
	ContentRating    ContentRating   `json:"contentRating,omitempty"`
	DurationInMillis int             `json:"durationInMillis"`
	GenreNames       []string        `json:"genreNames"`
	Name             string          `json:"name"`
	PlayParams       *PlayParameters `json:"playParams,omitempty"`
	ReleaseDate      *ReleaseDate    `json:"releaseDate,omitempty"`
	TrackNumber      *int            `json:"trackNumber,omitempty"`
}

// LibraryMusicVideoRelationships are the relationships of a library
// music video.
type LibraryMusicVideoRelationships struct {
	Albums  *Relationship[LibraryAlbum]  `json:"albums,omitempty"`
	Artists *Relationship[LibraryArtist] `json:"artists,omitempty"`
	Catalog *Relationship[MusicVideo]    `json:"catalog,omitempty"`
}

// LibraryPlaylist is a playlist in the user's library.
type LibraryPlaylist struct {
	ResourceHeader
	Attributes    *LibraryPlaylistAttributes    `json:"attributes,omitempty"`
	Relationships *LibraryPlaylistRelationships `json:"relationships,omitempty"`
}

// LibraryPlaylistAttributes are the attributes of a library playlist.
// TrackTypes is an extended attribute, present only when requested.
type LibraryPlaylistAttributes struct {
	Artwork     *Artwork               `json:"artwork,omitempty"`
	CanEdit     bool                   `json:"canEdit"`
	DateAdded   *time.Time             `json:"dateAdded,omitempty"`
	Description *DescriptionAttributes `json:"description,omitempty"`
	HasCatalog  bool                   `json:"hasCatalog"`
	Name        string                 `json:"name"`
	PlayParams  *PlayParameters        `json:"playParams,omitempty"`
	IsPublic    bool                   `json:"isPublic"`
	TrackTypes  []TrackType            `json:"trackTypes,omitempty"`
}

// LibraryPlaylistRelationships are the relationships of a library
// playlist. Tracks mix library songs and library music videos.
type LibraryPlaylistRelationships struct {
	Catalog *Relationship[Playlist] `json:"catalog,omitempty"`
	Tracks  *Relationship[Resource] `json:"tracks,omitempty"`
}

// LibraryPlaylistFolder is a folder of playlists in the user's library.
type LibraryPlaylistFolder struct {
	ResourceHeader
	Attributes    *LibraryPlaylistFolderAttributes    `json:"attributes,omitempty"`
	Relationships *LibraryPlaylistFolderRelationships `json:"relationships,omitempty"`
}

// LibraryPlaylistFolderAttributes are the attributes of a library
// playlist folder.
type LibraryPlaylistFolderAttributes struct {
	DateAdded *time.Time `json:"dateAdded,omitempty"`
	Name      string     `json:"name"`
}

// LibraryPlaylistFolderRelationships are the relationships of a library
// playlist folder.
type LibraryPlaylistFolderRelationships struct {
	Catalog *Relationship[Playlist] `json:"catalog,omitempty"`
	Tracks  *Relationship[Resource] `json:"tracks,omitempty"`
}
