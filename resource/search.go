package resource

// SearchResults groups catalog search matches per resource type. Types
// not requested come back as empty relationships.
type SearchResults struct {
	Activities    Relationship[Activity]     `json:"activities"`
	Albums        Relationship[Album]        `json:"albums"`
	AppleCurators Relationship[AppleCurator] `json:"apple-curators"`
	Curators      Relationship[Curator]      `json:"curators"`
	Artists       Relationship[Artist]       `json:"artists"`
	MusicVideos   Relationship[MusicVideo]   `json:"music-videos"`
	Playlists     Relationship[Playlist]     `json:"playlists"`
	RecordLabels  Relationship[RecordLabel]  `json:"record-labels"`
	Songs         Relationship[Song]         `json:"songs"`
	Stations      Relationship[Station]      `json:"stations"`
}

// LibrarySearchResults groups library search matches per resource type.
type LibrarySearchResults struct {
	LibraryAlbums      Relationship[LibraryAlbum]      `json:"library-albums"`
	LibraryArtists     Relationship[LibraryArtist]     `json:"library-artists"`
	LibraryMusicVideos Relationship[LibraryMusicVideo] `json:"library-music-videos"`
	LibraryPlaylists   Relationship[LibraryPlaylist]   `json:"library-playlists"`
	LibrarySongs       Relationship[LibrarySong]       `json:"library-songs"`
}

// SearchSuggestion is one suggestion returned by the catalog search
// suggestions endpoint.
type SearchSuggestion struct {
	Kind        string `json:"kind"`
	SearchTerm  string `json:"searchTerm"`
	DisplayTerm string `json:"displayTerm"`
}
