package library

import (
	"context"

	"musickit"
	"musickit/resource"
)

// Library playlist relationship names for Request.Include.
const (
	PlaylistCatalog = "catalog"
	PlaylistTracks  = "tracks"
)

// Library playlist extended attribute names for Request.Extend.
const (
	PlaylistTrackTypes = "trackTypes"
)

// Playlists fetches playlists from the user's library.
func Playlists() *musickit.Request[resource.LibraryPlaylist] {
	return musickit.NewRequest[resource.LibraryPlaylist](endpoint(resource.TypeLibraryPlaylists, "playlists"))
}

// PlaylistFolders fetches playlist folders from the user's library.
func PlaylistFolders() *musickit.Request[resource.LibraryPlaylistFolder] {
	return musickit.NewRequest[resource.LibraryPlaylistFolder](endpoint(resource.TypeLibraryPlaylistFolders, "playlist-folders"))
}

type thinResource struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type playlistCreatePayload struct {
	Attributes    playlistCreateAttributes    `json:"attributes"`
	Relationships playlistCreateRelationships `json:"relationships"`
}

type playlistCreateAttributes struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsPublic    bool    `json:"isPublic"`
}

type playlistCreateRelationships struct {
	Tracks *trackList  `json:"tracks,omitempty"`
	Parent *parentList `json:"parent,omitempty"`
}

type trackList struct {
	Data []thinResource `json:"data"`
}

type parentList struct {
	Data [1]thinResource `json:"data"`
}

// CreatePlaylistRequest builds a new library playlist.
type CreatePlaylistRequest struct {
	payload playlistCreatePayload
	err     error
}

// CreatePlaylist starts a playlist creation request with the given
// name.
func CreatePlaylist(name string) *CreatePlaylistRequest {
	return &CreatePlaylistRequest{payload: playlistCreatePayload{
		Attributes: playlistCreateAttributes{Name: name},
	}}
}

// Description sets the playlist description.
func (p *CreatePlaylistRequest) Description(desc string) *CreatePlaylistRequest {
	p.payload.Attributes.Description = &desc
	return p
}

// Public marks the playlist as publicly visible.
func (p *CreatePlaylistRequest) Public(public bool) *CreatePlaylistRequest {
	p.payload.Attributes.IsPublic = public
	return p
}

// Tracks seeds the playlist with tracks. Songs, music videos and their
// library counterparts are accepted.
func (p *CreatePlaylistRequest) Tracks(tracks ...*resource.Resource) *CreatePlaylistRequest {
	thin, err := thinTracks(tracks)
	if err != nil {
		p.err = err
		return p
	}
	if p.payload.Relationships.Tracks == nil {
		p.payload.Relationships.Tracks = &trackList{}
	}
	p.payload.Relationships.Tracks.Data = append(p.payload.Relationships.Tracks.Data, thin...)
	return p
}

// ParentFolder places the playlist inside a playlist folder.
func (p *CreatePlaylistRequest) ParentFolder(folderID string) *CreatePlaylistRequest {
	p.payload.Relationships.Parent = &parentList{Data: [1]thinResource{{
		ID:   folderID,
		Type: resource.TypeLibraryPlaylistFolders,
	}}}
	return p
}

// Do creates the playlist and returns it.
func (p *CreatePlaylistRequest) Do(ctx context.Context, c *musickit.Client) (*resource.LibraryPlaylist, error) {
	if p.err != nil {
		return nil, p.err
	}
	res, err := musickit.PostJSON[resource.Response[resource.LibraryPlaylist]](ctx, c, "/v1/me/library/playlists", nil, p.payload)
	if err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, nil
	}
	return &res.Data[0], nil
}

// AddPlaylistTracks appends tracks to an existing library playlist.
// Songs, music videos and their library counterparts are accepted.
func AddPlaylistTracks(ctx context.Context, c *musickit.Client, playlistID string, tracks ...*resource.Resource) error {
	thin, err := thinTracks(tracks)
	if err != nil {
		return err
	}
	payload := trackList{Data: thin}
	_, err = musickit.PostJSON[resource.Response[resource.Resource]](ctx, c, "/v1/me/library/playlists/"+playlistID+"/tracks", nil, payload)
	return err
}

func thinTracks(tracks []*resource.Resource) ([]thinResource, error) {
	thin := make([]thinResource, 0, len(tracks))
	for _, t := range tracks {
		switch t.Type {
		case resource.TypeSongs, resource.TypeMusicVideos,
			resource.TypeLibrarySongs, resource.TypeLibraryMusicVideos:
			thin = append(thin, thinResource{ID: t.ID, Type: t.Type})
		default:
			return nil, ErrUnsupportedResource
		}
	}
	return thin, nil
}
