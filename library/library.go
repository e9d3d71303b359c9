// Package library binds the user library section of the Apple Music
// API. Library requests require a client configured with a media user
// token; without one the API answers 403.
package library

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"

	"musickit"
	"musickit/resource"
)

// ErrUnsupportedResource is returned when a resource type cannot be
// used with a library mutation.
var ErrUnsupportedResource = errors.New("library: unsupported resource type")

func endpoint(object, segment string) musickit.Endpoint {
	return musickit.Endpoint{Object: object, Path: "/v1/me/library/" + segment}
}

// AddRequest collects catalog resources to add to the user's library
// in a single call.
type AddRequest struct {
	ids map[string][]string
	err error
}

// Add starts a library add request.
func Add() *AddRequest {
	return &AddRequest{ids: make(map[string][]string)}
}

// Resources queues catalog resources for addition. Albums, artists,
// music videos, playlists and songs are accepted.
func (a *AddRequest) Resources(resources ...*resource.Resource) *AddRequest {
	for _, r := range resources {
		switch r.Type {
		case resource.TypeAlbums, resource.TypeArtists, resource.TypeMusicVideos,
			resource.TypePlaylists, resource.TypeSongs:
			a.ids[r.Type] = append(a.ids[r.Type], r.ID)
		default:
			a.err = ErrUnsupportedResource
		}
	}
	return a
}

// Albums queues catalog albums for addition by id.
func (a *AddRequest) Albums(ids ...string) *AddRequest {
	a.ids[resource.TypeAlbums] = append(a.ids[resource.TypeAlbums], ids...)
	return a
}

// Artists queues catalog artists for addition by id.
func (a *AddRequest) Artists(ids ...string) *AddRequest {
	a.ids[resource.TypeArtists] = append(a.ids[resource.TypeArtists], ids...)
	return a
}

// MusicVideos queues catalog music videos for addition by id.
func (a *AddRequest) MusicVideos(ids ...string) *AddRequest {
	a.ids[resource.TypeMusicVideos] = append(a.ids[resource.TypeMusicVideos], ids...)
	return a
}

// Playlists queues catalog playlists for addition by id.
func (a *AddRequest) Playlists(ids ...string) *AddRequest {
	a.ids[resource.TypePlaylists] = append(a.ids[resource.TypePlaylists], ids...)
	return a
}

// Songs queues catalog songs for addition by id.
func (a *AddRequest) Songs(ids ...string) *AddRequest {
	a.ids[resource.TypeSongs] = append(a.ids[resource.TypeSongs], ids...)
	return a
}

// Do sends the add request and returns the created library resources.
func (a *AddRequest) Do(ctx context.Context, c *musickit.Client) ([]resource.Resource, error) {
	if a.err != nil {
		return nil, a.err
	}

	q := url.Values{}
	q.Set("representation", "ids")
	objects := make([]string, 0, len(a.ids))
	for object := range a.ids {
		objects = append(objects, object)
	}
	sort.Strings(objects)
	for _, object := range objects {
		q.Set("ids["+object+"]", strings.Join(a.ids[object], ","))
	}

	res, err := musickit.Post[resource.Response[resource.Resource]](ctx, c, "/v1/me/library", q)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}
