package resource

import "time"

// Playlist is a catalog playlist.
type Playlist struct {
	ResourceHeader
	Attributes    *PlaylistAttributes    `json:"attributes,omitempty"`
	Relationships *PlaylistRelationships `json:"relationships,omitempty"`
	Views         *PlaylistViews         `json:"views,omitempty"`
}

// PlaylistAttributes are the attributes of a catalog playlist.
// TrackTypes is an extended attribute, present only when requested.
type PlaylistAttributes struct {
	Artwork          *Artwork               `json:"artwork,omitempty"`
	CuratorName      string                 `json:"curatorName"`
	Description      *DescriptionAttributes `json:"description,omitempty"`
	IsChart          bool                   `json:"isChart"`
	LastModifiedDate time.Time              `json:"lastModifiedDate"`
	Name             string                 `json:"name"`
	PlaylistType     PlaylistType           `json:"playlistType"`
	PlayParams       *PlayParameters        `json:"playParams,omitempty"`
	URL              string                 `json:"url"`
	TrackTypes       []TrackType            `json:"trackTypes,omitempty"`
}

// PlaylistType is the kind of playlist.
type PlaylistType string

// Playlist types.
const (
	PlaylistEditorial   PlaylistType = "editorial"
	PlaylistExternal    PlaylistType = "external"
	PlaylistPersonalMix PlaylistType = "personal-mix"
	PlaylistReplay      PlaylistType = "replay"
	PlaylistUserShared  PlaylistType = "user-shared"
)

// PlaylistRelationships are the relationships of a catalog playlist.
// Curator may be an activity, an Apple curator or a curator; tracks mix
// songs and music videos. Both use type-tagged Resources.
type PlaylistRelationships struct {
	Curator *Relationship[Resource]        `json:"curator,omitempty"`
	Library *Relationship[LibraryPlaylist] `json:"library,omitempty"`
	Tracks  *Relationship[Resource]        `json:"tracks,omitempty"`
}

// PlaylistViews are the relationship views of a catalog playlist.
type PlaylistViews struct {
	FeaturedArtists *View[Artist]   `json:"featured-artists,omitempty"`
	MoreByCurator   *View[Playlist] `json:"more-by-curator,omitempty"`
}
