package resource

// Curator is a non-Apple catalog curator.
type Curator struct {
	ResourceHeader
	Attributes    *CuratorAttributes    `json:"attributes,omitempty"`
	Relationships *CuratorRelationships `json:"relationships,omitempty"`
}

// CuratorAttributes are the attributes of a curator.
type CuratorAttributes struct {
	Artwork        Artwork         `json:"artwork"`
	EditorialNotes *EditorialNotes `json:"editorialNotes,omitempty"`
	Name           string          `json:"name"`
	URL            string          `json:"url"`
}

// CuratorRelationships are the relationships of a curator.
type CuratorRelationships struct {
	Playlists *Relationship[Playlist] `json:"playlists,omitempty"`
}

// AppleCurator is an Apple-operated catalog curator.
type AppleCurator struct {
	ResourceHeader
	Attributes    *AppleCuratorAttributes    `json:"attributes,omitempty"`
	Relationships *AppleCuratorRelationships `json:"relationships,omitempty"`
}

// AppleCuratorAttributes are the attributes of an Apple curator.
type AppleCuratorAttributes struct {
	Artwork        Artwork         `json:"artwork"`
	EditorialNotes *EditorialNotes `json:"editorialNotes,omitempty"`
	Kind           CuratorKind     `json:"kind"`
	Name           string          `json:"name"`
	ShortName      string          `json:"shortName,omitempty"`
	ShowHostName   string          `json:"showHostName,omitempty"`
	URL            string          `json:"url"`
}

// CuratorKind is the kind of an Apple curator.
type CuratorKind string

// Apple curator kinds.
const (
	CuratorIndividual CuratorKind = "Curator"
	CuratorGenre      CuratorKind = "Genre"
	CuratorShow       CuratorKind = "Show"
)

// AppleCuratorRelationships are the relationships of an Apple curator.
type AppleCuratorRelationships struct {
	Playlists *Relationship[Playlist] `json:"playlists,omitempty"`
}
