package resource

// Activity is a catalog activity, e.g. a mood.
type Activity struct {
	ResourceHeader
	Attributes    *ActivityAttributes    `json:"attributes,omitempty"`
	Relationships *ActivityRelationships `json:"relationships,omitempty"`
}

// ActivityAttributes are the attributes of an activity.
type ActivityAttributes struct {
	Artwork        Artwork         `json:"artwork"`
	EditorialNotes *EditorialNotes `json:"editorialNotes,omitempty"`
	Name           string          `json:"name"`
	URL            string          `json:"url"`
}

// ActivityRelationships are the relationships of an activity.
type ActivityRelationships struct {
	Playlists *Relationship[Playlist] `json:"playlists,omitempty"`
}
