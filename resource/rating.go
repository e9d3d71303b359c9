package resource

// Rating is a user rating attached to a catalog or library resource.
type Rating struct {
	ResourceHeader
	Attributes    *RatingAttributes    `json:"attributes,omitempty"`
	Relationships *RatingRelationships `json:"relationships,omitempty"`
}

// RatingAttributes hold the rating value: 1 (loved) or -1 (disliked). A
// nil Rating means the content has no rating.
type RatingAttributes struct {
	Rating *int `json:"rating,omitempty"`
}

// RatingRelationships are the relationships of a rating. Content can be
// any rateable resource kind.
type RatingRelationships struct {
	Content *Relationship[Resource] `json:"content,omitempty"`
}
