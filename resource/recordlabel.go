package resource

// RecordLabel is a catalog record label.
type RecordLabel struct {
	ResourceHeader
	Attributes *RecordLabelAttributes `json:"attributes,omitempty"`
	Views      *RecordLabelViews      `json:"views,omitempty"`
}

// RecordLabelAttributes are the attributes of a record label.
type RecordLabelAttributes struct {
	Artwork     Artwork                `json:"artwork"`
	Description *DescriptionAttributes `json:"description,omitempty"`
	Name        string                 `json:"name"`
	URL         string                 `json:"url"`
}

// RecordLabelViews are the relationship views of a record label.
type RecordLabelViews struct {
	LatestReleases *View[Album] `json:"latest-releases,omitempty"`
	TopReleases    *View[Album] `json:"top-releases,omitempty"`
}
