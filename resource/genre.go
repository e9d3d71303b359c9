package resource

// Genre is a catalog music genre.
type Genre struct {
	ResourceHeader
	Attributes *GenreAttributes `json:"attributes,omitempty"`
}

// GenreAttributes are the attributes of a genre. ChartLabel is an
// extended attribute, present only when requested.
type GenreAttributes struct {
	Name       string `json:"name"`
	ParentID   string `json:"parentId,omitempty"`
	ParentName string `json:"parentName,omitempty"`
	ChartLabel string `json:"chartLabel,omitempty"`
}
