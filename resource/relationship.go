package resource

// Relationship is a paginated collection of related resources. Next, when
// set, is the API path of the following page; musickit.NextPage follows
// it.
type Relationship[T any] struct {
	Href string `json:"href,omitempty"`
	Next string `json:"next,omitempty"`
	Data []T    `json:"data"`
}

// View is a named association between a resource and a collection of
// other resources, carrying its own display attributes.
type View[T any] struct {
	Href       string          `json:"href,omitempty"`
	Next       string          `json:"next,omitempty"`
	Attributes TitleAttributes `json:"attributes"`
	Data       []T             `json:"data"`
}

// TitleAttributes is the localized title shown for a view.
type TitleAttributes struct {
	Title string `json:"title"`
}

// DescriptionAttributes is short and standard length description text.
type DescriptionAttributes struct {
	Short    string `json:"short,omitempty"`
	Standard string `json:"standard"`
}
