package resource

// Storefront is a regional Apple Music catalog.
type Storefront struct {
	ResourceHeader
	Attributes *StorefrontAttributes `json:"attributes,omitempty"`
}

// StorefrontAttributes are the attributes of a storefront.
type StorefrontAttributes struct {
	DefaultLanguageTag    string                `json:"defaultLanguageTag"`
	ExplicitContentPolicy ExplicitContentPolicy `json:"explicitContentPolicy"`
	Name                  string                `json:"name"`
	SupportedLanguageTags []string              `json:"supportedLanguageTags"`
}

// ExplicitContentPolicy is the level of explicit content a storefront can
// display.
type ExplicitContentPolicy string

// Explicit content policies.
const (
	ExplicitAllowed    ExplicitContentPolicy = "allowed"
	ExplicitOptIn      ExplicitContentPolicy = "opt-in"
	ExplicitProhibited ExplicitContentPolicy = "prohibited"
)
