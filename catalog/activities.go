package catalog

import (
	"musickit"
	"musickit/resource"
)

// Activity relationship name for Request.Include.
const ActivityPlaylists = "playlists"

// Activities returns a fetch builder for catalog activities.
func Activities() *musickit.Request[resource.Activity] {
	return musickit.NewRequest[resource.Activity](endpoint(resource.TypeActivities))
}
