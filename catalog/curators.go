package catalog

import (
	"musickit"
	"musickit/resource"
)

// Curator relationship name for Request.Include.
const CuratorPlaylists = "playlists"

// Curators returns a fetch builder for catalog curators.
func Curators() *musickit.Request[resource.Curator] {
	return musickit.NewRequest[resource.Curator](endpoint(resource.TypeCurators))
}

// AppleCurators returns a fetch builder for Apple curators.
func AppleCurators() *musickit.Request[resource.AppleCurator] {
	return musickit.NewRequest[resource.AppleCurator](endpoint(resource.TypeAppleCurators))
}
