package catalog

import (
	"musickit"
	"musickit/resource"
)

// Record label view names for Request.View.
const (
	RecordLabelLatestReleases = "latest-releases"
	RecordLabelTopReleases    = "top-releases"
)

// RecordLabels returns a fetch builder for catalog record labels.
func RecordLabels() *musickit.Request[resource.RecordLabel] {
	return musickit.NewRequest[resource.RecordLabel](endpoint(resource.TypeRecordLabels))
}
