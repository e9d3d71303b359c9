package catalog

import (
	"context"

	"musickit"
	"musickit/resource"
)

// Station relationship name for Request.Include.
const StationRadioShow = "radio-show"

// Stations returns a fetch builder for catalog stations.
func Stations() *musickit.Request[resource.Station] {
	return musickit.NewRequest[resource.Station](endpoint(resource.TypeStations))
}

// StationGenres returns a fetch builder for station genres.
func StationGenres() *musickit.Request[resource.StationGenre] {
	return musickit.NewRequest[resource.StationGenre](endpoint(resource.TypeStationGenres))
}

// PersonalStation fetches the user's personal radio station.
func PersonalStation(ctx context.Context, c *musickit.Client) (*resource.Station, error) {
	stations, err := Stations().Filter("identity", "personal").List(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, nil
	}
	return &stations[0], nil
}
