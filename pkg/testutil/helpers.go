// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/internal/store"
)

// FindStation finds a station by name in the stations slice.
// Returns a pointer to the station if found, nil otherwise.
func FindStation(stations []store.Station, name string) *store.Station {
	for i := range stations {
		if stations[i].Name == name {
			return &stations[i]
		}
	}
	return nil
}

// FindWarning returns the first warning with the given code, or nil.
func FindWarning(warnings []projection.Warning, code string) *projection.Warning {
	for i := range warnings {
		if warnings[i].Code == code {
			return &warnings[i]
		}
	}
	return nil
}
