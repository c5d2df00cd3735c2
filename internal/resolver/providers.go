package resolver

import (
	"context"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// PlacesProvider searches for named venues near a coordinate. Results must be
// ranked by distance from the query point.
type PlacesProvider interface {
	NearbyCandidates(ctx context.Context, coords types.Coords, sessionToken string) ([]types.PlacesCandidate, error)
}

// StreetAddress is a street-level reverse geocoding result.
type StreetAddress struct {
	// Short is the compact display form, e.g. "Praed St, Paddington".
	Short      string
	Confidence float64
}

// GeocodeProvider reverse-geocodes a coordinate to a street address. A nil
// result with a nil error means the provider has no street data there.
type GeocodeProvider interface {
	ReverseGeocode(ctx context.Context, coords types.Coords) (*StreetAddress, error)
}

// AreaProvider looks up a neighborhood/locality/administrative-area name.
// An empty string with a nil error means no area data is available; the
// resolver synthesizes the placeholder in that case.
type AreaProvider interface {
	AreaName(ctx context.Context, coords types.Coords) (string, error)
}
