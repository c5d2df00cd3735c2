package staticpoi

import (
	"context"

	"github.com/nickjlamb/HushMap-sub001/internal/resolver"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// NoData satisfies the street and area provider interfaces for offline runs.
// It reports no data everywhere, so the resolver falls through to the
// synthesized placeholder once the static POI index has nothing to offer.
type NoData struct{}

func (NoData) ReverseGeocode(context.Context, types.Coords) (*resolver.StreetAddress, error) {
	return nil, nil
}

func (NoData) AreaName(context.Context, types.Coords) (string, error) {
	return "", nil
}
