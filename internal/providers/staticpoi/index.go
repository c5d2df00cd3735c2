// Package staticpoi serves venue candidates from a bundled dataset so the
// resolver can run without network access. Venues are held in an in-memory
// R-tree and queried by bounding box.
package staticpoi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/rtree"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

const searchRadiusMeters = 150

// POI is one entry in the bundled dataset.
type POI struct {
	Name        string   `json:"name"`
	PlaceID     string   `json:"place_id"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Categories  []string `json:"categories"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	OpenNow     *bool    `json:"open_now,omitempty"`
}

// Index answers nearby-venue queries from static data.
type Index struct {
	tree rtree.RTreeG[POI]
}

func NewIndex(pois []POI) *Index {
	idx := &Index{}
	for _, p := range pois {
		pt := [2]float64{p.Longitude, p.Latitude}
		idx.tree.Insert(pt, pt, p)
	}
	return idx
}

// LoadIndex reads a JSON array of POIs from disk.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read POI dataset: %w", err)
	}
	var pois []POI
	if err := json.Unmarshal(data, &pois); err != nil {
		return nil, fmt.Errorf("failed to parse POI dataset: %w", err)
	}
	return NewIndex(pois), nil
}

// NearbyCandidates returns dataset venues within the search radius, nearest
// first. It never fails; an empty dataset just yields no candidates.
func (idx *Index) NearbyCandidates(_ context.Context, coords types.Coords, _ string) ([]types.PlacesCandidate, error) {
	// Degrees per meter shrink with latitude for longitude; pad the box a
	// little and let the exact distance check below do the filtering.
	latDelta := searchRadiusMeters / 111_000.0
	lonDelta := latDelta / math.Max(math.Cos(coords.Latitude*math.Pi/180), 0.01)

	min := [2]float64{coords.Longitude - lonDelta, coords.Latitude - latDelta}
	max := [2]float64{coords.Longitude + lonDelta, coords.Latitude + latDelta}

	var candidates []types.PlacesCandidate
	idx.tree.Search(min, max, func(_, _ [2]float64, p POI) bool {
		poiCoords := types.NewCoords(p.Latitude, p.Longitude)
		dist := coords.DistanceMeters(poiCoords)
		if dist > searchRadiusMeters {
			return true
		}
		categories := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			categories = append(categories, strings.ToLower(c))
		}
		candidates = append(candidates, types.PlacesCandidate{
			Name:           p.Name,
			PlaceID:        p.PlaceID,
			Coordinates:    poiCoords,
			Categories:     categories,
			Rating:         p.Rating,
			ReviewCount:    p.ReviewCount,
			OpenNow:        p.OpenNow,
			DistanceMeters: dist,
			IsComplex:      types.DeriveComplex(categories),
		})
		return true
	})

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})
	return candidates, nil
}
