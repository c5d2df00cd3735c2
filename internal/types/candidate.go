package types

import "strings"

// PlacesCandidate is a point-of-interest returned by a nearby-search provider.
// Candidates are produced fresh per resolution call and never persisted; only
// the derived LocationLabel is cached.
type PlacesCandidate struct {
	Name           string
	PlaceID        string
	Coordinates    Coords
	Categories     []string
	Rating         float64 // 0–5, 0 when the provider has no rating
	ReviewCount    int
	OpenNow        *bool // nil when the provider has no hours data
	DistanceMeters float64
	IsComplex      bool
}

// complexVenueTags marks venue classes that contain many smaller places.
// A complex is preferred over a near-equal co-located candidate because
// "near Paddington Station" reads better than the kiosk inside it.
var complexVenueTags = map[string]struct{}{
	"mall":            {},
	"shopping mall":   {},
	"shopping centre": {},
	"shopping center": {},
	"airport":         {},
	"station":         {},
	"train station":   {},
	"metro station":   {},
	"bus station":     {},
	"university":      {},
	"college":         {},
	"hospital":        {},
	"stadium":         {},
}

// DeriveComplex reports whether any of the category tags identify the
// candidate as a mall/airport/station/university/hospital-class venue.
func DeriveComplex(categories []string) bool {
	for _, c := range categories {
		if _, ok := complexVenueTags[strings.ToLower(strings.TrimSpace(c))]; ok {
			return true
		}
	}
	return false
}

// ScoringContext carries per-call context that affects confidence scoring.
type ScoringContext struct {
	// AccuracyMeters is the horizontal accuracy of the originating fix.
	// Zero or negative means unknown.
	AccuracyMeters float64
}
