package resolver

import (
	"strings"

	"github.com/nickjlamb/HushMap-sub001/internal/config"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// Scoring constants. The joint calibration is empirical; treat these as a
// tunable starting point rather than a provably optimal function.
const (
	typeBoostBase      = 0.12
	typeBoostStep      = 0.01
	ratingBoostMin     = 4.3
	ratingBoost        = 0.06
	reviewBoostHighMin = 200
	reviewBoostHigh    = 0.05
	reviewBoostLowMin  = 50
	reviewBoostLow     = 0.02
	competitionPenalty = 0.12
	accuracyPenalty1   = 0.08 // accuracy worse than 15 m
	accuracyPenalty2   = 0.07 // additionally, worse than 30 m
	closedPenalty      = 0.03
	maxCompetitors     = 3
)

// Score computes a confidence in [0, 1] and a snap flag for a candidate given
// its neighbors and per-call context. The function is pure and
// order-independent for the same inputs, which keeps scoring deterministic
// under test.
func Score(c types.PlacesCandidate, neighbors []types.PlacesCandidate, tuning config.Tuning, sctx types.ScoringContext) (float64, bool) {
	confidence := 1 - c.DistanceMeters/tuning.MaxRadiusMeters
	snap := c.DistanceMeters <= tuning.SnapWindowMeters

	if idx, ok := bestCategoryRank(c.Categories, tuning.PreferredCategories); ok {
		confidence += typeBoostBase - typeBoostStep*float64(idx)
	}

	if c.Rating >= ratingBoostMin {
		confidence += ratingBoost
	}
	switch {
	case c.ReviewCount >= reviewBoostHighMin:
		confidence += reviewBoostHigh
	case c.ReviewCount >= reviewBoostLowMin:
		confidence += reviewBoostLow
	}

	if hasNearbyCompetitor(c, neighbors, tuning.DenseCompetitionMeters) {
		confidence -= competitionPenalty
	}

	if sctx.AccuracyMeters > 15 {
		confidence -= accuracyPenalty1
	}
	if sctx.AccuracyMeters > 30 {
		confidence -= accuracyPenalty2
	}

	if c.OpenNow != nil && !*c.OpenNow {
		confidence -= closedPenalty
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return confidence, snap
}

// bestCategoryRank returns the lowest preference-list index matched by any of
// the candidate's tags. Earlier list entries score higher.
func bestCategoryRank(categories, preferred []string) (int, bool) {
	best := -1
	for _, tag := range categories {
		t := strings.ToLower(strings.TrimSpace(tag))
		for i, p := range preferred {
			if t == strings.ToLower(p) {
				if best < 0 || i < best {
					best = i
				}
				break
			}
		}
	}
	return best, best >= 0
}

// hasNearbyCompetitor reports whether any of the next few nearest neighbors
// sit within the dense-competition distance of the candidate, which makes the
// attribution ambiguous.
func hasNearbyCompetitor(c types.PlacesCandidate, neighbors []types.PlacesCandidate, denseMeters float64) bool {
	checked := 0
	for _, n := range neighbors {
		if n.PlaceID == c.PlaceID && n.Name == c.Name {
			continue
		}
		if checked >= maxCompetitors {
			break
		}
		checked++
		if c.Coordinates.DistanceMeters(n.Coordinates) <= denseMeters {
			return true
		}
	}
	return false
}
