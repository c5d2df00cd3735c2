package resolver

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/cache"
	"github.com/nickjlamb/HushMap-sub001/internal/config"
	"github.com/nickjlamb/HushMap-sub001/internal/format"
	"github.com/nickjlamb/HushMap-sub001/internal/locale"
	"github.com/nickjlamb/HushMap-sub001/internal/ratelimit"
	"github.com/nickjlamb/HushMap-sub001/internal/sensitivity"
	"github.com/nickjlamb/HushMap-sub001/internal/telemetry"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

const (
	// topCandidates is how many distance-ranked candidates are scored.
	topCandidates = 3

	// complexTieDelta is the confidence window inside which a complex venue
	// wins over a co-located competitor.
	complexTieDelta = 0.08

	// poiTTL bounds how long a third-party place name may be cached.
	poiTTL = 29 * 24 * time.Hour
)

// Options carries per-call resolution context.
type Options struct {
	// AreaOnly forces area-tier resolution for this call regardless of the
	// global kill-switch.
	AreaOnly bool
	// Locale overrides the cache partition. Empty selects the partition
	// derived from the coordinate.
	Locale string
	// AccuracyMeters is the horizontal accuracy of the fix, zero if unknown.
	AccuracyMeters float64
	// SessionToken groups provider calls for billing, when supported.
	SessionToken string
}

// Result is a resolved label plus ephemeral context that must not be cached.
type Result struct {
	types.LocationLabel
	OpenNow *bool `json:"open_now,omitempty"`
}

// Deps are the resolver's injected collaborators.
type Deps struct {
	Places    PlacesProvider
	Geocode   GeocodeProvider
	Area      AreaProvider
	Cache     cache.Store
	Limiter   *ratelimit.Limiter
	Tuning    *config.TuningStore
	Filter    *sensitivity.Filter
	Telemetry *telemetry.Telemetry
	Locales   locale.Service
	Logger    *slog.Logger
}

// Resolver turns a coordinate into a privacy-safe display label by trying
// POI, then street, then area resolution. Every path terminates in a label;
// callers never see an "unknown" placeholder or an error.
type Resolver struct {
	places    PlacesProvider
	geocode   GeocodeProvider
	area      AreaProvider
	cache     cache.Store
	limiter   *ratelimit.Limiter
	tuning    *config.TuningStore
	filter    *sensitivity.Filter
	telemetry *telemetry.Telemetry
	locales   locale.Service
	logger    *slog.Logger
	now       func() time.Time
}

func New(deps Deps) *Resolver {
	return &Resolver{
		places:    deps.Places,
		geocode:   deps.Geocode,
		area:      deps.Area,
		cache:     deps.Cache,
		limiter:   deps.Limiter,
		tuning:    deps.Tuning,
		filter:    deps.Filter,
		telemetry: deps.Telemetry,
		locales:   deps.Locales,
		logger:    deps.Logger.With("component", "resolver"),
		now:       time.Now,
	}
}

// Resolve produces a display label for the coordinate. With areaOnly set (per
// call or via the kill-switch) no POI or street provider is contacted at all.
func (r *Resolver) Resolve(ctx context.Context, coords types.Coords, opts Options) Result {
	r.telemetry.IncResolutions()
	tuning := r.tuning.Snapshot()
	areaOnly := opts.AreaOnly || tuning.AreaOnlyOverride

	partition := opts.Locale
	if partition == "" {
		partition = r.locales.Partition(coords.Latitude, coords.Longitude)
	}
	key := types.NewLocationKey(coords, partition)

	if cached, ok := r.cache.Get(key); ok && (!areaOnly || cached.Tier == types.TierArea) {
		r.telemetry.IncCacheHits()
		return Result{LocationLabel: *cached}
	}
	r.telemetry.IncCacheMisses()

	if areaOnly {
		return Result{LocationLabel: r.resolveArea(ctx, coords, key)}
	}

	if result, ok := r.resolvePOI(ctx, coords, key, tuning, opts); ok {
		return result
	}
	if label, ok := r.resolveStreet(ctx, coords, key); ok {
		return Result{LocationLabel: label}
	}
	return Result{LocationLabel: r.resolveArea(ctx, coords, key)}
}

type scoredCandidate struct {
	candidate  types.PlacesCandidate
	confidence float64
	snap       bool
}

func (r *Resolver) resolvePOI(ctx context.Context, coords types.Coords, key types.LocationKey, tuning config.Tuning, opts Options) (Result, bool) {
	candidates, err := ratelimit.Do(ctx, r.limiter, func(ctx context.Context) ([]types.PlacesCandidate, error) {
		return r.places.NearbyCandidates(ctx, coords, opts.SessionToken)
	})
	r.telemetry.IncProviderCall("places", err != nil)
	if err != nil {
		r.logger.Warn("places search failed, degrading to street tier", "error", err)
		return Result{}, false
	}

	inRadius := candidates[:0:0]
	for _, c := range candidates {
		if c.DistanceMeters <= tuning.MaxRadiusMeters {
			inRadius = append(inRadius, c)
		}
	}
	if len(inRadius) == 0 {
		return Result{}, false
	}
	sort.SliceStable(inRadius, func(i, j int) bool {
		return inRadius[i].DistanceMeters < inRadius[j].DistanceMeters
	})

	top := inRadius
	if len(top) > topCandidates {
		top = top[:topCandidates]
	}

	sctx := types.ScoringContext{AccuracyMeters: opts.AccuracyMeters}
	scored := make([]scoredCandidate, 0, len(top))
	for _, c := range top {
		confidence, snap := Score(c, inRadius, tuning, sctx)
		scored = append(scored, scoredCandidate{candidate: c, confidence: confidence, snap: snap})
	}
	sortScored(scored, tuning.DenseCompetitionMeters)

	belowThreshold := false
	for _, s := range scored {
		if r.filter.Check(s.candidate) {
			// Sensitive venues are never displayed, even hedged; a snap
			// match still falls through to the next candidate.
			r.telemetry.IncDenylistSkips()
			continue
		}
		switch {
		case s.snap:
			return r.finishPOI(key, s, false), true
		case s.confidence >= tuning.MinConfidenceDirect:
			return r.finishPOI(key, s, false), true
		case s.confidence >= tuning.MinConfidenceHedged:
			r.telemetry.IncHedged()
			return r.finishPOI(key, s, true), true
		}
		belowThreshold = true
	}

	// A downgrade only counts as density-driven when a displayable candidate
	// missed the confidence gates; denylist-only rejections are not ambiguity.
	if belowThreshold && denseCluster(inRadius, tuning.DenseCompetitionMeters) {
		r.telemetry.IncDensityDowngrades()
	}
	return Result{}, false
}

// sortScored orders candidates for selection: snap matches first, then
// complex venues among near-equal co-located pairs, then confidence, rating,
// review count and distance.
func sortScored(scored []scoredCandidate, denseMeters float64) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.snap != b.snap {
			return a.snap
		}
		if a.candidate.DistanceMeters <= denseMeters && b.candidate.DistanceMeters <= denseMeters &&
			math.Abs(a.confidence-b.confidence) < complexTieDelta &&
			a.candidate.IsComplex != b.candidate.IsComplex {
			return a.candidate.IsComplex
		}
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		if a.candidate.Rating != b.candidate.Rating {
			return a.candidate.Rating > b.candidate.Rating
		}
		if a.candidate.ReviewCount != b.candidate.ReviewCount {
			return a.candidate.ReviewCount > b.candidate.ReviewCount
		}
		return a.candidate.DistanceMeters < b.candidate.DistanceMeters
	})
}

// denseCluster reports whether any two candidates sit within the dense
// competition distance of each other, i.e. the POI pick was ambiguous.
func denseCluster(candidates []types.PlacesCandidate, denseMeters float64) bool {
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[i].Coordinates.DistanceMeters(candidates[j].Coordinates) <= denseMeters {
				return true
			}
		}
	}
	return false
}

func (r *Resolver) finishPOI(key types.LocationKey, s scoredCandidate, hedged bool) Result {
	name := s.candidate.Name
	if hedged {
		name = "near " + name
	}
	label := types.LocationLabel{
		DisplayName: name,
		Tier:        types.TierPOI,
		Confidence:  s.confidence,
		UpdatedAt:   r.now(),
		PlaceID:     s.candidate.PlaceID,
	}
	if label.PlaceID != "" {
		// Third-party place names go stale; cap how long we re-serve them.
		expires := label.UpdatedAt.Add(poiTTL)
		label.ExpiresAt = &expires
	}
	r.storeLabel(key, label)
	return Result{LocationLabel: label, OpenNow: s.candidate.OpenNow}
}

func (r *Resolver) resolveStreet(ctx context.Context, coords types.Coords, key types.LocationKey) (types.LocationLabel, bool) {
	addr, err := ratelimit.Do(ctx, r.limiter, func(ctx context.Context) (*StreetAddress, error) {
		return r.geocode.ReverseGeocode(ctx, coords)
	})
	r.telemetry.IncProviderCall("geocode", err != nil)
	if err != nil {
		r.logger.Warn("street resolution failed, degrading to area tier", "error", err)
		return types.LocationLabel{}, false
	}
	if addr == nil || addr.Short == "" {
		return types.LocationLabel{}, false
	}

	label := types.LocationLabel{
		DisplayName: addr.Short,
		Tier:        types.TierStreet,
		Confidence:  addr.Confidence,
		UpdatedAt:   r.now(),
	}
	r.storeLabel(key, label)
	return label, true
}

// resolveArea is the universal fallback; it always returns a label. When the
// provider has no data the synthesized placeholder is returned transiently
// and never cached.
func (r *Resolver) resolveArea(ctx context.Context, coords types.Coords, key types.LocationKey) types.LocationLabel {
	name, err := ratelimit.Do(ctx, r.limiter, func(ctx context.Context) (string, error) {
		return r.area.AreaName(ctx, coords)
	})
	r.telemetry.IncProviderCall("area", err != nil)
	if err != nil {
		r.logger.Warn("area lookup failed, synthesizing placeholder", "error", err)
		name = ""
	}

	display := format.Placeholder
	if name != "" {
		display = format.AreaName(name)
	}
	label := types.LocationLabel{
		DisplayName: display,
		Tier:        types.TierArea,
		Confidence:  1.0,
		UpdatedAt:   r.now(),
	}
	r.storeLabel(key, label)
	return label
}

// storeLabel writes through to the cache unless the label is a synthetic
// placeholder, which must never reach long-lived storage.
func (r *Resolver) storeLabel(key types.LocationKey, label types.LocationLabel) {
	if format.IsSynthetic(label.DisplayName) {
		return
	}
	r.cache.Set(key, label)
}
