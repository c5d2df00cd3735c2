package config

import "sync"

// Tuning is an immutable snapshot of the resolver's runtime parameters. The
// resolver takes a fresh snapshot on every call so operator writes take
// effect immediately.
type Tuning struct {
	MaxRadiusMeters        float64
	SnapWindowMeters       float64
	DenseCompetitionMeters float64
	MinConfidenceDirect    float64
	MinConfidenceHedged    float64
	PreferredCategories    []string
	// AreaOnlyOverride is the kill-switch: when set, every resolution is
	// forced to the area tier regardless of distance or confidence.
	AreaOnlyOverride bool
}

// TuningStore is a mutex-guarded key-value store for runtime tuning. It has
// no persistence of its own; seeds come from configuration and writes come
// from the operator surface.
type TuningStore struct {
	mu     sync.RWMutex
	tuning Tuning
}

// NewTuningStore seeds a tuning store from the loaded configuration, filling
// in defaults for anything unset.
func NewTuningStore(cfg ResolverConfig) *TuningStore {
	t := Tuning{
		MaxRadiusMeters:        cfg.MaxRadiusMeters,
		SnapWindowMeters:       cfg.SnapWindowMeters,
		DenseCompetitionMeters: cfg.DenseCompetitionMeters,
		MinConfidenceDirect:    cfg.MinConfidenceDirect,
		MinConfidenceHedged:    cfg.MinConfidenceHedged,
		PreferredCategories:    append([]string(nil), cfg.PreferredCategories...),
		AreaOnlyOverride:       cfg.AreaOnlyOverride,
	}
	if t.MaxRadiusMeters <= 0 {
		t.MaxRadiusMeters = 120
	}
	if t.SnapWindowMeters <= 0 {
		t.SnapWindowMeters = 12
	}
	if t.DenseCompetitionMeters <= 0 {
		t.DenseCompetitionMeters = 35
	}
	if t.MinConfidenceDirect <= 0 {
		t.MinConfidenceDirect = 0.62
	}
	if t.MinConfidenceHedged <= 0 {
		t.MinConfidenceHedged = 0.45
	}
	return &TuningStore{tuning: t}
}

// Snapshot returns a copy of the current tuning values.
func (s *TuningStore) Snapshot() Tuning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.tuning
	out.PreferredCategories = append([]string(nil), s.tuning.PreferredCategories...)
	return out
}

// SetAreaOnlyOverride flips the kill-switch.
func (s *TuningStore) SetAreaOnlyOverride(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuning.AreaOnlyOverride = on
}

// SetThresholds updates the confidence gates. Non-positive values leave the
// existing setting in place.
func (s *TuningStore) SetThresholds(direct, hedged float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if direct > 0 {
		s.tuning.MinConfidenceDirect = direct
	}
	if hedged > 0 {
		s.tuning.MinConfidenceHedged = hedged
	}
}

// SetDistances updates the geometric windows. Non-positive values leave the
// existing setting in place.
func (s *TuningStore) SetDistances(maxRadius, snapWindow, denseCompetition float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxRadius > 0 {
		s.tuning.MaxRadiusMeters = maxRadius
	}
	if snapWindow > 0 {
		s.tuning.SnapWindowMeters = snapWindow
	}
	if denseCompetition > 0 {
		s.tuning.DenseCompetitionMeters = denseCompetition
	}
}

// SetPreferredCategories replaces the ordered category preference list.
func (s *TuningStore) SetPreferredCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuning.PreferredCategories = append([]string(nil), categories...)
}
