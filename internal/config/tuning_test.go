package config

import "testing"

func TestNewTuningStore_Defaults(t *testing.T) {
	s := NewTuningStore(ResolverConfig{})
	got := s.Snapshot()

	if got.MaxRadiusMeters != 120 {
		t.Errorf("max radius = %v, want 120", got.MaxRadiusMeters)
	}
	if got.SnapWindowMeters != 12 {
		t.Errorf("snap window = %v, want 12", got.SnapWindowMeters)
	}
	if got.DenseCompetitionMeters != 35 {
		t.Errorf("dense competition = %v, want 35", got.DenseCompetitionMeters)
	}
	if got.MinConfidenceDirect != 0.62 {
		t.Errorf("direct threshold = %v, want 0.62", got.MinConfidenceDirect)
	}
	if got.MinConfidenceHedged != 0.45 {
		t.Errorf("hedged threshold = %v, want 0.45", got.MinConfidenceHedged)
	}
	if got.AreaOnlyOverride {
		t.Error("kill-switch must default to off")
	}
}

func TestTuningStore_PartialUpdates(t *testing.T) {
	s := NewTuningStore(ResolverConfig{})

	s.SetThresholds(0.7, 0)
	got := s.Snapshot()
	if got.MinConfidenceDirect != 0.7 {
		t.Errorf("direct threshold = %v, want 0.7", got.MinConfidenceDirect)
	}
	if got.MinConfidenceHedged != 0.45 {
		t.Errorf("zero hedged value must leave the setting alone, got %v", got.MinConfidenceHedged)
	}

	s.SetDistances(0, 15, 0)
	got = s.Snapshot()
	if got.MaxRadiusMeters != 120 || got.DenseCompetitionMeters != 35 {
		t.Error("zero distance values must leave settings alone")
	}
	if got.SnapWindowMeters != 15 {
		t.Errorf("snap window = %v, want 15", got.SnapWindowMeters)
	}
}

func TestTuningStore_KillSwitch(t *testing.T) {
	s := NewTuningStore(ResolverConfig{})
	s.SetAreaOnlyOverride(true)
	if !s.Snapshot().AreaOnlyOverride {
		t.Error("kill-switch did not engage")
	}
	s.SetAreaOnlyOverride(false)
	if s.Snapshot().AreaOnlyOverride {
		t.Error("kill-switch did not release")
	}
}

func TestTuningStore_SnapshotIsolation(t *testing.T) {
	s := NewTuningStore(ResolverConfig{PreferredCategories: []string{"park", "cafe"}})
	snap := s.Snapshot()
	snap.PreferredCategories[0] = "mutated"

	if s.Snapshot().PreferredCategories[0] != "park" {
		t.Error("mutating a snapshot must not affect the store")
	}
}
