package staticpoi

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

func samplePOIs() []POI {
	return []POI{
		{Name: "Hyde Park", PlaceID: "p1", Latitude: 51.50740, Longitude: -0.16573, Categories: []string{"Park"}},
		{Name: "Serpentine Cafe", PlaceID: "p2", Latitude: 51.50520, Longitude: -0.16800, Categories: []string{"Cafe"}, Rating: 4.4, ReviewCount: 120},
		{Name: "Paddington Station", PlaceID: "p3", Latitude: 51.51540, Longitude: -0.17580, Categories: []string{"Train Station"}},
	}
}

func TestNearbyCandidates_RadiusAndOrder(t *testing.T) {
	idx := NewIndex(samplePOIs())

	// Query next to Hyde Park; the station ~1 km away must not appear.
	got, err := idx.NearbyCandidates(context.Background(), types.NewCoords(51.50735, -0.16570), "")
	if err != nil {
		t.Fatalf("NearbyCandidates failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Name != "Hyde Park" {
		t.Errorf("candidate = %q, want Hyde Park", got[0].Name)
	}
	if got[0].DistanceMeters <= 0 || got[0].DistanceMeters > searchRadiusMeters {
		t.Errorf("distance = %v, want within (0, %d]", got[0].DistanceMeters, searchRadiusMeters)
	}
}

func TestNearbyCandidates_SortedByDistance(t *testing.T) {
	pois := []POI{
		{Name: "Far Shop", PlaceID: "f", Latitude: 51.50100, Longitude: -0.17000},
		{Name: "Near Shop", PlaceID: "n", Latitude: 51.50010, Longitude: -0.17000},
	}
	idx := NewIndex(pois)

	got, err := idx.NearbyCandidates(context.Background(), types.NewCoords(51.50000, -0.17000), "")
	if err != nil {
		t.Fatalf("NearbyCandidates failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Name != "Near Shop" {
		t.Errorf("first candidate = %q, want nearest", got[0].Name)
	}
	if got[0].DistanceMeters > got[1].DistanceMeters {
		t.Error("candidates must be ordered nearest first")
	}
}

func TestNearbyCandidates_DerivesMetadata(t *testing.T) {
	idx := NewIndex(samplePOIs())

	got, err := idx.NearbyCandidates(context.Background(), types.NewCoords(51.51540, -0.17580), "")
	if err != nil {
		t.Fatalf("NearbyCandidates failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if !got[0].IsComplex {
		t.Error("train station must be marked complex")
	}
	if got[0].Categories[0] != "train station" {
		t.Errorf("categories must be lowercased, got %v", got[0].Categories)
	}
}

func TestNearbyCandidates_EmptyIndex(t *testing.T) {
	idx := NewIndex(nil)
	got, err := idx.NearbyCandidates(context.Background(), types.NewCoords(51.5, -0.17), "")
	if err != nil {
		t.Fatalf("NearbyCandidates failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty index returned %d candidates", len(got))
	}
}

func TestLoadIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pois.json")
	data, err := json.Marshal(samplePOIs())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	idx, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	got, err := idx.NearbyCandidates(context.Background(), types.NewCoords(51.50740, -0.16573), "")
	if err != nil {
		t.Fatalf("NearbyCandidates failed: %v", err)
	}
	if len(got) == 0 {
		t.Error("loaded index returned no candidates near a known POI")
	}

	if _, err := LoadIndex(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadIndex must fail for a missing file")
	}
}
