package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/format"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

func testKey(i int) types.LocationKey {
	return types.NewLocationKey(types.NewCoords(51.0+float64(i)*0.01, -0.17), "Europe/London")
}

func testLabel(name string, tier types.Tier) types.LocationLabel {
	return types.LocationLabel{
		DisplayName: name,
		Tier:        tier,
		Confidence:  0.9,
		UpdatedAt:   time.Now(),
	}
}

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(8)
	key := testKey(0)

	if _, ok := m.Get(key); ok {
		t.Fatal("empty cache reported a hit")
	}

	m.Set(key, testLabel("Hyde Park", types.TierPOI))
	got, ok := m.Get(key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.DisplayName != "Hyde Park" {
		t.Errorf("got %q, want %q", got.DisplayName, "Hyde Park")
	}
}

func TestMemory_ExpiredEntriesAreMisses(t *testing.T) {
	m := NewMemory(8)
	key := testKey(0)

	past := time.Now().Add(-time.Hour)
	label := testLabel("Stale Cafe", types.TierPOI)
	label.ExpiresAt = &past
	m.Set(key, label)

	if _, ok := m.Get(key); ok {
		t.Error("expired entry must be a miss")
	}
	if m.Len() != 0 {
		t.Errorf("expired entry must be deleted on read, len = %d", m.Len())
	}
}

func TestMemory_CapacityEvictsOldest(t *testing.T) {
	m := NewMemory(3)
	for i := 0; i < 4; i++ {
		m.Set(testKey(i), testLabel(fmt.Sprintf("Place %d", i), types.TierPOI))
	}

	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
	if _, ok := m.Get(testKey(0)); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := m.Get(testKey(3)); !ok {
		t.Error("newest entry must survive eviction")
	}
}

func TestMemory_EvictAll(t *testing.T) {
	m := NewMemory(8)
	m.Set(testKey(0), testLabel("A", types.TierPOI))
	m.Set(testKey(1), testLabel("B", types.TierStreet))

	if err := m.Evict(nil); err != nil {
		t.Fatalf("Evict(nil) failed: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("len after full evict = %d, want 0", m.Len())
	}
}

func TestMemory_EvictOlderThan(t *testing.T) {
	m := NewMemory(8)
	m.Set(testKey(0), testLabel("Old", types.TierPOI))

	cutoff := time.Now().Add(time.Minute)
	if err := m.Evict(&cutoff); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}
	if _, ok := m.Get(testKey(0)); ok {
		t.Error("entry stored before the cutoff must be evicted")
	}
}

func TestMemory_PurgeSynthetic(t *testing.T) {
	m := NewMemory(8)
	m.Set(testKey(0), testLabel("Camden area", types.TierArea))
	m.Set(testKey(1), testLabel("Area 12345", types.TierArea))

	err := m.Purge(func(l types.LocationLabel) bool {
		return format.IsSynthetic(l.DisplayName)
	})
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	if _, ok := m.Get(testKey(0)); !ok {
		t.Error("legitimate area label must survive the purge")
	}
	if _, ok := m.Get(testKey(1)); ok {
		t.Error("synthetic grid label must be purged")
	}
}
