package cache

import (
	"log/slog"
	"os"
	"testing"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

func TestChain_GetBackfillsUpperTiers(t *testing.T) {
	mem := NewMemory(8)
	file, err := NewFile(t.TempDir(), 0, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	chain := NewChain(mem, file)

	key := testKey(0)
	file.Set(key, testLabel("Hyde Park", types.TierPOI))

	got, ok := chain.Get(key)
	if !ok {
		t.Fatal("chain must hit on the file tier")
	}
	if got.DisplayName != "Hyde Park" {
		t.Errorf("got %q, want %q", got.DisplayName, "Hyde Park")
	}

	// The slower-tier hit must now be present in memory.
	if _, ok := mem.Get(key); !ok {
		t.Error("chain hit must backfill the memory tier")
	}
}

func TestChain_SetWritesAllTiers(t *testing.T) {
	mem := NewMemory(8)
	file, err := NewFile(t.TempDir(), 0, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	chain := NewChain(mem, file)

	key := testKey(0)
	chain.Set(key, testLabel("Praed St", types.TierStreet))

	if _, ok := mem.Get(key); !ok {
		t.Error("Set must reach the memory tier")
	}
	if _, ok := file.Get(key); !ok {
		t.Error("Set must reach the file tier")
	}
}

func TestChain_PurgeReachesAllTiers(t *testing.T) {
	mem := NewMemory(8)
	file, err := NewFile(t.TempDir(), 0, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	chain := NewChain(mem, file)

	key := testKey(0)
	chain.Set(key, testLabel("Zone 4", types.TierArea))

	if err := chain.Purge(func(l types.LocationLabel) bool { return l.DisplayName == "Zone 4" }); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if _, ok := chain.Get(key); ok {
		t.Error("purged entry must be gone from every tier")
	}
}

func TestChain_MissWhenEmpty(t *testing.T) {
	chain := NewChain(NewMemory(8))
	if _, ok := chain.Get(testKey(0)); ok {
		t.Error("empty chain reported a hit")
	}
}
