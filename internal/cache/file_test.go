package cache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/format"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

func newTestFileCache(t *testing.T, ceiling int) *File {
	t.Helper()
	f, err := NewFile(t.TempDir(), ceiling, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	return f
}

func TestFile_SetGetRoundTrip(t *testing.T) {
	f := newTestFileCache(t, 0)
	key := testKey(0)

	f.Set(key, testLabel("Paddington Station", types.TierPOI))
	got, ok := f.Get(key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.DisplayName != "Paddington Station" {
		t.Errorf("got %q, want %q", got.DisplayName, "Paddington Station")
	}
	if got.Tier != types.TierPOI {
		t.Errorf("tier = %v, want %v", got.Tier, types.TierPOI)
	}
}

func TestFile_ExpiredEntryRemovedOnRead(t *testing.T) {
	f := newTestFileCache(t, 0)
	key := testKey(0)

	past := time.Now().Add(-time.Minute)
	label := testLabel("Closed Kiosk", types.TierPOI)
	label.ExpiresAt = &past
	f.Set(key, label)

	if _, ok := f.Get(key); ok {
		t.Fatal("expired entry must be a miss")
	}
	if _, err := os.Stat(filepath.Join(f.dir, key.Token()+fileExt)); !os.IsNotExist(err) {
		t.Error("expired entry must be deleted from disk")
	}
}

func TestFile_CorruptEntryIsMissAndRemoved(t *testing.T) {
	f := newTestFileCache(t, 0)
	key := testKey(0)

	path := filepath.Join(f.dir, key.Token()+fileExt)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to plant corrupt entry: %v", err)
	}

	if _, ok := f.Get(key); ok {
		t.Fatal("corrupt entry must be a miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry must be deleted")
	}
}

func TestFile_PurgeSyntheticAndUndecodable(t *testing.T) {
	f := newTestFileCache(t, 0)

	f.Set(testKey(0), testLabel("Camden area", types.TierArea))
	f.Set(testKey(1), testLabel("Area 12345", types.TierArea))
	corrupt := filepath.Join(f.dir, "999_999_default_v3"+fileExt)
	if err := os.WriteFile(corrupt, []byte("junk"), 0o644); err != nil {
		t.Fatalf("failed to plant corrupt entry: %v", err)
	}

	err := f.Purge(func(l types.LocationLabel) bool {
		return format.IsSynthetic(l.DisplayName)
	})
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	if _, ok := f.Get(testKey(0)); !ok {
		t.Error("legitimate area label must survive the purge")
	}
	if _, ok := f.Get(testKey(1)); ok {
		t.Error("synthetic grid label must be purged")
	}
	if _, err := os.Stat(corrupt); !os.IsNotExist(err) {
		t.Error("undecodable entry must be removed by purge")
	}
}

func TestFile_EvictAllRecreatesDir(t *testing.T) {
	f := newTestFileCache(t, 0)
	f.Set(testKey(0), testLabel("A", types.TierPOI))

	if err := f.Evict(nil); err != nil {
		t.Fatalf("Evict(nil) failed: %v", err)
	}
	if _, ok := f.Get(testKey(0)); ok {
		t.Error("entry must be gone after full evict")
	}

	// The store must remain usable.
	f.Set(testKey(1), testLabel("B", types.TierStreet))
	if _, ok := f.Get(testKey(1)); !ok {
		t.Error("store must accept writes after full evict")
	}
}

func TestFile_SweepTrimsOldestUnderCeiling(t *testing.T) {
	f := newTestFileCache(t, 300)

	// Ceiling 300 with headroom 256 leaves a target of 44 entries.
	for i := 0; i < 310; i++ {
		f.Set(testKey(i), testLabel(fmt.Sprintf("Place %d", i), types.TierPOI))
	}
	if err := f.Sweep(); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	entries, err := f.list()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 44 {
		t.Errorf("entries after sweep = %d, want 44", len(entries))
	}
}

func TestFile_SweepNoopUnderCeiling(t *testing.T) {
	f := newTestFileCache(t, 300)
	for i := 0; i < 10; i++ {
		f.Set(testKey(i), testLabel(fmt.Sprintf("Place %d", i), types.TierPOI))
	}
	if err := f.Sweep(); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	entries, err := f.list()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("sweep under ceiling removed entries: %d left, want 10", len(entries))
	}
}
