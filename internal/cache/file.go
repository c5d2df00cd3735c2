package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

const (
	fileExt            = ".label.json"
	defaultFileCeiling = 4096
	sweepHeadroom      = 256
)

// File is the persistent cache tier: one JSON file per key token under a
// directory that callers should exclude from backups. Writes go to a temp
// file and are renamed into place so readers never see a torn label.
type File struct {
	dir     string
	ceiling int
	logger  *slog.Logger
	now     func() time.Time
}

// NewFile creates the directory if needed and returns a file-backed store.
func NewFile(dir string, ceiling int, logger *slog.Logger) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	if ceiling <= 0 {
		ceiling = defaultFileCeiling
	}
	return &File{
		dir:     dir,
		ceiling: ceiling,
		logger:  logger.With("component", "file-cache"),
		now:     time.Now,
	}, nil
}

func (f *File) path(key types.LocationKey) string {
	return filepath.Join(f.dir, key.Token()+fileExt)
}

func (f *File) Get(key types.LocationKey) (*types.LocationLabel, bool) {
	path := f.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var label types.LocationLabel
	if err := json.Unmarshal(data, &label); err != nil {
		// Corrupt entry: drop it and report a miss.
		f.logger.Warn("removing corrupt cache entry", "path", path, "error", err)
		_ = os.Remove(path)
		return nil, false
	}
	if label.Expired(f.now()) {
		_ = os.Remove(path)
		return nil, false
	}
	return &label, true
}

func (f *File) Set(key types.LocationKey, label types.LocationLabel) {
	data, err := json.Marshal(label)
	if err != nil {
		f.logger.Error("failed to encode label", "error", err)
		return
	}

	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		f.logger.Error("failed to write cache entry", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		f.logger.Error("failed to publish cache entry", "path", path, "error", err)
		_ = os.Remove(tmp)
	}
}

func (f *File) Evict(olderThan *time.Time) error {
	if olderThan == nil {
		if err := os.RemoveAll(f.dir); err != nil {
			return fmt.Errorf("failed to clear cache dir: %w", err)
		}
		return os.MkdirAll(f.dir, 0o755)
	}

	entries, err := f.list()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.modTime.Before(*olderThan) {
			_ = os.Remove(e.path)
		}
	}
	return nil
}

func (f *File) Purge(pred func(types.LocationLabel) bool) error {
	entries, err := f.list()
	if err != nil {
		return err
	}

	removed := 0
	for _, e := range entries {
		data, err := os.ReadFile(e.path)
		if err != nil {
			continue
		}
		var label types.LocationLabel
		if err := json.Unmarshal(data, &label); err != nil {
			// Undecodable entries go too; purge doubles as a repair pass.
			_ = os.Remove(e.path)
			removed++
			continue
		}
		if pred(label) {
			_ = os.Remove(e.path)
			removed++
		}
	}
	if removed > 0 {
		f.logger.Info("purged cache entries", "removed", removed)
	}
	return nil
}

// Sweep trims the store back under its file-count ceiling, removing the
// oldest entries first and leaving headroom so sweeps stay infrequent.
func (f *File) Sweep() error {
	entries, err := f.list()
	if err != nil {
		return err
	}
	if len(entries) <= f.ceiling {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].modTime.Before(entries[j].modTime) })
	target := f.ceiling - sweepHeadroom
	if target < 0 {
		target = 0
	}
	for _, e := range entries[:len(entries)-target] {
		_ = os.Remove(e.path)
	}
	f.logger.Info("size-cap sweep complete", "removed", len(entries)-target, "remaining", target)
	return nil
}

// StartSweeper runs Sweep on an interval until the context is cancelled.
func (f *File) StartSweeper(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := f.Sweep(); err != nil {
					f.logger.Error("cache sweep failed", "error", err)
				}
			}
		}
	}()
}

type fileEntry struct {
	path    string
	modTime time.Time
}

func (f *File) list() ([]fileEntry, error) {
	var out []fileEntry
	err := filepath.WalkDir(f.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			return nil
		}
		out = append(out, fileEntry{path: path, modTime: info.ModTime()})
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to scan cache dir: %w", err)
	}
	return out, nil
}
