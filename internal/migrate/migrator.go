// Package migrate backfills labels onto stored records after a rules-version
// bump, in small rate-friendly batches.
package migrate

import (
	"context"
	"log/slog"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/cache"
	"github.com/nickjlamb/HushMap-sub001/internal/format"
	"github.com/nickjlamb/HushMap-sub001/internal/resolver"
	"github.com/nickjlamb/HushMap-sub001/internal/store"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

const (
	defaultBatchSize    = 50
	defaultMaxBatches   = 4
	batchFailureBackoff = 400 * time.Millisecond
)

// Migrator resolves labels for records that predate the current rules
// version. Each run is bounded so a large backlog drains across app sessions
// instead of hammering the providers in one go.
type Migrator struct {
	store      store.RecordStore
	resolver   *resolver.Resolver
	cache      cache.Store
	logger     *slog.Logger
	batchSize  int
	maxBatches int
	startDelay time.Duration
	sleep      func(time.Duration)
}

func New(st store.RecordStore, res *resolver.Resolver, labelCache cache.Store, logger *slog.Logger, batchSize, maxBatches int, startDelay time.Duration) *Migrator {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxBatches <= 0 {
		maxBatches = defaultMaxBatches
	}
	return &Migrator{
		store:      st,
		resolver:   res,
		cache:      labelCache,
		logger:     logger.With("component", "migrator"),
		batchSize:  batchSize,
		maxBatches: maxBatches,
		startDelay: startDelay,
		sleep:      time.Sleep,
	}
}

// Start runs one bounded backfill pass in the background after the start
// delay, keeping startup latency out of the critical path.
func (m *Migrator) Start(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.startDelay):
		}
		if err := m.Run(ctx); err != nil {
			m.logger.Error("backfill pass failed", "error", err)
		}
	}()
}

// Run executes one backfill pass: purge any synthetic placeholders that leaked
// into the cache, then resolve up to maxBatches batches of unresolved records.
// A failed batch is logged and backed off, and still consumes one of the batch
// slots; the records it covered wait for the next pass.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.cache.Purge(func(label types.LocationLabel) bool {
		return format.IsSynthetic(label.DisplayName)
	}); err != nil {
		m.logger.Warn("synthetic purge failed, continuing with backfill", "error", err)
	}

	resolved := 0
	for batch := 0; batch < m.maxBatches; batch++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		records, err := m.store.FetchUnresolved(ctx, m.batchSize)
		if err != nil {
			m.logger.Warn("batch fetch failed, backing off", "batch", batch, "error", err)
			m.sleep(batchFailureBackoff)
			continue
		}
		if len(records) == 0 {
			break
		}

		for i := range records {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.resolver.ResolveRecord(ctx, &records[i])
			if records[i].Resolved() {
				resolved++
			}
		}
		if err := m.store.Save(ctx, records); err != nil {
			m.logger.Warn("batch save failed, backing off", "batch", batch, "error", err)
			m.sleep(batchFailureBackoff)
			continue
		}

		// A short batch means the backlog is drained.
		if len(records) < m.batchSize {
			break
		}
	}

	remaining, err := m.store.CountUnresolved(ctx)
	if err != nil {
		m.logger.Warn("failed to count remaining backlog", "error", err)
	} else {
		m.logger.Info("backfill pass complete", "resolved", resolved, "remaining", remaining)
	}
	return nil
}
