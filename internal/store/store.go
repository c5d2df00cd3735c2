// Package store persists sensory reading records and serves the backfill
// migrator's work queue.
package store

import (
	"context"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// RecordStore is the persistence boundary for reading records.
type RecordStore interface {
	// FetchUnresolved returns up to limit records that have no label yet or
	// were labelled under an older rules version, oldest first.
	FetchUnresolved(ctx context.Context, limit int) ([]types.Record, error)
	// Save upserts the given records.
	Save(ctx context.Context, records []types.Record) error
	// CountUnresolved reports how many records still need resolution.
	CountUnresolved(ctx context.Context) (int64, error)
}
