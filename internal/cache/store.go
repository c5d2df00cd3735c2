// Package cache stores resolved location labels keyed by quantized location.
// Two tiers (memory and disk) sit behind one contract; an optional redis tier
// can be layered in for shared deployments.
package cache

import (
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// Store is the cache contract shared by all tiers. Implementations must
// tolerate concurrent reads during writes and purges; a Get racing a Set may
// see either value but never a torn one.
type Store interface {
	// Get returns the cached label for the key, or a miss. Expired entries
	// are treated as misses and removed as a side effect.
	Get(key types.LocationKey) (*types.LocationLabel, bool)

	// Set stores the label under the key, replacing any previous entry.
	Set(key types.LocationKey, label types.LocationLabel)

	// Evict removes entries older than the cutoff. A nil cutoff clears the
	// whole store.
	Evict(olderThan *time.Time) error

	// Purge removes every entry whose decoded label matches the predicate.
	// Undecodable entries are removed as a side effect.
	Purge(pred func(types.LocationLabel) bool) error
}
