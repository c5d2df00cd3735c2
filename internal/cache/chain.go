package cache

import (
	"errors"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// Chain layers cache tiers fastest-first. Reads return the first hit and
// backfill the tiers above it; writes, evictions and purges go to every tier.
type Chain struct {
	tiers []Store
}

func NewChain(tiers ...Store) *Chain {
	return &Chain{tiers: tiers}
}

func (c *Chain) Get(key types.LocationKey) (*types.LocationLabel, bool) {
	for i, tier := range c.tiers {
		label, ok := tier.Get(key)
		if !ok {
			continue
		}
		for j := 0; j < i; j++ {
			c.tiers[j].Set(key, *label)
		}
		return label, true
	}
	return nil, false
}

func (c *Chain) Set(key types.LocationKey, label types.LocationLabel) {
	for _, tier := range c.tiers {
		tier.Set(key, label)
	}
}

func (c *Chain) Evict(olderThan *time.Time) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Evict(olderThan); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Chain) Purge(pred func(types.LocationLabel) bool) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Purge(pred); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
