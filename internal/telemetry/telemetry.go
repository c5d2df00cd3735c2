// Package telemetry tracks resolver behavior both as process-lifetime
// counters (logged and reset periodically) and as prometheus metrics exposed
// on /metrics.
package telemetry

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	resolutionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hushmap_resolutions_total",
		Help: "Total number of label resolutions",
	})
	hedgedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hushmap_hedged_poi_total",
		Help: "Resolutions that returned a hedged POI label",
	})
	denylistSkipsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hushmap_denylist_skips_total",
		Help: "Candidates skipped by the sensitivity filter",
	})
	densityDowngradesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hushmap_density_downgrades_total",
		Help: "Resolutions downgraded to street tier by dense competition",
	})
	cacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hushmap_cache_hits_total",
		Help: "Label cache hits",
	})
	cacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hushmap_cache_misses_total",
		Help: "Label cache misses",
	})
	providerCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hushmap_provider_calls_total",
		Help: "External provider calls by provider name",
	}, []string{"provider"})
	providerFailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hushmap_provider_fails_total",
		Help: "External provider failures by provider name",
	}, []string{"provider"})
)

func init() {
	prometheus.MustRegister(resolutionsTotal)
	prometheus.MustRegister(hedgedTotal)
	prometheus.MustRegister(denylistSkipsTotal)
	prometheus.MustRegister(densityDowngradesTotal)
	prometheus.MustRegister(cacheHitsTotal)
	prometheus.MustRegister(cacheMissesTotal)
	prometheus.MustRegister(providerCallsTotal)
	prometheus.MustRegister(providerFailsTotal)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }

// Snapshot is a point-in-time copy of the process counters.
type Snapshot struct {
	Resolutions       int64 `json:"resolutions"`
	HedgedPOI         int64 `json:"hedged_poi"`
	DenylistSkips     int64 `json:"denylist_skips"`
	DensityDowngrades int64 `json:"density_downgrades"`
	CacheHits         int64 `json:"cache_hits"`
	CacheMisses       int64 `json:"cache_misses"`
}

// Telemetry keeps process-lifetime counters alongside the prometheus mirror.
// The atomic counters exist so periodic reports can read-and-reset, which
// prometheus counters do not allow.
type Telemetry struct {
	resolutions       atomic.Int64
	hedged            atomic.Int64
	denylistSkips     atomic.Int64
	densityDowngrades atomic.Int64
	cacheHits         atomic.Int64
	cacheMisses       atomic.Int64
}

func New() *Telemetry { return &Telemetry{} }

func (t *Telemetry) IncResolutions() {
	t.resolutions.Add(1)
	resolutionsTotal.Inc()
}

func (t *Telemetry) IncHedged() {
	t.hedged.Add(1)
	hedgedTotal.Inc()
}

func (t *Telemetry) IncDenylistSkips() {
	t.denylistSkips.Add(1)
	denylistSkipsTotal.Inc()
}

func (t *Telemetry) IncDensityDowngrades() {
	t.densityDowngrades.Add(1)
	densityDowngradesTotal.Inc()
}

func (t *Telemetry) IncCacheHits() {
	t.cacheHits.Add(1)
	cacheHitsTotal.Inc()
}

func (t *Telemetry) IncCacheMisses() {
	t.cacheMisses.Add(1)
	cacheMissesTotal.Inc()
}

// IncProviderCall records an external call; failed marks it as a failure.
func (t *Telemetry) IncProviderCall(provider string, failed bool) {
	providerCallsTotal.WithLabelValues(provider).Inc()
	if failed {
		providerFailsTotal.WithLabelValues(provider).Inc()
	}
}

// Snapshot returns the current counter values without resetting them.
func (t *Telemetry) Snapshot() Snapshot {
	return Snapshot{
		Resolutions:       t.resolutions.Load(),
		HedgedPOI:         t.hedged.Load(),
		DenylistSkips:     t.denylistSkips.Load(),
		DensityDowngrades: t.densityDowngrades.Load(),
		CacheHits:         t.cacheHits.Load(),
		CacheMisses:       t.cacheMisses.Load(),
	}
}

// Reset zeroes the process counters. The prometheus mirror is cumulative and
// is left alone.
func (t *Telemetry) Reset() {
	t.resolutions.Store(0)
	t.hedged.Store(0)
	t.denylistSkips.Store(0)
	t.densityDowngrades.Store(0)
	t.cacheHits.Store(0)
	t.cacheMisses.Store(0)
}

// StartReporter logs and resets the process counters on an interval until
// the context is cancelled.
func (t *Telemetry) StartReporter(ctx context.Context, every time.Duration, logger *slog.Logger) {
	log := logger.With("component", "telemetry")
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				snap := t.Snapshot()
				log.Info("resolver telemetry",
					"resolutions", snap.Resolutions,
					"hedged_poi", snap.HedgedPOI,
					"denylist_skips", snap.DenylistSkips,
					"density_downgrades", snap.DensityDowngrades,
					"cache_hits", snap.CacheHits,
					"cache_misses", snap.CacheMisses,
				)
				t.Reset()
			}
		}
	}()
}
