package types

import (
	"fmt"
	"math"
	"strings"
)

// RulesVersion is bumped whenever resolution behavior changes in a way that
// should invalidate previously resolved labels. The backfill migrator
// re-resolves records carrying an older version.
const RulesVersion = 3

// quantFactor is the multiplicative grid factor for cache keys. 1/4452 of a
// degree of latitude is roughly 25 m, so coordinates within the same ~25 m
// cell collapse to one key.
const quantFactor = 4452.0

// LocationKey is the quantized identity of a resolution request, used as the
// cache index. Immutable once constructed.
type LocationKey struct {
	LatCell      int64
	LonCell      int64
	Locale       string
	RulesVersion int
}

// NewLocationKey quantizes a coordinate onto the cache grid for the given
// locale partition and the current rules version.
func NewLocationKey(c Coords, locale string) LocationKey {
	return LocationKey{
		LatCell:      int64(math.Round(c.Latitude * quantFactor)),
		LonCell:      int64(math.Round(c.Longitude * quantFactor)),
		Locale:       locale,
		RulesVersion: RulesVersion,
	}
}

// Token returns a compact, URL- and filename-safe representation of the key.
func (k LocationKey) Token() string {
	return fmt.Sprintf("%d_%d_%s_v%d", k.LatCell, k.LonCell, sanitizeLocale(k.Locale), k.RulesVersion)
}

// sanitizeLocale keeps the token filesystem-safe; locale partitions may be
// IANA zone names like "Europe/London".
func sanitizeLocale(locale string) string {
	if locale == "" {
		return "default"
	}
	var b strings.Builder
	b.Grow(len(locale))
	for _, r := range locale {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
