package types

import "time"

// LocationLabel is a resolved, cacheable location name. Labels are never
// mutated after creation; callers replace them instead.
type LocationLabel struct {
	DisplayName string     `json:"display_name"`
	Tier        Tier       `json:"tier"`
	Confidence  float64    `json:"confidence"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PlaceID     string     `json:"place_id,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the label has passed its expiry. A label without an
// expiry never expires by itself; eviction is the cache's concern.
func (l LocationLabel) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
