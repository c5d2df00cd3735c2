package types

import "time"

// Record is a contributed sensory reading owned by the host application. The
// resolver fills in the label fields in place; it never creates records or
// manages their lifecycle.
type Record struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Resolved label fields. DisplayName is empty until resolution succeeds.
	DisplayName  string     `gorm:"size:160" json:"display_name"`
	Tier         Tier       `json:"tier"`
	Confidence   float64    `json:"confidence"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	RulesVersion int        `gorm:"index" json:"rules_version"`
	PlaceID      string     `gorm:"size:128" json:"place_id,omitempty"`

	// AreaOnly is set when the contributor asked for area-level privacy on
	// this record regardless of global settings.
	AreaOnly bool `json:"area_only"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Record) TableName() string { return "records" }

// Coords returns the record's coordinate.
func (r *Record) Coords() Coords {
	return NewCoords(r.Latitude, r.Longitude)
}

// Resolved reports whether the record carries a label produced under the
// current resolution rules. Unresolved or stale records are backfill targets.
func (r *Record) Resolved() bool {
	return r.DisplayName != "" && r.RulesVersion >= RulesVersion
}
