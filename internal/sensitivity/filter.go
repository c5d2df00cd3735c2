// Package sensitivity classifies candidate places as privacy-sensitive so
// they are never surfaced as precise labels. Medical, educational, religious,
// governmental/emergency and care venues all qualify.
package sensitivity

import (
	"regexp"
	"strings"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// sensitiveCategories is the closed category/tag set. A category match is
// immediately sensitive and overrides a name that would otherwise look safe.
var sensitiveCategories = map[string]struct{}{
	// medical
	"hospital":       {},
	"clinic":         {},
	"doctor":         {},
	"doctors":        {},
	"dentist":        {},
	"pharmacy":       {},
	"medical center": {},
	"medical centre": {},
	"health":         {},
	// educational
	"school":         {},
	"primary school": {},
	"kindergarten":   {},
	"nursery":        {},
	"childcare":      {},
	// religious
	"place of worship": {},
	"church":           {},
	"mosque":           {},
	"temple":           {},
	"synagogue":        {},
	// governmental / emergency
	"police":       {},
	"courthouse":   {},
	"prison":       {},
	"fire station": {},
	// care / shelter institutions
	"shelter":       {},
	"care home":     {},
	"nursing home":  {},
	"rehab center":  {},
	"rehab centre":  {},
	"social agency": {},
}

// namePattern is a case-insensitive, word-boundary anchored match over the
// display name. Word boundaries are mandatory: "Courtney House" and
// "Churchill Arms" must not match "court"/"church". "court" is anchored to
// the end of the name so "Crown Court" matches but "Court Road Cafe" does not.
var namePattern = regexp.MustCompile(`(?i)\b(hospital|hospice|clinic|courthouse|mosque|church|temple|synagogue|gurdwara|chapel|primary school|secondary school|infant school|nursery|kindergarten|childcare|gp|surgery|pharmacy|police|prison|probation|shelter|refuge|care home|nursing home|rehab|sexual health|maternity)\b|\b(court|tribunal)\s*$`)

// Filter decides whether a candidate may appear as a precise label.
type Filter struct{}

func New() *Filter { return &Filter{} }

// Check reports whether the candidate is privacy-sensitive. Categories are
// checked before the name so a sanitized name cannot mask a sensitive venue.
func (f *Filter) Check(c types.PlacesCandidate) bool {
	if f.SensitiveCategory(c.Categories) {
		return true
	}
	return f.SensitiveName(c.Name)
}

// SensitiveCategory reports whether any tag is in the closed category set.
func (f *Filter) SensitiveCategory(categories []string) bool {
	for _, c := range categories {
		if _, ok := sensitiveCategories[strings.ToLower(strings.TrimSpace(c))]; ok {
			return true
		}
	}
	return false
}

// SensitiveName reports whether the name contains a sensitive term on a word
// boundary. Embedded substrings inside larger words never match.
func (f *Filter) SensitiveName(name string) bool {
	return namePattern.MatchString(strings.TrimSpace(name))
}
