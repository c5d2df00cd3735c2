package sensitivity

import (
	"testing"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

func TestSensitiveName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"hospital", "Central Hospital", true},
		{"clinic", "Harley Street Clinic", true},
		{"church", "St Mary's Church", true},
		{"mosque", "East London Mosque", true},
		{"primary school", "Oakwood Primary School", true},
		{"pharmacy", "Boots Pharmacy", true},
		{"police", "Paddington Police Station", true},
		{"trailing court", "Crown Court", true},
		{"trailing court spaced", "Magistrates Court ", true},
		{"refuge", "Haven Women's Refuge", true},
		{"care home", "Sunnyside Care Home", true},

		// Embedded substrings must never match.
		{"courtney house", "Courtney House", false},
		{"churchill arms", "Churchill Arms", false},
		{"court mid-name", "Court Road Cafe", false},
		{"templeton", "Templeton Gallery", false},
		{"ordinary pub", "The Red Lion", false},
		{"empty", "", false},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.SensitiveName(tt.input); got != tt.expected {
				t.Errorf("SensitiveName(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSensitiveCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		expected   bool
	}{
		{"hospital tag", []string{"hospital"}, true},
		{"mixed tags", []string{"cafe", "Place Of Worship"}, true},
		{"school tag", []string{"school"}, true},
		{"safe tags", []string{"cafe", "restaurant"}, false},
		{"no tags", nil, false},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.SensitiveCategory(tt.categories); got != tt.expected {
				t.Errorf("SensitiveCategory(%v) = %v, want %v", tt.categories, got, tt.expected)
			}
		})
	}
}

func TestCheck_CategoryOverridesName(t *testing.T) {
	f := New()

	// A sanitized name cannot mask a sensitive category.
	masked := types.PlacesCandidate{
		Name:       "The Willow Centre",
		Categories: []string{"clinic"},
	}
	if !f.Check(masked) {
		t.Error("candidate with sensitive category but safe name must be sensitive")
	}

	// A safe category does not excuse a sensitive name.
	named := types.PlacesCandidate{
		Name:       "Central Hospital",
		Categories: []string{"building"},
	}
	if !f.Check(named) {
		t.Error("candidate with sensitive name must be sensitive")
	}

	safe := types.PlacesCandidate{
		Name:       "Court Road Cafe",
		Categories: []string{"cafe"},
	}
	if f.Check(safe) {
		t.Error("Court Road Cafe must not be flagged")
	}
}
