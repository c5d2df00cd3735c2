package types

import "testing"

func TestCoords_DistanceMeters(t *testing.T) {
	a := NewCoords(51.50000, -0.17000)
	b := NewCoords(51.50090, -0.17000) // ~100 m due north

	d := a.DistanceMeters(b)
	if d < 95 || d > 105 {
		t.Errorf("distance = %v m, want ~100 m", d)
	}
	if a.DistanceMeters(a) != 0 {
		t.Errorf("self distance = %v, want 0", a.DistanceMeters(a))
	}
}

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{"london", 51.5, -0.17, true},
		{"equator", 0, 0, true},
		{"north pole", 90, 0, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -90.1, 0, false},
		{"lon too high", 0, 180.1, false},
		{"lon too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoords(tt.lat, tt.lon)
			if got := c.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}
