package nominatim

import "testing"

func TestAddress_Street(t *testing.T) {
	tests := []struct {
		name     string
		addr     Address
		expected string
	}{
		{"road wins", Address{Road: "Praed St", Pedestrian: "South Bank"}, "Praed St"},
		{"pedestrian fallback", Address{Pedestrian: "South Bank"}, "South Bank"},
		{"footway fallback", Address{Footway: "Jubilee Walk"}, "Jubilee Walk"},
		{"nothing", Address{City: "London"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Street(); got != tt.expected {
				t.Errorf("Street() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAddress_Locality(t *testing.T) {
	tests := []struct {
		name     string
		addr     Address
		expected string
	}{
		{"neighbourhood first", Address{Neighbourhood: "Paddington", City: "London"}, "Paddington"},
		{"suburb before city", Address{Suburb: "Camden", City: "London"}, "Camden"},
		{"city last resort", Address{City: "London"}, "London"},
		{"village", Address{Village: "Grasmere"}, "Grasmere"},
		{"nothing", Address{Country: "UK"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Locality(); got != tt.expected {
				t.Errorf("Locality() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAddress_Area(t *testing.T) {
	tests := []struct {
		name     string
		addr     Address
		expected string
	}{
		{"suburb preferred", Address{Suburb: "Camden", City: "London", State: "England"}, "Camden"},
		{"city fallback", Address{City: "London", State: "England"}, "London"},
		{"state last", Address{State: "England"}, "England"},
		{"county before state", Address{County: "Cumbria", State: "England"}, "Cumbria"},
		{"nothing", Address{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Area(); got != tt.expected {
				t.Errorf("Area() = %q, want %q", got, tt.expected)
			}
		})
	}
}
