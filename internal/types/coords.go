package types

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Coords is a WGS84 coordinate pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Point returns the coordinate as an orb.Point (longitude first, per GeoJSON).
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DistanceMeters returns the haversine distance to another coordinate in meters.
func (c Coords) DistanceMeters(other Coords) float64 {
	return geo.Distance(c.Point(), other.Point())
}

// Valid reports whether the coordinate is within WGS84 bounds.
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coords) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}
