package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DriverGeohashPrecision gives cells of roughly 150m, fine enough for
// dispatch tracking on the island road network.
const DriverGeohashPrecision = 7

// EncodePosition converts a position to a geohash cell string
func EncodePosition(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) GeoPoint {
	lat, lng := geohash.Decode(hash)
	return GeoPoint{Latitude: lat, Longitude: lng}
}

// NeighborCells returns the neighboring geohash cells of a given cell
func NeighborCells(hash string) []string {
	return geohash.Neighbors(hash)
}

// HaversineKm calculates the distance between two points in kilometers
func HaversineKm(p1, p2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
