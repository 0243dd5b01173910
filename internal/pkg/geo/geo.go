package geo

import "math"

const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Location is a resolved postal code: coordinates plus the administrative
// metadata geocoders usually return alongside them.
type Location struct {
	Point
	City   string
	Region string
}

// DistanceMeters returns the great-circle distance between two points using
// the haversine formula. Accuracy is within ~0.5% of true geodesic distance,
// which is more than enough for nearest-store ranking.
func DistanceMeters(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// MilesToMeters converts statute miles to meters.
func MilesToMeters(mi float64) float64 {
	return mi * 1609.344
}
