package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Pt is a shorthand constructor for Point.
func Pt(lat, lon float64) Point {
	return Point{Latitude: lat, Longitude: lon}
}

// Distance returns the great-circle distance between a and b in kilometres
// (haversine formula).
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// clamp against rounding drift for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// DistancePtr returns the distance from origin to p, or nil when p is nil.
func DistancePtr(origin Point, p *Point) *float64 {
	if p == nil {
		return nil
	}
	d := Distance(origin, *p)
	return &d
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
