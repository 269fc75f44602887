package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Area returns the surface of a [longitude, latitude] polygon in square metres.
// Holes are subtracted from the outer ring.
func Area(p orb.Polygon) float64 {
	return orbgeo.Area(p)
}

// LatLonRing builds a planar ring with latitude as X and longitude as Y.
func LatLonRing(points []GeoPoint) orb.Ring {
	r := make(orb.Ring, 0, len(points))
	for _, p := range points {
		r = append(r, p.LatLon())
	}
	return r
}

// RingContains reports whether pt lies inside a ring built by LatLonRing.
// Boundary points are inside. The test is planar on degrees, not geodesic.
func RingContains(r orb.Ring, pt GeoPoint) bool {
	if len(r) == 0 {
		return false
	}
	return planar.RingContains(r, pt.LatLon())
}

// LineLength returns the haversine length of a polyline in metres.
func LineLength(points []GeoPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, p.LonLat())
	}
	return orbgeo.LengthHaversine(ls)
}
