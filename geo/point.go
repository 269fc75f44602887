package geo

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// GeoPoint is a WGS84 coordinate in decimal degrees. Values are not range checked.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// FromLonLat converts a GeoJSON position into a GeoPoint.
func FromLonLat(p orb.Point) GeoPoint {
	return GeoPoint{Latitude: p[1], Longitude: p[0]}
}

// LonLat returns the point in GeoJSON axis order.
func (p GeoPoint) LonLat() orb.Point { return orb.Point{p.Longitude, p.Latitude} }

// LatLon returns the point with latitude on the X axis.
func (p GeoPoint) LatLon() orb.Point { return orb.Point{p.Latitude, p.Longitude} }

// MarshalJSON encodes the point as [latitude, longitude].
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Latitude, p.Longitude})
}

// UnmarshalJSON decodes a [latitude, longitude] pair.
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("geo point: expected [latitude, longitude], got %d values", len(pair))
	}
	p.Latitude, p.Longitude = pair[0], pair[1]
	return nil
}
