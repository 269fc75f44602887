// Package greenzone reads the proposed low-emission zone polygon and counts
// the bus arrivals scheduled inside it.
package greenzone

import (
	"fmt"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/gtfs"
)

// GreenZone is the zone outline with its area and daily bus traffic.
type GreenZone struct {
	PolygonBounds                 []geo.GeoPoint `json:"polygon_bounds"`
	AreaInSquareMetres            float64        `json:"area_in_square_metres"`
	TotalArrivalsPerDayInsideZone int            `json:"total_arrivals_per_day_inside_zone"`
	// StopsInside is the number of stops that fell inside the zone.
	StopsInside int `json:"-"`
}

// ParseGreenZone decodes a FeatureCollection holding exactly one Polygon
// feature and sums the daily arrivals of every stop inside its outer ring.
func ParseGreenZone(raw []byte, stops []gtfs.BusStopWithStatistics) (GreenZone, error) {
	fc, err := geo.DecodeFeatureCollection(raw)
	if err != nil {
		return GreenZone{}, err
	}
	switch n := len(fc.Features); {
	case n == 0:
		return GreenZone{}, geo.Invalidf("green zone has no features")
	case n > 1:
		return GreenZone{}, geo.Invalidf("unexpected green zone format: expected only one feature, got %d", n)
	}

	f := &fc.Features[0]
	if err := f.CheckFeature(0); err != nil {
		return GreenZone{}, err
	}
	if f.Geometry.Type != geo.TypePolygon {
		return GreenZone{}, geo.Invalidf("features[0]: expected geometry type %s, got %q", geo.TypePolygon, f.Geometry.Type)
	}
	polygon, err := f.Geometry.Polygon()
	if err != nil {
		return GreenZone{}, fmt.Errorf("features[0]: %w", err)
	}

	zone := GreenZone{
		PolygonBounds:      geo.PointsFromLonLat(polygon[0]),
		AreaInSquareMetres: geo.Area(polygon),
	}

	ring := geo.LatLonRing(zone.PolygonBounds)
	for i := range stops {
		if geo.RingContains(ring, stops[i].Location) {
			zone.TotalArrivalsPerDayInsideZone += stops[i].ArrivalsPerHour.Total()
			zone.StopsInside++
		}
	}
	return zone, nil
}
