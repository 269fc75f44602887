package greenzone

import (
	"errors"
	"testing"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/gtfs"
)

const squareZone = `{
  "type": "FeatureCollection",
  "features": [{
    "type": "Feature",
    "properties": {"name": "center"},
    "geometry": {
      "type": "Polygon",
      "coordinates": [[[14.4, 46.0], [14.6, 46.0], [14.6, 46.1], [14.4, 46.1], [14.4, 46.0]]]
    }
  }]
}`

func stopAt(id string, lat, lon float64, arrivals map[int]int) gtfs.BusStopWithStatistics {
	s := gtfs.BusStopWithStatistics{
		BusStop: gtfs.BusStop{ID: id, Location: geo.GeoPoint{Latitude: lat, Longitude: lon}},
	}
	for bucket, n := range arrivals {
		s.ArrivalsPerHour[bucket] = n
	}
	return s
}

func TestParseGreenZone_Containment(t *testing.T) {
	stops := []gtfs.BusStopWithStatistics{
		stopAt("inside", 46.05, 14.5, map[int]int{6: 3, 7: 4, 23: 1}),
		stopAt("outside", 46.2, 14.5, map[int]int{6: 100}),
		stopAt("inside-quiet", 46.01, 14.41, nil),
	}

	zone, err := ParseGreenZone([]byte(squareZone), stops)
	if err != nil {
		t.Fatalf("ParseGreenZone: %v", err)
	}

	if zone.TotalArrivalsPerDayInsideZone != 8 {
		t.Errorf("total arrivals = %d, want 8", zone.TotalArrivalsPerDayInsideZone)
	}
	if zone.StopsInside != 2 {
		t.Errorf("stops inside = %d, want 2", zone.StopsInside)
	}
}

func TestParseGreenZone_OutsideContributesNothing(t *testing.T) {
	stops := []gtfs.BusStopWithStatistics{stopAt("far", 45.0, 13.0, map[int]int{1: 50})}

	zone, err := ParseGreenZone([]byte(squareZone), stops)
	if err != nil {
		t.Fatalf("ParseGreenZone: %v", err)
	}
	if zone.TotalArrivalsPerDayInsideZone != 0 {
		t.Errorf("total arrivals = %d, want 0", zone.TotalArrivalsPerDayInsideZone)
	}
}

func TestParseGreenZone_BoundaryIsInside(t *testing.T) {
	stops := []gtfs.BusStopWithStatistics{stopAt("edge", 46.0, 14.5, map[int]int{5: 2})}

	zone, err := ParseGreenZone([]byte(squareZone), stops)
	if err != nil {
		t.Fatalf("ParseGreenZone: %v", err)
	}
	if zone.TotalArrivalsPerDayInsideZone != 2 {
		t.Errorf("boundary stop not counted: %d", zone.TotalArrivalsPerDayInsideZone)
	}
}

func TestParseGreenZone_BoundsAndArea(t *testing.T) {
	zone, err := ParseGreenZone([]byte(squareZone), nil)
	if err != nil {
		t.Fatalf("ParseGreenZone: %v", err)
	}

	if len(zone.PolygonBounds) != 5 {
		t.Fatalf("got %d bounds, want 5", len(zone.PolygonBounds))
	}
	if zone.PolygonBounds[1] != (geo.GeoPoint{Latitude: 46.0, Longitude: 14.6}) {
		t.Errorf("bounds not swapped to (lat, lon): %+v", zone.PolygonBounds[1])
	}

	// 0.2 deg of longitude x 0.1 deg of latitude around 46N is about 15.5 km x 11.1 km.
	if zone.AreaInSquareMetres < 1.6e8 || zone.AreaInSquareMetres > 1.8e8 {
		t.Errorf("area = %f m2, want about 1.7e8", zone.AreaInSquareMetres)
	}
}

func TestParseGreenZone_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not a collection", `{"type":"Feature"}`},
		{"missing type", `{"features":[]}`},
		{"no features", `{"type":"FeatureCollection","features":[]}`},
		{"two features", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}]}`},
		{"line geometry", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]}}]}`},
		{"empty ring", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[]]}}]}`},
		{"null latitude", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,null],[1,1],[0,0]]]}}]}`},
		{"null coordinates", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":null}}]}`},
		{"absent coordinates", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Polygon"}}]}`},
		{"triple position", `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0,1],[1,0,1],[1,1,1],[0,0,1]]]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGreenZone([]byte(tt.raw), nil)
			if !errors.Is(err, geo.ErrInvalidGeoJSON) {
				t.Errorf("expected ErrInvalidGeoJSON, got %v", err)
			}
		})
	}
}
