package bike

import (
	"errors"
	"testing"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/tabular"
)

func TestParseBikeLanes_MultiLineStringCountsLengthOnce(t *testing.T) {
	raw := `{
	  "type": "FeatureCollection",
	  "features": [{
	    "type": "Feature",
	    "properties": {"SHAPE_Leng": 1250.5},
	    "geometry": {
	      "type": "MultiLineString",
	      "coordinates": [
	        [[14.50, 46.05], [14.51, 46.06]],
	        [[14.52, 46.07], [14.53, 46.08], [14.54, 46.09]],
	        [[14.55, 46.10], [14.56, 46.11]]
	      ]
	    }
	  }]
	}`

	lanes, total, err := ParseBikeLanes([]byte(raw))
	if err != nil {
		t.Fatalf("ParseBikeLanes: %v", err)
	}
	if len(lanes) != 3 {
		t.Fatalf("got %d segments, want 3", len(lanes))
	}
	if total != 1250.5 {
		t.Errorf("total length = %f, want 1250.5", total)
	}
	if len(lanes[1].Points) != 3 {
		t.Errorf("second segment has %d points, want 3", len(lanes[1].Points))
	}

	first := lanes[0].Points[0]
	if first != (geo.GeoPoint{Latitude: 46.05, Longitude: 14.50}) {
		t.Errorf("coordinates not swapped: %+v", first)
	}
}

func TestParseBikeLanes_LineStringsAccumulate(t *testing.T) {
	raw := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","properties":{"SHAPE_Leng":100},"geometry":{"type":"LineString","coordinates":[[14.5,46.0],[14.6,46.1]]}},
	  {"type":"Feature","properties":{"SHAPE_Leng":"50.25"},"geometry":{"type":"LineString","coordinates":[[14.7,46.2],[14.8,46.3]]}}
	]}`

	lanes, total, err := ParseBikeLanes([]byte(raw))
	if err != nil {
		t.Fatalf("ParseBikeLanes: %v", err)
	}
	if len(lanes) != 2 {
		t.Errorf("got %d segments, want 2", len(lanes))
	}
	if total != 150.25 {
		t.Errorf("total = %f, want 150.25", total)
	}
	if MeasuredNetworkLength(lanes) <= 0 {
		t.Error("measured network length should be positive")
	}
}

func TestParseBikeLanes_LengthWithWhitespace(t *testing.T) {
	raw := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","properties":{"SHAPE_Leng":" 75.5\n"},"geometry":{"type":"LineString","coordinates":[[14.5,46.0],[14.6,46.1]]}}
	]}`

	_, total, err := ParseBikeLanes([]byte(raw))
	if err != nil {
		t.Fatalf("ParseBikeLanes: %v", err)
	}
	if total != 75.5 {
		t.Errorf("total = %f, want 75.5", total)
	}
}

func TestParseBikeLanes_Empty(t *testing.T) {
	lanes, total, err := ParseBikeLanes([]byte(`{"type":"FeatureCollection","features":[]}`))
	if err != nil {
		t.Fatalf("ParseBikeLanes: %v", err)
	}
	if len(lanes) != 0 || total != 0 {
		t.Errorf("got %d lanes, total %f", len(lanes), total)
	}
}

func TestParseBikeLanes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target error
	}{
		{
			name:   "not a feature collection",
			raw:    `{"type":"Feature","features":[]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "feature with wrong type",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Thing","properties":{"SHAPE_Leng":1},"geometry":{"type":"LineString","coordinates":[]}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "point geometry",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":1},"geometry":{"type":"Point","coordinates":[14.5,46.0]}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "missing geometry",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":1}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "three dimensional position",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":1},"geometry":{"type":"LineString","coordinates":[[14.5,46.0,290]]}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "null latitude",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":1},"geometry":{"type":"LineString","coordinates":[[14.5,null]]}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "null coordinates",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":1},"geometry":{"type":"LineString","coordinates":null}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "null sub-line",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":1},"geometry":{"type":"MultiLineString","coordinates":[[[14.5,46.0]],null]}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "upper case member",
			raw:    `{"TYPE":"FeatureCollection","FEATURES":[]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "missing length",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[14.5,46.0]]}}]}`,
			target: geo.ErrInvalidGeoJSON,
		},
		{
			name:   "non numeric length",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":"long"},"geometry":{"type":"LineString","coordinates":[[14.5,46.0]]}}]}`,
			target: tabular.ErrFieldParse,
		},
		{
			name:   "boolean length",
			raw:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"SHAPE_Leng":true},"geometry":{"type":"LineString","coordinates":[[14.5,46.0]]}}]}`,
			target: tabular.ErrFieldParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lanes, _, err := ParseBikeLanes([]byte(tt.raw))
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
			if lanes != nil {
				t.Errorf("expected no lanes on error")
			}
		})
	}
}
