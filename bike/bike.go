// Package bike reads the MOL cycling network published as WGS84 GeoJSON.
package bike

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/tabular"
)

// LengthProperty is the feature property holding the lane length in metres.
const LengthProperty = "SHAPE_Leng"

// BikeLaneSegment is one drawable polyline of the network.
type BikeLaneSegment struct {
	Points []geo.GeoPoint `json:"line_points"`
}

// MeasuredLengthInMetres is the haversine length of the polyline.
func (s BikeLaneSegment) MeasuredLengthInMetres() float64 {
	return geo.LineLength(s.Points)
}

// ParseBikeLanes returns every lane segment and the sum of the features'
// SHAPE_Leng values. A MultiLineString feature yields one segment per line but
// its length is counted once.
func ParseBikeLanes(raw []byte) ([]BikeLaneSegment, float64, error) {
	fc, err := geo.DecodeFeatureCollection(raw)
	if err != nil {
		return nil, 0, err
	}

	var lanes []BikeLaneSegment
	total := 0.0
	for i := range fc.Features {
		f := &fc.Features[i]
		if err := f.CheckFeature(i); err != nil {
			return nil, 0, err
		}

		switch f.Geometry.Type {
		case geo.TypeLineString:
			line, err := f.Geometry.LineString()
			if err != nil {
				return nil, 0, fmt.Errorf("features[%d]: %w", i, err)
			}
			lanes = append(lanes, BikeLaneSegment{Points: geo.PointsFromLonLat(line)})
		case geo.TypeMultiLineString:
			lines, err := f.Geometry.MultiLineString()
			if err != nil {
				return nil, 0, fmt.Errorf("features[%d]: %w", i, err)
			}
			for _, line := range lines {
				lanes = append(lanes, BikeLaneSegment{Points: geo.PointsFromLonLat(line)})
			}
		default:
			return nil, 0, geo.Invalidf("features[%d]: expected geometry type %s or %s, got %q",
				i, geo.TypeLineString, geo.TypeMultiLineString, f.Geometry.Type)
		}

		length, err := featureLength(f)
		if err != nil {
			return nil, 0, fmt.Errorf("features[%d]: %w", i, err)
		}
		total += length
	}
	return lanes, total, nil
}

// MeasuredNetworkLength sums the haversine length of every segment.
func MeasuredNetworkLength(lanes []BikeLaneSegment) float64 {
	sum := 0.0
	for _, l := range lanes {
		sum += l.MeasuredLengthInMetres()
	}
	return sum
}

func featureLength(f *geo.Feature) (float64, error) {
	v, ok := f.Properties[LengthProperty]
	if !ok {
		return 0, geo.Invalidf("properties.%s missing", LengthProperty)
	}
	return toFloat(v)
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, &tabular.FieldParseError{Column: LengthProperty, Value: t, Err: err}
		}
		return f, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, &tabular.FieldParseError{Column: LengthProperty, Value: t.String(), Err: err}
		}
		return f, nil
	default:
		return 0, &tabular.FieldParseError{Column: LengthProperty, Value: fmt.Sprint(v), Err: fmt.Errorf("not a number")}
	}
}
