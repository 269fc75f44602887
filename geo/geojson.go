package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// ErrInvalidGeoJSON is returned for any structural problem in a GeoJSON input:
// wrong top-level or feature type, unexpected geometry, wrong feature count or
// a position that is not a [longitude, latitude] pair.
var ErrInvalidGeoJSON = errors.New("invalid GeoJSON structure")

// Geometry type names used by the inputs.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypeLineString        = "LineString"
	TypeMultiLineString   = "MultiLineString"
	TypePolygon           = "Polygon"
)

// FeatureCollection is a GeoJSON FeatureCollection with lazily decoded geometries.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   *Geometry      `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry keeps the coordinates raw until the caller knows which shape to expect.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Invalidf builds an error wrapping ErrInvalidGeoJSON.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeoJSON, fmt.Sprintf(format, args...))
}

// DecodeFeatureCollection parses raw GeoJSON and checks the top-level type.
// Member names must match exactly; encoding/json alone would accept "TYPE".
func DecodeFeatureCollection(raw []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, Invalidf("decode: %v", err)
	}
	if err := checkMemberNames(raw); err != nil {
		return nil, err
	}
	if fc.Type == "" {
		return nil, Invalidf("field type missing")
	}
	if fc.Type != TypeFeatureCollection {
		return nil, Invalidf("expected %s, got %q", TypeFeatureCollection, fc.Type)
	}
	return &fc, nil
}

var (
	collectionMembers = []string{"type", "features"}
	featureMembers    = []string{"type", "geometry", "properties"}
	geometryMembers   = []string{"type", "coordinates"}
)

// checkMemberNames rejects members that only differ in case from the ones
// the decoder reads.
func checkMemberNames(raw []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return Invalidf("decode: %v", err)
	}
	if err := exactMembers("collection", top, collectionMembers); err != nil {
		return err
	}

	var features []json.RawMessage
	if isNull(top["features"]) {
		return nil
	}
	if err := json.Unmarshal(top["features"], &features); err != nil {
		return Invalidf("features: %v", err)
	}
	for i, f := range features {
		var feature map[string]json.RawMessage
		if err := json.Unmarshal(f, &feature); err != nil {
			return Invalidf("features[%d]: %v", i, err)
		}
		if err := exactMembers(fmt.Sprintf("features[%d]", i), feature, featureMembers); err != nil {
			return err
		}
		if isNull(feature["geometry"]) {
			continue
		}
		var geometry map[string]json.RawMessage
		if err := json.Unmarshal(feature["geometry"], &geometry); err != nil {
			return Invalidf("features[%d].geometry: %v", i, err)
		}
		if err := exactMembers(fmt.Sprintf("features[%d].geometry", i), geometry, geometryMembers); err != nil {
			return err
		}
	}
	return nil
}

func exactMembers(where string, obj map[string]json.RawMessage, names []string) error {
	for key := range obj {
		for _, name := range names {
			if key != name && strings.EqualFold(key, name) {
				return Invalidf("%s: member %q must be spelled %q", where, key, name)
			}
		}
	}
	return nil
}

// isNull reports whether a raw value is absent or the JSON literal null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// CheckFeature verifies the feature type and that a geometry is present.
func (f *Feature) CheckFeature(index int) error {
	if f.Type != TypeFeature {
		return Invalidf("features[%d]: expected type %s, got %q", index, TypeFeature, f.Type)
	}
	if f.Geometry == nil {
		return Invalidf("features[%d]: geometry missing", index)
	}
	return nil
}

// LineString decodes a LineString coordinate array.
func (g *Geometry) LineString() (orb.LineString, error) {
	return decodeLine(g.Type+" coordinates", g.Coordinates)
}

// MultiLineString decodes a MultiLineString coordinate array.
func (g *Geometry) MultiLineString() (orb.MultiLineString, error) {
	lines, err := decodeArray(g.Type+" coordinates", g.Coordinates)
	if err != nil {
		return nil, err
	}
	out := make(orb.MultiLineString, 0, len(lines))
	for i, line := range lines {
		ls, err := decodeLine(fmt.Sprintf("%s line %d", g.Type, i), line)
		if err != nil {
			return nil, err
		}
		out = append(out, ls)
	}
	return out, nil
}

// Polygon decodes a Polygon coordinate array. The outer ring must not be empty.
func (g *Geometry) Polygon() (orb.Polygon, error) {
	rings, err := decodeArray(g.Type+" coordinates", g.Coordinates)
	if err != nil {
		return nil, err
	}
	if len(rings) == 0 {
		return nil, Invalidf("%s has no outer ring", g.Type)
	}
	out := make(orb.Polygon, 0, len(rings))
	for i, ring := range rings {
		ls, err := decodeLine(fmt.Sprintf("%s ring %d", g.Type, i), ring)
		if err != nil {
			return nil, err
		}
		out = append(out, orb.Ring(ls))
	}
	if len(out[0]) == 0 {
		return nil, Invalidf("%s has no outer ring", g.Type)
	}
	return out, nil
}

// decodeArray splits a JSON array into its raw elements. null and absent
// values are rejected.
func decodeArray(what string, raw json.RawMessage) ([]json.RawMessage, error) {
	if isNull(raw) {
		return nil, Invalidf("%s missing", what)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, Invalidf("%s: %v", what, err)
	}
	return elems, nil
}

func decodeLine(what string, raw json.RawMessage) (orb.LineString, error) {
	positions, err := decodeArray(what, raw)
	if err != nil {
		return nil, err
	}
	ls := make(orb.LineString, 0, len(positions))
	for i, pos := range positions {
		p, err := decodePosition(fmt.Sprintf("%s position %d", what, i), pos)
		if err != nil {
			return nil, err
		}
		ls = append(ls, p)
	}
	return ls, nil
}

func decodePosition(what string, raw json.RawMessage) (orb.Point, error) {
	values, err := decodeArray(what, raw)
	if err != nil {
		return orb.Point{}, err
	}
	if len(values) != 2 {
		return orb.Point{}, Invalidf("%s: expected [longitude, latitude] pair, got %d values", what, len(values))
	}
	var p orb.Point
	for i, v := range values {
		if isNull(v) {
			return orb.Point{}, Invalidf("%s: value %d is null", what, i)
		}
		if err := json.Unmarshal(v, &p[i]); err != nil {
			return orb.Point{}, Invalidf("%s: %v", what, err)
		}
	}
	return p, nil
}

// PointsFromLonLat swaps every position of a line into a GeoPoint.
func PointsFromLonLat(ls []orb.Point) []GeoPoint {
	out := make([]GeoPoint, 0, len(ls))
	for _, p := range ls {
		out = append(out, FromLonLat(p))
	}
	return out
}
