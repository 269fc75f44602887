// Package geo holds the coordinate value type shared by every dataset and the
// small amount of geometry the pipeline needs.
//
// GeoJSON stores positions as [longitude, latitude]. Everything outside this
// package works with GeoPoint, which is always (latitude, longitude) and
// serializes as a [latitude, longitude] pair for Leaflet.
//
// Geometry is delegated to github.com/paulmach/orb:
//   - Area uses orb/geo (spherical excess on a 6378137 m sphere) on raw
//     [longitude, latitude] rings.
//   - RingContains uses orb/planar on (latitude, longitude) rings. Points on
//     the ring boundary count as inside.
package geo
