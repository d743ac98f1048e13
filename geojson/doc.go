// Package geojson assembles decoded coordinate sequences into GeoJSON
// LineString and Polygon geometries and Feature wrappers.
//
// Assembly validates the structural rules of RFC 7946 (minimum position
// counts, ring closure) and normalizes polygon winding order: the exterior
// ring is forced counterclockwise and interior rings clockwise. Inconsistent
// input winding is silently corrected, never rejected.
//
// This package only builds the GeoJSON shapes the polyline codec produces;
// it is not a general GeoJSON parser.
package geojson
