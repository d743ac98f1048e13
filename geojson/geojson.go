package geojson

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
)

// GeometryType identifies the GeoJSON geometry kinds produced by this
// package.
type GeometryType string

const (
	TypeLineString GeometryType = "LineString"
	TypePolygon    GeometryType = "Polygon"
)

// closureEpsilon is the per-component tolerance when checking that a linear
// ring's first and last positions coincide.
const closureEpsilon = 1e-6

// Geometry is a GeoJSON Geometry object holding either a LineString or a
// Polygon. Positions are (lng, lat[, z]) slices, matching the decoder
// output, so a third dimension survives into the JSON text.
type Geometry struct {
	Type GeometryType

	// LineString holds the positions when Type is TypeLineString.
	LineString [][]float64
	// Polygon holds the linear rings when Type is TypePolygon. Rings are
	// normalized: the exterior ring winds counterclockwise, interior rings
	// wind clockwise.
	Polygon [][][]float64
}

// Feature is a GeoJSON Feature wrapping a Geometry together with the
// compression parameters it was decoded with.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   *Geometry      `json:"geometry"`
}

// NewLineString assembles a LineString geometry.
//
// Fails with errs.ErrInvalidLineStringLength when fewer than 2 positions are
// given.
func NewLineString(coords [][]float64) (*Geometry, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("%w: %d positions, need at least 2", errs.ErrInvalidLineStringLength, len(coords))
	}

	return &Geometry{Type: TypeLineString, LineString: coords}, nil
}

// NewPolygon assembles a Polygon geometry from linear rings.
//
// Every ring must have at least 4 positions (errs.ErrInvalidPolygonLength)
// and be closed within closureEpsilon per component
// (errs.ErrInvalidPolygonClosure). Winding order is normalized rather than
// validated: the first ring is forced counterclockwise and every subsequent
// ring clockwise, reversing the position order where needed.
func NewPolygon(rings [][][]float64) (*Geometry, error) {
	normalized := make([][][]float64, len(rings))
	for i, ring := range rings {
		if err := validateRing(i, ring); err != nil {
			return nil, err
		}

		want := orb.CCW
		if i > 0 {
			want = orb.CW
		}
		if orientation(ring) != want {
			ring = reversed(ring)
		}
		normalized[i] = ring
	}

	return &Geometry{Type: TypePolygon, Polygon: normalized}, nil
}

// NewFeature wraps a geometry in a Feature whose properties record the
// compression parameters used on the wire. The third-dimension keys are only
// present when a third dimension was in effect.
func NewFeature(geometry *Geometry, params format.CompressionParameters) *Feature {
	properties := map[string]any{
		"precision": params.Precision,
	}
	if params.ThirdDim != format.ThirdDimNone {
		properties["thirdDimensionPrecision"] = params.ThirdDimPrecision
		properties["thirdDimensionType"] = strings.ToLower(params.ThirdDim.String())
	}

	return &Feature{
		Type:       "Feature",
		Properties: properties,
		Geometry:   geometry,
	}
}

// MarshalJSON renders the geometry in RFC 7946 shape:
// {"type": ..., "coordinates": ...}.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        GeometryType `json:"type"`
		Coordinates any          `json:"coordinates"`
	}{Type: g.Type}

	switch g.Type {
	case TypeLineString:
		out.Coordinates = g.LineString
	case TypePolygon:
		out.Coordinates = g.Polygon
	default:
		return nil, fmt.Errorf("unsupported geometry type: %s", g.Type)
	}

	return json.Marshal(out)
}

func validateRing(i int, ring [][]float64) error {
	if len(ring) < 4 {
		return fmt.Errorf("%w: ring %d has %d positions, need at least 4", errs.ErrInvalidPolygonLength, i, len(ring))
	}

	first, last := ring[0], ring[len(ring)-1]
	if len(first) != len(last) {
		return fmt.Errorf("%w: ring %d first and last positions differ in dimension", errs.ErrInvalidPolygonClosure, i)
	}
	for d := range first {
		if math.Abs(first[d]-last[d]) > closureEpsilon {
			return fmt.Errorf("%w: ring %d is not closed", errs.ErrInvalidPolygonClosure, i)
		}
	}

	return nil
}

// orientation computes the ring's winding from its (lng, lat) components
// only; any third dimension is ignored.
func orientation(ring [][]float64) orb.Orientation {
	r := make(orb.Ring, len(ring))
	for i, pos := range ring {
		r[i] = orb.Point{pos[0], pos[1]}
	}

	return r.Orientation()
}

func reversed(ring [][]float64) [][]float64 {
	out := make([][]float64, len(ring))
	for i, pos := range ring {
		out[len(ring)-1-i] = pos
	}

	return out
}
