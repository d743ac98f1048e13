// Package polyline compresses sequences of geographic coordinates into
// compact printable-ASCII strings and back, and assembles decoded sequences
// into GeoJSON geometries.
//
// Three codec variants share one algorithmic core:
//
//   - FlexiblePolyline: self-describing header, configurable precision, and
//     an optional third spatial dimension (level, altitude, or elevation)
//   - Polyline5: the legacy headerless format with fixed precision 5
//   - Polyline6: the headerless format with fixed precision 6
//
// All variants delta-encode integer-scaled coordinates into varint chunks of
// 5 data bits plus a continuation bit, mapped through a variant-specific
// 64-symbol alphabet. Encoding is fully deterministic: two conformant
// implementations fed identical input produce byte-identical strings.
//
// # Basic Usage
//
// Encoding and decoding a route:
//
//	coords := [][]float64{
//	    {8.69821, 50.10228},
//	    {8.69567, 50.10201},
//	    {8.69150, 50.10063},
//	}
//	encoded, _ := polyline.EncodeFromLngLatArray(coords)
//	decoded, _ := polyline.DecodeToLngLatArray(encoded)
//
// Encoding with a third dimension:
//
//	encoded, _ := polyline.EncodeFromLngLatArray(coords3d,
//	    polyline.WithPrecision(6),
//	    polyline.WithThirdDimension(format.ThirdDimAltitude),
//	    polyline.WithThirdDimensionPrecision(2),
//	)
//
// Producing GeoJSON:
//
//	feature, _ := polyline.DecodeToLineStringFeature(encoded)
//	text, _ := json.Marshal(feature)
//
// # Package Structure
//
// This package provides convenient top-level wrappers bound to a
// process-wide selected algorithm (see SetAlgorithm). Concurrent callers
// that need different variants at once should use the codec package
// directly, which takes the variant as an explicit value.
package polyline

import (
	"sync/atomic"

	"github.com/venkydam/polyline/codec"
	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
	"github.com/venkydam/polyline/geojson"
	"github.com/venkydam/polyline/internal/hash"
	"github.com/venkydam/polyline/internal/options"
)

// current holds the process-wide selected algorithm. Reads and writes go
// through atomics so a concurrent SetAlgorithm cannot tear, but callers that
// interleave SetAlgorithm with encode/decode from multiple goroutines still
// race on which variant a given call observes; such callers should use the
// codec package directly.
var current atomic.Uint32

func init() {
	current.Store(uint32(format.FlexiblePolyline))
}

// GetAlgorithm returns the process-wide selected algorithm. The default is
// format.FlexiblePolyline.
func GetAlgorithm() format.Algorithm {
	return format.Algorithm(current.Load())
}

// SetAlgorithm selects the algorithm used by the top-level encode and decode
// functions.
func SetAlgorithm(alg format.Algorithm) {
	current.Store(uint32(alg))
}

// EncodeOption configures the compression parameters of a single encode
// call. This is a type alias for the generic Option interface specialized
// for CompressionParameters.
type EncodeOption = options.Option[*format.CompressionParameters]

// WithPrecision sets the number of decimal digits retained for longitude
// and latitude. The default is format.DefaultPrecision. Headerless variants
// ignore this value in favor of their baked-in precision.
func WithPrecision(precision int) EncodeOption {
	return options.NoError(func(p *format.CompressionParameters) {
		p.Precision = precision
	})
}

// WithThirdDimension selects the semantic of the third coordinate value.
// Any value other than format.ThirdDimNone requires 3-D input coordinates
// and the FlexiblePolyline algorithm.
func WithThirdDimension(dim format.ThirdDimension) EncodeOption {
	return options.NoError(func(p *format.CompressionParameters) {
		p.ThirdDim = dim
	})
}

// WithThirdDimensionPrecision sets the number of decimal digits retained
// for the third dimension.
func WithThirdDimensionPrecision(precision int) EncodeOption {
	return options.NoError(func(p *format.CompressionParameters) {
		p.ThirdDimPrecision = precision
	})
}

// EncodeFromLngLatArray encodes a sequence of (lng, lat[, z]) coordinates
// with the selected algorithm. An empty sequence encodes to "".
//
// Fails with errs.ErrInvalidPrecision, errs.ErrInconsistentDimensions, or
// errs.ErrInvalidCoordinateValue on invalid input.
func EncodeFromLngLatArray(coords [][]float64, opts ...EncodeOption) (string, error) {
	params := format.DefaultCompressionParameters()
	if err := options.Apply(&params, opts...); err != nil {
		return "", err
	}

	c, err := codec.ForAlgorithm(GetAlgorithm())
	if err != nil {
		return "", err
	}

	return c.Compress(coords, params)
}

// DecodeToLngLatArray decodes an encoded string into (lng, lat[, z])
// coordinates with the selected algorithm.
func DecodeToLngLatArray(encoded string) ([][]float64, error) {
	coords, _, err := decode(encoded)

	return coords, err
}

// DecodeToLineString decodes an encoded string and assembles the result as
// a GeoJSON LineString geometry.
func DecodeToLineString(encoded string) (*geojson.Geometry, error) {
	coords, _, err := decode(encoded)
	if err != nil {
		return nil, err
	}

	return geojson.NewLineString(coords)
}

// DecodeToLineStringFeature decodes an encoded string and assembles the
// result as a GeoJSON Feature whose properties record the compression
// parameters found on the wire.
func DecodeToLineStringFeature(encoded string) (*geojson.Feature, error) {
	coords, params, err := decode(encoded)
	if err != nil {
		return nil, err
	}

	geometry, err := geojson.NewLineString(coords)
	if err != nil {
		return nil, err
	}

	return geojson.NewFeature(geometry, params), nil
}

// DecodeToPolygon decodes one encoded string per linear ring and assembles
// the result as a GeoJSON Polygon geometry with normalized winding order.
func DecodeToPolygon(encoded []string) (*geojson.Geometry, error) {
	rings, _, err := decodeRings(encoded)
	if err != nil {
		return nil, err
	}

	return geojson.NewPolygon(rings)
}

// DecodeToPolygonFeature decodes one encoded string per linear ring and
// assembles the result as a GeoJSON Feature. When rings were encoded with
// differing parameters, the properties reflect the last ring decoded.
func DecodeToPolygonFeature(encoded []string) (*geojson.Feature, error) {
	rings, params, err := decodeRings(encoded)
	if err != nil {
		return nil, err
	}

	geometry, err := geojson.NewPolygon(rings)
	if err != nil {
		return nil, err
	}

	return geojson.NewFeature(geometry, params), nil
}

// ID returns a stable 64-bit identifier (xxHash64) for an encoded polyline,
// useful as a deduplication or cache key.
func ID(encoded string) uint64 {
	return hash.ID(encoded)
}

func decode(encoded string) ([][]float64, format.CompressionParameters, error) {
	c, err := codec.ForAlgorithm(GetAlgorithm())
	if err != nil {
		return nil, format.CompressionParameters{}, err
	}

	return c.Decompress(encoded)
}

func decodeRings(encoded []string) ([][][]float64, format.CompressionParameters, error) {
	if len(encoded) == 0 {
		return nil, format.CompressionParameters{}, errs.ErrEmptyInput
	}

	rings := make([][][]float64, len(encoded))
	var params format.CompressionParameters
	for i, ring := range encoded {
		coords, ringParams, err := decode(ring)
		if err != nil {
			return nil, params, err
		}
		rings[i] = coords
		// Last ring wins when rings were encoded with differing parameters.
		params = ringParams
	}

	return rings, params, nil
}
