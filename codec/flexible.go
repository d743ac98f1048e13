package codec

import (
	"github.com/venkydam/polyline/encoding"
	"github.com/venkydam/polyline/format"
)

// flexibleCodec implements the flexible polyline format: a two-varint header
// carrying the compression parameters, followed by the coordinate payload in
// the URL-safe alphabet. Precision is configurable per call and a third
// spatial dimension is supported.
type flexibleCodec struct{}

var _ Codec = flexibleCodec{}

func (flexibleCodec) Algorithm() format.Algorithm {
	return format.FlexiblePolyline
}

func (flexibleCodec) Compress(coords [][]float64, params format.CompressionParameters) (string, error) {
	return compress(coords, params, encoding.Flexible, true)
}

func (flexibleCodec) Decompress(encoded string) ([][]float64, format.CompressionParameters, error) {
	// The header overrides the fallback; passing defaults keeps the empty
	// payload case consistent with the other variants.
	return decompress(encoded, format.DefaultCompressionParameters(), encoding.Flexible, true)
}
