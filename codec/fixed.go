package codec

import (
	"fmt"

	"github.com/venkydam/polyline/encoding"
	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
)

// fixedCodec implements the legacy headerless formats Polyline5 and
// Polyline6. The precision is baked into the variant and the caller-supplied
// longitude/latitude precision is ignored; a third dimension cannot be
// represented on this wire format at all.
type fixedCodec struct {
	algorithm format.Algorithm
	precision int
}

var _ Codec = fixedCodec{}

func (c fixedCodec) Algorithm() format.Algorithm {
	return c.algorithm
}

func (c fixedCodec) Compress(coords [][]float64, params format.CompressionParameters) (string, error) {
	if params.ThirdDim != format.ThirdDimNone {
		return "", fmt.Errorf("%w: %s cannot encode a third dimension (%s)",
			errs.ErrInconsistentDimensions, c.algorithm, params.ThirdDim)
	}

	return compress(coords, c.parameters(), encoding.Legacy, false)
}

func (c fixedCodec) Decompress(encoded string) ([][]float64, format.CompressionParameters, error) {
	return decompress(encoded, c.parameters(), encoding.Legacy, false)
}

func (c fixedCodec) parameters() format.CompressionParameters {
	return format.CompressionParameters{
		Precision:         c.precision,
		ThirdDimPrecision: 0,
		ThirdDim:          format.ThirdDimNone,
	}
}
