package codec

import (
	"fmt"

	"github.com/venkydam/polyline/format"
)

// Codec is the contract shared by the three polyline variants.
//
// Implementations are stateless values, safe for concurrent use; all running
// state (delta accumulators) lives on the stack of each call.
type Codec interface {
	// Algorithm identifies the variant.
	Algorithm() format.Algorithm

	// Compress encodes a sequence of (lng, lat[, z]) coordinates into the
	// variant's wire format. An empty sequence encodes to the empty string,
	// header included.
	Compress(coords [][]float64, params format.CompressionParameters) (string, error)

	// Decompress decodes a wire-format string back into (lng, lat[, z])
	// coordinates, together with the compression parameters that were in
	// effect (read from the header for the flexible variant, fixed for the
	// legacy variants).
	Decompress(encoded string) ([][]float64, format.CompressionParameters, error)
}

var (
	flexible  = flexibleCodec{}
	polyline5 = fixedCodec{algorithm: format.Polyline5, precision: 5}
	polyline6 = fixedCodec{algorithm: format.Polyline6, precision: 6}
)

// ForAlgorithm returns the codec for the given algorithm.
func ForAlgorithm(alg format.Algorithm) (Codec, error) {
	switch alg {
	case format.FlexiblePolyline:
		return flexible, nil
	case format.Polyline5:
		return polyline5, nil
	case format.Polyline6:
		return polyline6, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", alg)
	}
}
