package codec

import (
	"fmt"
	"math"

	"github.com/venkydam/polyline/encoding"
	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
	"github.com/venkydam/polyline/section"
)

// estimatedCharsPerValue sizes the output buffer; nearby coordinates encode
// their deltas in one to three characters per dimension.
const estimatedCharsPerValue = 3

// compress is the shared delta-encoding core behind every variant.
//
// Coordinates arrive as (lng, lat[, z]) and are reordered to (lat, lng[, z])
// on the wire for compatibility with the original format. Each dimension is
// scaled to an integer with round-half-away-from-zero and emitted as a
// zigzag varint delta against the previous value of the same dimension.
func compress(coords [][]float64, params format.CompressionParameters, alphabet *encoding.Alphabet, withHeader bool) (string, error) {
	if params.Precision < 0 || params.Precision > format.MaxPrecision {
		return "", fmt.Errorf("%w: precision %d out of range [0, %d]",
			errs.ErrInvalidPrecision, params.Precision, format.MaxPrecision)
	}
	if params.ThirdDimPrecision < 0 || params.ThirdDimPrecision > format.MaxPrecision {
		return "", fmt.Errorf("%w: third dimension precision %d out of range [0, %d]",
			errs.ErrInvalidPrecision, params.ThirdDimPrecision, format.MaxPrecision)
	}

	if len(coords) == 0 {
		return "", nil
	}

	dim := params.Dimensions()
	multipliers := [3]float64{
		math.Pow10(params.Precision),
		math.Pow10(params.Precision),
		math.Pow10(params.ThirdDimPrecision),
	}

	buf := make([]byte, 0, len(coords)*dim*estimatedCharsPerValue+2)
	if withHeader {
		buf = section.NewHeader(params).Append(buf, alphabet)
	}

	var prev [3]int64
	var vals [3]float64
	for i, coord := range coords {
		if len(coord) != dim {
			return "", fmt.Errorf("%w: coordinate %d has %d dimensions, want %d",
				errs.ErrInconsistentDimensions, i, len(coord), dim)
		}

		lng, lat := coord[0], coord[1]
		if err := validateLngLat(lng, lat); err != nil {
			return "", err
		}

		// Wire order is (lat, lng[, z]).
		vals[0], vals[1] = lat, lng
		if dim == 3 {
			if !isFinite(coord[2]) {
				return "", fmt.Errorf("%w: third dimension value %v", errs.ErrInvalidCoordinateValue, coord[2])
			}
			vals[2] = coord[2]
		}

		for d := 0; d < dim; d++ {
			scaled := encoding.Round(vals[d] * multipliers[d])
			buf = alphabet.AppendSigned(buf, scaled-prev[d])
			prev[d] = scaled
		}
	}

	return string(buf), nil
}

// decompress is the shared delta-decoding core behind every variant.
//
// For header-carrying formats the fallback parameters are ignored in favor
// of the parsed header; headerless formats decode with the fallback as-is.
func decompress(encoded string, fallback format.CompressionParameters, alphabet *encoding.Alphabet, withHeader bool) ([][]float64, format.CompressionParameters, error) {
	if encoded == "" {
		return nil, format.CompressionParameters{}, errs.ErrEmptyInput
	}

	params := fallback
	pos := 0
	if withHeader {
		header, next, err := section.Parse(encoded, alphabet)
		if err != nil {
			return nil, format.CompressionParameters{}, err
		}
		params = header.Parameters()
		pos = next
	}

	dim := params.Dimensions()
	divisors := [3]float64{
		math.Pow10(params.Precision),
		math.Pow10(params.Precision),
		math.Pow10(params.ThirdDimPrecision),
	}

	coords := make([][]float64, 0, (len(encoded)-pos)/(dim*2)+1)
	var acc [3]int64
	var vals [3]float64
	for pos < len(encoded) {
		for d := 0; d < dim; d++ {
			if d > 0 && pos >= len(encoded) {
				return nil, params, fmt.Errorf("%w: coordinate %d ends after %d of %d dimensions",
					errs.ErrMissingCoordinateDimension, len(coords), d, dim)
			}

			delta, next, err := alphabet.DecodeSigned(encoded, pos)
			if err != nil {
				return nil, params, err
			}
			pos = next

			acc[d] += delta
			vals[d] = float64(acc[d]) / divisors[d]
		}

		// Wire order is (lat, lng[, z]); output order is (lng, lat[, z]).
		lat, lng := vals[0], vals[1]
		if err := validateLngLat(lng, lat); err != nil {
			return nil, params, err
		}

		coord := make([]float64, dim)
		coord[0], coord[1] = lng, lat
		if dim == 3 {
			coord[2] = vals[2]
		}
		coords = append(coords, coord)
	}

	return coords, params, nil
}

func validateLngLat(lng, lat float64) error {
	if !isFinite(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", errs.ErrInvalidCoordinateValue, lat)
	}
	if !isFinite(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", errs.ErrInvalidCoordinateValue, lng)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
