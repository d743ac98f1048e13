package section

import (
	"fmt"

	"github.com/venkydam/polyline/encoding"
	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
)

// FormatVersion is the single supported flexible-format version. Decoding a
// header that carries any other version fails with errs.ErrInvalidHeaderVersion.
const FormatVersion = 1

// Metadata word layout: (thirdDimPrecision << 7) | (thirdDimType << 4) | precision.
const (
	precisionMask     = 0x0F
	thirdDimShift     = 4
	thirdDimMask      = 0x07
	thirdDimPrecShift = 7
)

// Header is the self-describing prefix of a flexible-format polyline. It
// records the compression parameters needed to decode the coordinate payload
// that follows it.
type Header struct {
	Precision         int
	ThirdDimPrecision int
	ThirdDim          format.ThirdDimension
}

// Parameters returns the header as compression parameters.
func (h Header) Parameters() format.CompressionParameters {
	return format.CompressionParameters{
		Precision:         h.Precision,
		ThirdDimPrecision: h.ThirdDimPrecision,
		ThirdDim:          h.ThirdDim,
	}
}

// NewHeader creates a header from compression parameters.
func NewHeader(params format.CompressionParameters) Header {
	return Header{
		Precision:         params.Precision,
		ThirdDimPrecision: params.ThirdDimPrecision,
		ThirdDim:          params.ThirdDim,
	}
}

// Append serializes the header as two unsigned varints, the format version
// followed by the packed metadata word, and returns the extended slice.
func (h Header) Append(dst []byte, alphabet *encoding.Alphabet) []byte {
	meta := uint64(h.ThirdDimPrecision)<<thirdDimPrecShift | //nolint:gosec
		uint64(h.ThirdDim)<<thirdDimShift |
		uint64(h.Precision) //nolint:gosec

	dst = alphabet.AppendUnsigned(dst, FormatVersion)

	return alphabet.AppendUnsigned(dst, meta)
}

// Parse decodes a header from the start of encoded.
//
// It returns the header and the index of the first character after it.
// Fails with errs.ErrInvalidHeaderVersion when the version varint is not
// FormatVersion, or with the varint decode errors from the encoding package.
func Parse(encoded string, alphabet *encoding.Alphabet) (Header, int, error) {
	version, pos, err := alphabet.DecodeUnsigned(encoded, 0)
	if err != nil {
		return Header{}, pos, err
	}
	if version != FormatVersion {
		return Header{}, pos, fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidHeaderVersion, version, FormatVersion)
	}

	meta, pos, err := alphabet.DecodeUnsigned(encoded, pos)
	if err != nil {
		return Header{}, pos, err
	}

	return Header{
		Precision:         int(meta & precisionMask),
		ThirdDim:          format.ThirdDimension((meta >> thirdDimShift) & thirdDimMask),
		ThirdDimPrecision: int((meta >> thirdDimPrecShift) & precisionMask),
	}, pos, nil
}
