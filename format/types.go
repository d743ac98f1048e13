package format

type (
	Algorithm       uint8
	ThirdDimension  uint8
	CompressionType uint8
)

const (
	FlexiblePolyline Algorithm = 0x1 // FlexiblePolyline is the self-describing variant with a header and configurable precision.
	Polyline5        Algorithm = 0x2 // Polyline5 is the legacy headerless variant with fixed precision 5.
	Polyline6        Algorithm = 0x3 // Polyline6 is the headerless variant with fixed precision 6.

	// ThirdDimension values are wire constants packed into the flexible
	// format header; they must not be renumbered.
	ThirdDimNone      ThirdDimension = 0 // ThirdDimNone marks 2-D coordinates.
	ThirdDimLevel     ThirdDimension = 1 // ThirdDimLevel carries a floor/level value.
	ThirdDimAltitude  ThirdDimension = 2 // ThirdDimAltitude carries an altitude value.
	ThirdDimElevation ThirdDimension = 3 // ThirdDimElevation carries a terrain elevation value.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// MaxPrecision is the largest supported number of decimal digits for both the
// longitude/latitude precision and the third-dimension precision. Beyond 11
// digits the scaled integer coordinates are no longer exactly representable
// in a float64, which would break cross-implementation determinism.
const MaxPrecision = 11

// DefaultPrecision is the longitude/latitude precision used when the caller
// does not specify one.
const DefaultPrecision = 5

// CompressionParameters describes how a coordinate sequence is scaled and
// laid out on the wire. The zero value is not valid for encoding; use
// DefaultCompressionParameters as a starting point.
type CompressionParameters struct {
	// Precision is the number of decimal digits retained for longitude and
	// latitude, in the range 0 to MaxPrecision.
	Precision int
	// ThirdDimPrecision is the number of decimal digits retained for the
	// third dimension, in the range 0 to MaxPrecision. Ignored when ThirdDim
	// is ThirdDimNone.
	ThirdDimPrecision int
	// ThirdDim selects the semantic of the optional third coordinate value.
	// ThirdDimNone means every coordinate must be 2-D; any other value means
	// every coordinate must be 3-D.
	ThirdDim ThirdDimension
}

// DefaultCompressionParameters returns the parameters used when none are
// supplied: precision 5, no third dimension.
func DefaultCompressionParameters() CompressionParameters {
	return CompressionParameters{
		Precision:         DefaultPrecision,
		ThirdDimPrecision: 0,
		ThirdDim:          ThirdDimNone,
	}
}

// Dimensions returns the coordinate dimensionality implied by the third
// dimension setting: 2 for ThirdDimNone, 3 otherwise.
func (p CompressionParameters) Dimensions() int {
	if p.ThirdDim == ThirdDimNone {
		return 2
	}

	return 3
}

func (a Algorithm) String() string {
	switch a {
	case FlexiblePolyline:
		return "FlexiblePolyline"
	case Polyline5:
		return "Polyline5"
	case Polyline6:
		return "Polyline6"
	default:
		return "Unknown"
	}
}

func (d ThirdDimension) String() string {
	switch d {
	case ThirdDimNone:
		return "None"
	case ThirdDimLevel:
		return "Level"
	case ThirdDimAltitude:
		return "Altitude"
	case ThirdDimElevation:
		return "Elevation"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four defined third-dimension types.
func (d ThirdDimension) Valid() bool {
	return d <= ThirdDimElevation
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
