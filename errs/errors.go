// Package errs defines the sentinel errors returned by the polyline codec.
//
// All errors are deterministic caller-input problems; none are transient or
// retryable. Callers should match them with errors.Is, since the codec wraps
// sentinels with additional context (offending value, string position).
package errs

import "errors"

// Encode-time errors.
var (
	// ErrInvalidPrecision indicates a precision value outside the supported
	// range of 0 to 11 decimal digits.
	ErrInvalidPrecision = errors.New("invalid precision value")

	// ErrInconsistentDimensions indicates that a coordinate does not match the
	// dimensionality implied by the third-dimension setting, or that a third
	// dimension was requested on a codec variant that cannot carry one.
	ErrInconsistentDimensions = errors.New("inconsistent coordinate dimensions")

	// ErrInvalidCoordinateValue indicates a latitude outside [-90, 90], a
	// longitude outside [-180, 180], or a non-finite component.
	ErrInvalidCoordinateValue = errors.New("invalid coordinate value")
)

// Decode-time errors.
var (
	// ErrEmptyInput indicates that an empty string was passed to a decode
	// operation.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidEncodedCharacter indicates a character outside the codec
	// variant's 64-symbol alphabet.
	ErrInvalidEncodedCharacter = errors.New("invalid encoded character")

	// ErrExtraContinueBit indicates that the encoded string ended while the
	// last decoded character still had its continuation bit set.
	ErrExtraContinueBit = errors.New("extra continue bit")

	// ErrInvalidHeaderVersion indicates a flexible-format header whose version
	// differs from the single supported format version.
	ErrInvalidHeaderVersion = errors.New("invalid header version")

	// ErrMissingCoordinateDimension indicates that the encoded string ended in
	// the middle of a coordinate, with fewer varints than the coordinate's
	// dimensionality requires.
	ErrMissingCoordinateDimension = errors.New("missing coordinate dimension")
)

// Geometry assembly errors.
var (
	// ErrInvalidLineStringLength indicates fewer than 2 positions for a
	// LineString geometry.
	ErrInvalidLineStringLength = errors.New("invalid linestring length")

	// ErrInvalidPolygonLength indicates a linear ring with fewer than 4
	// positions.
	ErrInvalidPolygonLength = errors.New("invalid polygon length")

	// ErrInvalidPolygonClosure indicates a linear ring whose first and last
	// positions differ by more than the closure epsilon.
	ErrInvalidPolygonClosure = errors.New("invalid polygon closure")
)
