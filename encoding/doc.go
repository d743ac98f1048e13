// Package encoding provides the low-level varint codec shared by every
// polyline variant.
//
// Values are packed into chunks of 5 data bits plus 1 continuation bit and
// mapped through a variant-specific 64-symbol alphabet. Signed values go
// through the zigzag transform first so that small-magnitude deltas of either
// sign encode to a single character.
//
// Most users should use the high-level polyline package instead; this package
// is the building block for the codec variants in the codec package and the
// header packing in the section package.
package encoding
