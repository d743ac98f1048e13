// Package section implements the self-describing header section of the
// flexible polyline format: a format-version varint followed by a packed
// metadata varint carrying the precision and third-dimension settings.
//
// The legacy Polyline5/Polyline6 formats carry no header; this package is
// only used by the flexible codec variant.
package section
