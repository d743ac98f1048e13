// Package compress provides optional payload compression for callers that
// archive batches of encoded polylines.
//
// The codec variants themselves always produce printable ASCII; this package
// sits on top for storage-bound use cases, selected by
// format.CompressionType (None, Zstd, S2, LZ4). All codecs are pure
// functions over byte slices with no I/O.
package compress
