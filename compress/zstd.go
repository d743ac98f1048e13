package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the
// built-in codecs. Suited for cold storage of large polyline archives where
// decompression is infrequent.
//
// Two implementations exist behind build tags: a cgo binding for maximum
// throughput, and a pure-Go fallback used when cgo is unavailable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
