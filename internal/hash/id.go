package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of an encoded polyline, giving callers a stable
// 64-bit identifier for deduplication and cache keys.
func ID(encoded string) uint64 {
	return xxhash.Sum64String(encoded)
}
