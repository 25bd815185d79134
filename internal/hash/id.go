// Package hash provides the hash function used by schema.Registry to build
// an O(1) group-name lookup cache.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
