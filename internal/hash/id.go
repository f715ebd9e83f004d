// Package hash derives stable 64-bit identities from canonical descriptor
// strings.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given canonical form.
func ID(canonical string) uint64 {
	return xxhash.Sum64String(canonical)
}
