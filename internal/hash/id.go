// Package hash derives stable 64-bit feature identifiers from feature names.
package hash

import "github.com/cespare/xxhash/v2"

// FeatureID computes the xxHash64 of the given feature name.
func FeatureID(name string) uint64 {
	return xxhash.Sum64String(name)
}
