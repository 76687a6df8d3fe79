package compare

import "github.com/cespare/xxhash/v2"

// hashString computes the fixed, platform-stable 64-bit hash the spec
// requires for content/occurrence keys and the unordered-policy secondary
// bucket key (spec §4.3, §9: "the chosen 64-bit hash must be stable across
// platforms, no per-process salts"). xxhash.Sum64 has no seed and its
// output is defined independent of process or platform, unlike Go's
// built-in maphash which is randomized per process by design.
func hashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashString exposes the same fixed hash for the diff engine's Unordered
// policy, which buckets lines by a secondary hash of normalized text rather
// than by content key (spec §4.3).
func HashString(s string) uint64 {
	return hashString(s)
}
