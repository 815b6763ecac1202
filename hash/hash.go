// Package hash implements the xorshift mixing used to derive shard seeds
package hash

// Hash mixes n with the salt s and reduces the result into 0 to max-1
func Hash(n uint32, s uint32, max uint32) uint32 {
	var m = mix(n, s)

	// multiply shift reduction instead of modulo
	return uint32((uint64(m) * uint64(max)) >> 32)
}

func mix(n, s uint32) uint32 {
	var m = n - s

	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	return m + s
}

// Seed derives the seed of shard number shard from the base seed. Shard 0
// keeps the base seed, so a single shard reproduces the unsharded set.
func Seed(base int64, shard int) int64 {
	if shard == 0 {
		return base
	}
	lo := mix(uint32(base), uint32(shard))
	hi := mix(uint32(uint64(base)>>32), lo^uint32(shard))
	return int64(uint64(hi)<<32 | uint64(lo))
}
