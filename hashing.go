package slickhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// thresholdHashSeed decorrelates the threshold hasher from the block
// hasher: both start from the same 8-byte key encoding, but xxh3's seeded
// variant mixes the seed into the whole computation rather than just
// post-processing xxhash's output, so the two hash families are
// independent in practice.
const thresholdHashSeed = 0x9e3779b97f4a7c15

// keyBytes encodes a uint64 key as little-endian bytes for hashing.
func keyBytes(key uint64) [8]byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return buf
}

// scaleToRange maps a uniformly distributed 64-bit hash into [0, n) using
// integer multiply-shift ((hash * n) >> 64) instead of floating-point
// division, avoiding the loss of uniformity f64 scaling suffers near the
// top of the 64-bit range.
func scaleToRange(hash uint64, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, n)
	return hi
}

// blockHash computes H_b(key): the home block index in [0, numBlocks).
func blockHash(key uint64, numBlocks uint64) uint64 {
	buf := keyBytes(key)
	h := xxhash.Sum64(buf[:])
	return scaleToRange(h, numBlocks)
}

// thresholdHash computes H_t(key): the threshold value in
// [0, maxThreshold), using a hasher independent of blockHash so that
// bumping decisions are uncorrelated with block placement.
func thresholdHash(key uint64, maxThreshold uint64) uint64 {
	buf := keyBytes(key)
	h := xxh3.HashSeed(buf[:], thresholdHashSeed)
	return scaleToRange(h, maxThreshold)
}
