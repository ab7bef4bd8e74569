package slickhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// keysForBlock brute-force searches ascending uint64 keys for n of them
// that really hash (via the production blockHash function) to the given
// block, so tests can drive slide/bump behavior through the public API
// with real keys instead of mocking the hasher.
func keysForBlock(numBlocks, block uint64, n int) []uint64 {
	keys := make([]uint64, 0, n)
	for k := uint64(1); len(keys) < n; k++ {
		if blockHash(k, numBlocks) == block {
			keys = append(keys, k)
		}
		if k > 5_000_000 {
			panic("keysForBlock: exhausted search space without enough matches")
		}
	}
	return keys
}

// assertInvariants checks block geometry, population accounting, and
// membership invariants for a table populated through the public API (so
// every resident key's home block is meaningful).
func assertInvariants(t *testing.T, s *SlickHash) {
	t.Helper()

	var totalMain uint64
	for i := uint64(0); i < s.numBlocks; i++ {
		start, end := s.start(i), s.end(i)
		require.LessOrEqualf(t, start, end, "block %d: start > end", i)
		if i+1 < s.numBlocks {
			require.LessOrEqualf(t, end, s.start(i+1), "block %d: end overlaps next block", i)
		}
		require.LessOrEqualf(t, end-start, s.maxSlickSize, "block %d exceeds max slick size", i)
		require.LessOrEqualf(t, s.meta[i].offset, s.maxOffset, "block %d offset exceeds cap", i)
		require.LessOrEqualf(t, s.meta[i].threshold, s.maxThreshold, "block %d threshold exceeds cap", i)

		totalMain += end - start
		for j := start; j < end; j++ {
			key := s.mainTable[j].key
			require.Equalf(t, i, s.homeBlock(key), "entry %d in block %d range has wrong home block", key, i)
			require.GreaterOrEqualf(t, s.thresholdOf(key), s.meta[i].threshold, "entry %d below block %d threshold", key, i)
		}
	}
	require.Equal(t, totalMain, s.noElementsInMainTable, "population accounting mismatch")
}
