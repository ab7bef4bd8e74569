package slickhash

import "iter"

// All enumerates every live entry across the main table and the backyard,
// in no particular order. Any mutation during enumeration invalidates it.
func (s *SlickHash) All() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for i := uint64(0); i < s.numBlocks; i++ {
			start, end := s.start(i), s.end(i)
			for j := start; j < end; j++ {
				if !yield(s.mainTable[j].key, s.mainTable[j].value) {
					return
				}
			}
		}
		for k, v := range s.backyard.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}
