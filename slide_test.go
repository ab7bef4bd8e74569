package slickhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSlideFixture builds a 10-block, block-size-10 table and wires up a
// hand-crafted geometry for blocks 3-5, bypassing TryInsert so the slide
// subroutines can be exercised directly against a known-consistent layout:
//
//	block 3: offset 0, gap 5  -> occupied [30, 37)
//	block 4: offset 2, gap 0  -> occupied [42, 50)
//	block 5: offset 0, gap 10 (untouched)
func newSlideFixture() *SlickHash {
	s := New(100)

	s.meta[3] = blockMeta{offset: 0, gap: 5, threshold: 0}
	s.meta[4] = blockMeta{offset: 2, gap: 0, threshold: 0}

	for i := uint64(0); i < 7; i++ {
		s.mainTable[30+i] = entry{key: 1000 + i, value: 1000 + i}
	}
	for i := uint64(0); i < 8; i++ {
		s.mainTable[42+i] = entry{key: 2000 + i, value: 2000 + i}
	}
	s.noElementsInMainTable = 15

	return s
}

func TestSlideGapFromLeftBorrowsFromDonorAndShiftsTarget(t *testing.T) {
	s := newSlideFixture()

	lastEntryOfBlock4 := s.mainTable[49]

	ok := s.slideGapFromLeft(4)
	require.True(t, ok)

	assert.Equal(t, uint64(4), s.meta[3].gap, "donor gap should shrink by one")
	assert.Equal(t, uint64(0), s.meta[3].offset)

	assert.Equal(t, uint64(1), s.meta[4].offset, "target offset should shrink by one")
	assert.Equal(t, uint64(1), s.meta[4].gap, "target gains one free cell")

	assert.Equal(t, uint64(41), s.start(4))
	assert.Equal(t, uint64(49), s.end(4))
	assert.Equal(t, uint64(8), s.length(4), "occupied length is unchanged by the slide itself")

	assert.Equal(t, lastEntryOfBlock4, s.mainTable[41], "target's last entry is copied into the newly claimed cell")
}

func TestSlideGapFromLeftFailsWhenTargetOffsetIsAlreadyZero(t *testing.T) {
	s := New(100)
	// A fresh block has gap == blockSize > 0, so force the exhausted-gap
	// precondition by hand without giving it any offset budget to spend.
	s.meta[4].gap = 0

	ok := s.slideGapFromLeft(4)
	assert.False(t, ok, "a block that has never shifted cannot donate offset to extend itself leftward")
}

func TestSlideGapFromRightBorrowsFromFreshNeighbor(t *testing.T) {
	s := New(100)
	block := uint64(2)
	s.meta[block].gap = 0

	ok := s.slideGapFromRight(block)
	require.True(t, ok)

	assert.Equal(t, uint64(1), s.meta[block].gap)
	assert.Equal(t, uint64(1), s.meta[block+1].offset)
	assert.Equal(t, s.blockSize-1, s.meta[block+1].gap)
}

func TestSlideGapFromRightFailsOnLastBlock(t *testing.T) {
	s := New(100)
	last := s.numBlocks - 1
	s.meta[last].gap = 0

	ok := s.slideGapFromRight(last)
	assert.False(t, ok)
}

func TestSlideGapFromRightFailsWhenNeighborOffsetAtCap(t *testing.T) {
	s := New(100)
	block := uint64(2)
	s.meta[block].gap = 0
	s.meta[block+1].gap = 0
	s.meta[block+1].offset = s.maxOffset

	ok := s.slideGapFromRight(block)
	assert.False(t, ok, "a neighbor already at the offset cap cannot donate further")
}
