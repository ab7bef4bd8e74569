// Package slickhash implements SlickHash: a cache-conscious uint64->uint64
// map built from a block-structured open-addressing main table with
// elastic block boundaries, per-block rejection thresholds, gap sliding,
// and threshold-triggered bumping to an auxiliary backyard map.
package slickhash

import (
	"fmt"

	"github.com/go-kit/log"
)

// entry is a single (key, value) cell. Cells outside a block's
// [start, end) range are logically absent regardless of their contents;
// callers must never read them directly.
type entry struct {
	key   uint64
	value uint64
}

// SlickHash is the main table plus its backyard overflow map: a
// block-structured open-addressing table with elastic block boundaries,
// gap sliding between neighboring blocks, and threshold-triggered bumping
// of low-priority entries to the backyard.
type SlickHash struct {
	mainTableSize uint64
	blockSize     uint64
	numBlocks     uint64
	maxSlickSize  uint64
	maxOffset     uint64
	maxThreshold  uint64

	mainTable []entry
	meta      []blockMeta
	backyard  backyard

	noElementsInMainTable uint64
	milestoneLogged       bool

	logger log.Logger
}

// New constructs a SlickHash with the default hyperparameters
// (block size 10, max slick size 20, max offset 10, max threshold 10). It
// panics if capacity is not a positive multiple of the block size.
func New(capacity uint64) *SlickHash {
	return newFromConfig(DefaultConfig(capacity))
}

// NewWithConfig validates cfg before constructing, returning an error
// instead of panicking when the capacity/block-size pairing is invalid.
func NewWithConfig(cfg Config) (*SlickHash, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newFromConfig(cfg), nil
}

func newFromConfig(cfg Config) *SlickHash {
	if cfg.BlockSize == 0 || cfg.Capacity == 0 || cfg.Capacity%cfg.BlockSize != 0 {
		panic(fmt.Sprintf("slickhash: capacity %d must be a positive multiple of block size %d", cfg.Capacity, cfg.BlockSize))
	}

	numBlocks := cfg.Capacity / cfg.BlockSize
	meta := make([]blockMeta, numBlocks)
	for i := range meta {
		meta[i] = blockMeta{offset: 0, gap: cfg.BlockSize, threshold: 0}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &SlickHash{
		mainTableSize: cfg.Capacity,
		blockSize:     cfg.BlockSize,
		numBlocks:     numBlocks,
		maxSlickSize:  cfg.MaxSlickSize,
		maxOffset:     cfg.MaxOffset,
		maxThreshold:  cfg.MaxThreshold,
		mainTable:     make([]entry, cfg.Capacity),
		meta:          meta,
		backyard:      newBackyard(),
		logger:        logger,
	}
}

// Name identifies this backend, the capability surface's name() operation.
func (s *SlickHash) Name() string {
	return "SlickHash"
}

// SupportsRemove reports removal support, the MaybeRemovable capability.
func (s *SlickHash) SupportsRemove() bool {
	return true
}

func (s *SlickHash) homeBlock(key uint64) uint64 {
	return blockHash(key, s.numBlocks)
}

func (s *SlickHash) thresholdOf(key uint64) uint64 {
	return thresholdHash(key, s.maxThreshold)
}

// findInBlock linearly scans [start(i), end(i)) for key, returning its
// cell index.
func (s *SlickHash) findInBlock(i, key uint64) (uint64, bool) {
	start, end := s.start(i), s.end(i)
	for j := start; j < end; j++ {
		if s.mainTable[j].key == key {
			return j, true
		}
	}
	return 0, false
}

// slideGapFromLeft extends block i leftward by one cell by borrowing a gap
// from the nearest block j < i that has one. It refuses if reaching any
// intermediate block with an exhausted gap would require decrementing an
// offset already at zero.
func (s *SlickHash) slideGapFromLeft(i uint64) bool {
	j := i
	for s.meta[j].gap == 0 {
		if j == 0 || s.meta[j].offset == 0 {
			logSlideAttempt(s.logger, "left", i, j, false)
			return false
		}
		j--
	}

	if s.meta[j].gap == 1 && s.start(j) == s.end(j) {
		// Donor block would vanish entirely; refuse.
		logSlideAttempt(s.logger, "left", i, j, false)
		return false
	}

	donor := j
	s.meta[j].gap--
	j++
	for j <= i {
		startJ := s.start(j)
		endJ := s.end(j)
		s.mainTable[startJ-1] = s.mainTable[endJ-1]
		s.meta[j].offset--
		j++
	}
	s.meta[i].gap++

	logSlideAttempt(s.logger, "left", i, donor, true)
	return true
}

// slideGapFromRight extends block i rightward by one cell by borrowing a
// gap from the nearest block j > i that has one. It refuses if reaching any
// intermediate block with an exhausted gap would require incrementing an
// offset already at its cap.
func (s *SlickHash) slideGapFromRight(i uint64) bool {
	if i == s.numBlocks-1 {
		return false
	}

	j := i + 1
	for s.meta[j].gap == 0 {
		if j == s.numBlocks-1 || s.meta[j].offset == s.maxOffset {
			logSlideAttempt(s.logger, "right", i, j, false)
			return false
		}
		j++
	}

	if s.meta[j].offset == s.maxOffset {
		logSlideAttempt(s.logger, "right", i, j, false)
		return false
	}

	if s.meta[j].gap == 1 && s.start(j) == s.end(j) {
		logSlideAttempt(s.logger, "right", i, j, false)
		return false
	}

	donor := j

	// Unrolled first step: the rightmost sliding block loses its
	// leading cell to its own trailing edge.
	startJ := s.start(j)
	endJ := s.end(j)
	s.mainTable[endJ] = s.mainTable[startJ]
	s.meta[j].offset++
	s.meta[j].gap--
	j--

	for j > i {
		startJ = s.start(j)
		endJ = s.end(j)
		s.mainTable[endJ-1] = s.mainTable[startJ]
		s.meta[j].offset++
		j--
	}
	s.meta[i].gap++

	logSlideAttempt(s.logger, "right", i, donor, true)
	return true
}

// thereIsNoSpace reports whether block i is at its size cap, or none of
// {existing gap, left slide, right slide} can make room. Short-circuit
// evaluation matters here: the slide subroutines mutate state and must not
// run once an earlier condition already found space.
func (s *SlickHash) thereIsNoSpace(i uint64) bool {
	if s.length(i) >= s.maxSlickSize {
		return true
	}
	if s.meta[i].gap > 0 {
		return false
	}
	if s.slideGapFromLeft(i) {
		return false
	}
	if s.slideGapFromRight(i) {
		return false
	}
	return true
}

// bump raises block i's threshold to one above the smallest threshold hash
// among its residents and the incoming key, evicting every resident below
// the new threshold to the backyard. Returns whether the incoming key itself
// falls below the new threshold.
func (s *SlickHash) bump(i uint64, incomingKey uint64) bool {
	minThreshold := s.maxThreshold + 1
	for j := s.start(i); j < s.end(i); j++ {
		if t := s.thresholdOf(s.mainTable[j].key); t < minThreshold {
			minThreshold = t
		}
	}
	if t := s.thresholdOf(incomingKey); t < minThreshold {
		minThreshold = t
	}

	tPrime := minThreshold + 1
	oldThreshold := s.meta[i].threshold
	s.meta[i].threshold = tPrime

	evicted := 0
	j := s.start(i)
	end := s.end(i)
	for j < end {
		e := s.mainTable[j]
		if s.thresholdOf(e.key) < tPrime {
			s.backyard.tryInsert(e.key, e.value)
			s.noElementsInMainTable--
			s.mainTable[j] = s.mainTable[end-1]
			s.meta[i].gap++
			evicted++
			end = s.end(i)
			// Do not advance j: the freshly copied entry must be
			// tested too.
		} else {
			j++
		}
	}

	logBump(s.logger, i, oldThreshold, tPrime, evicted)

	return s.thresholdOf(incomingKey) < tPrime
}

// TryInsert returns Occupied with the stored value if the key is already
// present (without modifying it), or Inserted with the newly written value
// otherwise. The returned pointer is only valid until the next mutating
// call.
func (s *SlickHash) TryInsert(key, value uint64) Insertion[uint64] {
	i := s.homeBlock(key)

	if s.thresholdOf(key) < s.meta[i].threshold {
		return s.insertIntoBackyard(key, value)
	}

	if idx, found := s.findInBlock(i, key); found {
		return Occupied(&s.mainTable[idx].value)
	}

	if s.thereIsNoSpace(i) {
		if s.bump(i, key) {
			return s.insertIntoBackyard(key, value)
		}
	}

	end := s.end(i)
	s.mainTable[end] = entry{key: key, value: value}
	s.noElementsInMainTable++
	s.meta[i].gap--

	s.maybeLogMilestone()

	return Inserted(&s.mainTable[end].value)
}

func (s *SlickHash) insertIntoBackyard(key, value uint64) Insertion[uint64] {
	ins := s.backyard.tryInsert(key, value)
	if ins.WasInserted() {
		s.maybeLogMilestone()
	}
	return ins
}

func (s *SlickHash) maybeLogMilestone() {
	if s.milestoneLogged {
		return
	}
	total := int(s.noElementsInMainTable) + s.backyard.len()
	if total == 2_000_000 {
		s.milestoneLogged = true
		logMilestone(s.logger, int(s.noElementsInMainTable), s.backyard.len())
	}
}

// Get consults exactly one of {main table, backyard}, decided once by
// comparing the threshold hash of key to the home block's current
// threshold, and never falls through to the other region.
func (s *SlickHash) Get(key uint64) (*uint64, bool) {
	i := s.homeBlock(key)
	if s.thresholdOf(key) < s.meta[i].threshold {
		v, ok := s.backyard.get(key)
		if !ok {
			return nil, false
		}
		return &v, true
	}

	idx, found := s.findInBlock(i, key)
	if !found {
		return nil, false
	}
	return &s.mainTable[idx].value, true
}

// Contains reports whether key is present, the capability surface's
// default built from Get.
func (s *SlickHash) Contains(key uint64) bool {
	_, ok := s.Get(key)
	return ok
}

// RemoveEntry, like Get, consults exactly one region and returns from it
// without falling through to the other.
func (s *SlickHash) RemoveEntry(key uint64) (uint64, uint64, bool) {
	i := s.homeBlock(key)
	if s.thresholdOf(key) < s.meta[i].threshold {
		v, ok := s.backyard.remove(key)
		return key, v, ok
	}

	idx, found := s.findInBlock(i, key)
	if !found {
		return 0, 0, false
	}

	removed := s.mainTable[idx]
	end := s.end(i)
	s.mainTable[idx] = s.mainTable[end-1]
	s.meta[i].gap++
	s.noElementsInMainTable--

	return removed.key, removed.value, true
}
