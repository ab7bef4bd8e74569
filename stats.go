package slickhash

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Stats is a read-only population/geometry snapshot: instrumentation, not
// part of the capability surface.
type Stats struct {
	MainTablePopulation uint64
	BackyardPopulation  uint64
	Capacity            uint64
	NumBlocks           uint64
	BumpedBlocks        uint64
	MaxBlockLength      uint64
}

// Stats computes a population/geometry snapshot across the main table and
// the backyard.
func (s *SlickHash) Stats() Stats {
	stats := Stats{
		MainTablePopulation: s.noElementsInMainTable,
		BackyardPopulation:  uint64(s.backyard.len()),
		Capacity:            s.mainTableSize,
		NumBlocks:           s.numBlocks,
	}
	for i := uint64(0); i < s.numBlocks; i++ {
		if s.meta[i].threshold > 0 {
			stats.BumpedBlocks++
		}
		if l := s.length(i); l > stats.MaxBlockLength {
			stats.MaxBlockLength = l
		}
	}
	return stats
}

// String renders population counts with thousands separators, the way the
// rest of the pack formats large counters for human consumption.
func (st Stats) String() string {
	return fmt.Sprintf(
		"main=%s backyard=%s capacity=%s blocks=%d bumped=%d max_block_len=%d",
		humanize.Comma(int64(st.MainTablePopulation)),
		humanize.Comma(int64(st.BackyardPopulation)),
		humanize.Comma(int64(st.Capacity)),
		st.NumBlocks,
		st.BumpedBlocks,
		st.MaxBlockLength,
	)
}

// DumpBlocks renders a table of per-block geometry (offset, gap,
// threshold, length) for debugging.
func (s *SlickHash) DumpBlocks(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"block", "start", "end", "offset", "gap", "threshold", "length"})

	for i := uint64(0); i < s.numBlocks; i++ {
		tw.Append([]string{
			strconv.FormatUint(i, 10),
			strconv.FormatUint(s.start(i), 10),
			strconv.FormatUint(s.end(i), 10),
			strconv.FormatUint(s.meta[i].offset, 10),
			strconv.FormatUint(s.meta[i].gap, 10),
			strconv.FormatUint(s.meta[i].threshold, 10),
			strconv.FormatUint(s.length(i), 10),
		})
	}

	tw.Render()
}
