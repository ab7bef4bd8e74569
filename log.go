package slickhash

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// logSlideAttempt records whether a gap slide in the given direction
// succeeded, and from which donor block it borrowed.
func logSlideAttempt(logger log.Logger, direction string, target, donor uint64, ok bool) {
	level.Debug(logger).Log(
		"msg", "gap slide attempted",
		"direction", direction,
		"block", target,
		"donor", donor,
		"ok", ok,
	)
}

// logBump records a bumper invocation: the block it escalated, its old and
// new threshold, and how many entries it evicted to the backyard.
func logBump(logger log.Logger, block, oldThreshold, newThreshold uint64, evicted int) {
	level.Debug(logger).Log(
		"msg", "block threshold bumped",
		"block", block,
		"old_threshold", oldThreshold,
		"new_threshold", newThreshold,
		"evicted", evicted,
	)
}

// logMilestone reports when combined population crosses 2,000,000 entries.
// Instrumentation only, not part of the return contract of any operation.
func logMilestone(logger log.Logger, mainTablePopulation, backyardPopulation int) {
	level.Info(logger).Log(
		"msg", "population milestone reached",
		"main_table", mainTablePopulation,
		"backyard", backyardPopulation,
		"total", mainTablePopulation+backyardPopulation,
	)
}
