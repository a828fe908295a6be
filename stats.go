package dlx

import "time"

// Stats accumulates search-progress counters alongside a result. Grounded
// on other_examples' kpitt-sudoku DancingLinksStats (NodesVisited,
// BacktrackCount, SolutionsFound, TimeElapsed): spec.md's Non-goals
// exclude parallelism, persistent state and approximation, not
// instrumentation, so this is a supplement rather than scope creep (see
// SPEC_FULL.md, DOMAIN STACK).
type Stats struct {
	NodesVisited   int
	RowsTried      int
	Backtracks     int
	SolutionsFound int
	Elapsed        time.Duration
}
