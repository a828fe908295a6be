package dlx

import (
	"math"
	"time"
)

// frame is one level of the search stack: the column chosen at this level,
// the row currently under trial, and the thresholds that level's
// cover/coverRow calls were made with (needed, unchanged, by the matching
// uncover/uncoverRow on the way back out — spec.md §4.4).
type frame struct {
	column            int
	row               int
	hidingThreshold   int
	coveringThreshold int
}

// columnChooser selects the next branching item given the threshold in
// force at the current level.
type columnChooser[I comparable, C comparable] func(*Table[I, C], int) (int, bool)

// driver is the explicit state machine of spec.md §4.4, shared by all
// three variants. DLX and DLXC run it with trackCost == false: bestCost
// then stays at +∞ forever, so the cost-threshold checks below never
// prune and every cover/hide call degenerates to the unconditional
// DLX/DLXC walk (SPEC_FULL.md §4). MCC-DLXC runs it with trackCost ==
// true, tightening bestCost each time a cheaper solution is found.
type driver[I comparable, C comparable] struct {
	table     *Table[I, C]
	chooser   columnChooser[I, C]
	trackCost bool

	stack       []frame
	state       State
	currentCost int
	bestCost    int
	exhausted   bool

	stats Stats
}

func newDriver[I comparable, C comparable](t *Table[I, C], chooser columnChooser[I, C], trackCost bool) *driver[I, C] {
	d := &driver[I, C]{
		table:     t,
		chooser:   chooser,
		trackCost: trackCost,
		bestCost:  math.MaxInt,
		state:     StateCoveringColumn,
	}
	d.coverColumn()
	return d
}

// step advances the machine by exactly one transition (spec.md §4.4).
func (d *driver[I, C]) step() {
	switch d.state {
	case StateCoveringColumn:
		d.coverColumn()
	case StateCoveringRow:
		d.coverRowStep()
	case StateBacktrackingRow:
		d.backtrackRow()
	case StateBacktrackingColumn:
		d.backtrackColumn()
	case StateFoundSolution:
		d.state = StateBacktrackingRow
	}
}

func (d *driver[I, C]) coverColumn() {
	d.stats.NodesVisited++
	parentThreshold := unboundedThreshold
	if len(d.stack) > 0 {
		parentThreshold = d.stack[len(d.stack)-1].hidingThreshold
	}
	col, found := d.chooser(d.table, parentThreshold)
	if !found {
		if d.table.right[0] == 0 {
			if d.trackCost {
				d.bestCost = d.currentCost
			}
			d.state = StateFoundSolution
		} else {
			d.state = StateBacktrackingRow
		}
		return
	}
	row := d.table.down[col]
	threshold := d.bestCost - d.currentCost - d.table.cost[row]
	d.table.cover(col, threshold)
	d.stack = append(d.stack, frame{column: col, row: row, hidingThreshold: threshold})
	if row == col {
		d.state = StateBacktrackingColumn
	} else {
		d.state = StateCoveringRow
	}
}

func (d *driver[I, C]) coverRowStep() {
	d.stats.RowsTried++
	f := &d.stack[len(d.stack)-1]
	cost := d.table.cost[f.row]
	if d.bestCost <= d.currentCost+cost {
		d.state = StateBacktrackingColumn
		return
	}
	threshold := d.bestCost - d.currentCost - cost
	f.coveringThreshold = threshold
	d.currentCost += cost
	d.table.coverRow(f.row, threshold)
	d.state = StateCoveringColumn
}

func (d *driver[I, C]) backtrackRow() {
	if len(d.stack) == 0 {
		d.exhausted = true
		return
	}
	d.stats.Backtracks++
	f := &d.stack[len(d.stack)-1]
	d.table.uncoverRow(f.row, f.coveringThreshold)
	d.currentCost -= d.table.cost[f.row]
	f.row = d.table.down[f.row]
	if f.row == f.column {
		d.state = StateBacktrackingColumn
	} else {
		d.state = StateCoveringRow
	}
}

func (d *driver[I, C]) backtrackColumn() {
	f := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	d.table.uncover(f.column, f.hidingThreshold)
	d.state = StateBacktrackingRow
}

// advance runs the state machine until it yields a solution, exhausts the
// search, or a deadline (zero means none) elapses. It checks the deadline
// only between state-machine steps, never mid-operation (spec.md §4.5, §5).
func (d *driver[I, C]) advance(deadline time.Time) (found, timedOut bool) {
	start := time.Now()
	defer func() { d.stats.Elapsed += time.Since(start) }()

	hasDeadline := !deadline.IsZero()
	for !d.exhausted {
		if hasDeadline && time.Now().After(deadline) {
			return false, true
		}
		if d.state == StateFoundSolution {
			d.stats.SolutionsFound++
			return true, false
		}
		d.step()
	}
	return false, false
}
