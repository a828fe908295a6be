package dlx

import (
	"math/rand"
	"time"
)

func solutionRows[I comparable, C comparable](d *driver[I, C]) []ColoredRow[I, C] {
	rows := make([]ColoredRow[I, C], 0, len(d.stack))
	for _, f := range d.stack {
		rows = append(rows, d.table.row(f.row))
	}
	return rows
}

// ---- plain DLX (spec.md §6: dlx_first, dlx_iter) ----

func toUncoloredRows[I comparable](options [][]I) []ColoredRow[I, noColor] {
	rows := make([]ColoredRow[I, noColor], len(options))
	for i, opt := range options {
		row := make(ColoredRow[I, noColor], len(opt))
		for j, item := range opt {
			row[j] = ColoredItem[I, noColor]{Item: item}
		}
		rows[i] = row
	}
	return rows
}

func plainCover[I comparable](rows []ColoredRow[I, noColor]) Cover[I] {
	out := make(Cover[I], len(rows))
	for i, r := range rows {
		row := make(Row[I], len(r))
		for j, ci := range r {
			row[j] = ci.Item
		}
		out[i] = row
	}
	return out
}

// Iterator enumerates every exact cover of a plain DLX problem, one at a
// time (spec.md §6 dlx_iter).
type Iterator[I comparable] struct {
	d *driver[I, noColor]
}

// Next returns the next exact cover, or ok == false once the search is
// exhausted.
func (it *Iterator[I]) Next() (cover Cover[I], ok bool) {
	found, _ := it.d.advance(time.Time{})
	if !found {
		return nil, false
	}
	cover = plainCover[I](solutionRows(it.d))
	it.d.state = StateBacktrackingRow
	return cover, true
}

// Stats reports the counters accumulated so far (SPEC_FULL.md, DOMAIN STACK).
func (it *Iterator[I]) Stats() Stats { return it.d.stats }

// Iter returns an iterator enumerating every exact cover of the given
// problem (spec.md §6 dlx_iter).
func Iter[I comparable](options [][]I, primaries, secondaries []I) (*Iterator[I], error) {
	t, err := buildTable[I, noColor](primaries, secondaries, nil, toUncoloredRows(options), nil)
	if err != nil {
		return nil, err
	}
	d := newDriver[I, noColor](t, chooseColumn[I, noColor], false)
	return &Iterator[I]{d: d}, nil
}

// IterRandomized is Iter but with a randomised minimum-length tie-break
// (SPEC_FULL.md, SUPPLEMENTED FEATURES — generalised from DLXC's
// randomised chooser to the plain variant).
func IterRandomized[I comparable](options [][]I, primaries, secondaries []I, seed int64) (*Iterator[I], error) {
	t, err := buildTable[I, noColor](primaries, secondaries, nil, toUncoloredRows(options), nil)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	chooser := func(tbl *Table[I, noColor], _ int) (int, bool) { return chooseColumnRandom[I, noColor](tbl, rng) }
	d := newDriver[I, noColor](t, chooser, false)
	return &Iterator[I]{d: d}, nil
}

// First returns the first exact cover found, or ok == false if the
// problem is unsatisfiable (spec.md §6 dlx_first).
func First[I comparable](options [][]I, primaries, secondaries []I) (cover Cover[I], ok bool, stats Stats, err error) {
	it, err := Iter(options, primaries, secondaries)
	if err != nil {
		return nil, false, Stats{}, err
	}
	cover, ok = it.Next()
	return cover, ok, it.Stats(), nil
}

// ---- DLXC (spec.md §6: dlxc_iter, dlxc_iter_randomized, first_solution, all_solutions) ----

// ColorIterator enumerates every exact cover of a DLXC problem, each with
// its committed color assignment, one at a time (spec.md §6 dlxc_iter).
type ColorIterator[I comparable, C comparable] struct {
	d *driver[I, C]
}

// Next returns the next solution, or ok == false once the search is
// exhausted.
func (it *ColorIterator[I, C]) Next() (sol Solution[I, C], ok bool) {
	found, _ := it.d.advance(time.Time{})
	if !found {
		return Solution[I, C]{}, false
	}
	sol = Solution[I, C]{Rows: solutionRows(it.d), Colors: it.d.table.colorAssignments()}
	it.d.state = StateBacktrackingRow
	return sol, true
}

// Stats reports the counters accumulated so far.
func (it *ColorIterator[I, C]) Stats() Stats { return it.d.stats }

// DLXCIter returns an iterator enumerating every exact cover of a DLXC
// problem (spec.md §6 dlxc_iter).
func DLXCIter[I comparable, C comparable](options []ColoredRow[I, C], primaries, secondaries []I, colorNames []C) (*ColorIterator[I, C], error) {
	t, err := buildTable[I, C](primaries, secondaries, colorNames, options, nil)
	if err != nil {
		return nil, err
	}
	d := newDriver[I, C](t, chooseColumn[I, C], false)
	return &ColorIterator[I, C]{d: d}, nil
}

// DLXCIterRandomized is DLXCIter with a randomised chooser tie-break
// (spec.md §6 dlxc_iter_randomized).
func DLXCIterRandomized[I comparable, C comparable](options []ColoredRow[I, C], primaries, secondaries []I, colorNames []C, seed int64) (*ColorIterator[I, C], error) {
	t, err := buildTable[I, C](primaries, secondaries, colorNames, options, nil)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	chooser := func(tbl *Table[I, C], _ int) (int, bool) { return chooseColumnRandom[I, C](tbl, rng) }
	d := newDriver[I, C](t, chooser, false)
	return &ColorIterator[I, C]{d: d}, nil
}

// DLXCFirst returns the first exact cover found within deadline (the zero
// time.Time means unbounded), a convenience adaptor over DLXCIter
// (spec.md §6 first_solution).
func DLXCFirst[I comparable, C comparable](options []ColoredRow[I, C], primaries, secondaries []I, colorNames []C, deadline time.Time) (Solution[I, C], Outcome, Stats, error) {
	t, err := buildTable[I, C](primaries, secondaries, colorNames, options, nil)
	if err != nil {
		return Solution[I, C]{}, NotFound, Stats{}, err
	}
	d := newDriver[I, C](t, chooseColumn[I, C], false)
	found, timedOut := d.advance(deadline)
	if timedOut {
		return Solution[I, C]{}, TimedOut, d.stats, nil
	}
	if !found {
		return Solution[I, C]{}, NotFound, d.stats, nil
	}
	return Solution[I, C]{Rows: solutionRows(d), Colors: t.colorAssignments()}, Found, d.stats, nil
}

// DLXCAll collects every exact cover within deadline (spec.md §6
// all_solutions). A timeout mid-enumeration is reported by returning the
// solutions accumulated so far alongside outcome TimedOut — never
// silently truncated and labelled Found.
func DLXCAll[I comparable, C comparable](options []ColoredRow[I, C], primaries, secondaries []I, colorNames []C, deadline time.Time) ([]Solution[I, C], Outcome, Stats, error) {
	it, err := DLXCIter(options, primaries, secondaries, colorNames)
	if err != nil {
		return nil, NotFound, Stats{}, err
	}
	var sols []Solution[I, C]
	for {
		found, timedOut := it.d.advance(deadline)
		if timedOut {
			return sols, TimedOut, it.d.stats, nil
		}
		if !found {
			break
		}
		sols = append(sols, Solution[I, C]{Rows: solutionRows(it.d), Colors: it.d.table.colorAssignments()})
		it.d.state = StateBacktrackingRow
	}
	outcome := NotFound
	if len(sols) > 0 {
		outcome = Found
	}
	return sols, outcome, it.d.stats, nil
}

// ---- MCC-DLXC (spec.md §6: min_cost_dlxc, min_cost_dlxc_first, min_cost_dlxc_iter) ----

func costOptionsRows[I comparable, C comparable](options []CostOption[I, C]) ([]ColoredRow[I, C], []int) {
	rows := make([]ColoredRow[I, C], len(options))
	costs := make([]int, len(options))
	for i, o := range options {
		rows[i] = ColoredRow[I, C](o.Entries)
		costs[i] = o.Cost
	}
	return rows, costs
}

// CostIterator enumerates each improving exact cover of an MCC-DLXC
// problem, in strictly decreasing cost order (spec.md §6 min_cost_dlxc_iter).
type CostIterator[I comparable, C comparable] struct {
	d *driver[I, C]
}

// Next returns the next, strictly cheaper, solution, or ok == false once
// the search is exhausted.
func (it *CostIterator[I, C]) Next() (sol CostSolution[I, C], ok bool) {
	found, _ := it.d.advance(time.Time{})
	if !found {
		return CostSolution[I, C]{}, false
	}
	sol = CostSolution[I, C]{
		Solution: Solution[I, C]{Rows: solutionRows(it.d), Colors: it.d.table.colorAssignments()},
		Cost:     it.d.currentCost,
	}
	it.d.state = StateBacktrackingRow
	return sol, true
}

// Stats reports the counters accumulated so far.
func (it *CostIterator[I, C]) Stats() Stats { return it.d.stats }

// MinCostDLXCIter returns an iterator yielding each improving cover, in
// strictly decreasing cost, of an MCC-DLXC problem (spec.md §6
// min_cost_dlxc_iter).
func MinCostDLXCIter[I comparable, C comparable](options []CostOption[I, C], primaries, secondaries []I, colorNames []C) (*CostIterator[I, C], error) {
	rows, costs := costOptionsRows(options)
	t, err := buildTable[I, C](primaries, secondaries, colorNames, rows, costs)
	if err != nil {
		return nil, err
	}
	d := newDriver[I, C](t, chooseColumn[I, C], true)
	return &CostIterator[I, C]{d: d}, nil
}

// MinCostDLXCFirst returns the first feasible cover found, not necessarily
// optimal, within deadline (spec.md §6 min_cost_dlxc_first).
func MinCostDLXCFirst[I comparable, C comparable](options []CostOption[I, C], primaries, secondaries []I, colorNames []C, deadline time.Time) (CostSolution[I, C], Outcome, Stats, error) {
	rows, costs := costOptionsRows(options)
	t, err := buildTable[I, C](primaries, secondaries, colorNames, rows, costs)
	if err != nil {
		return CostSolution[I, C]{}, NotFound, Stats{}, err
	}
	d := newDriver[I, C](t, chooseColumn[I, C], true)
	found, timedOut := d.advance(deadline)
	if timedOut {
		return CostSolution[I, C]{}, TimedOut, d.stats, nil
	}
	if !found {
		return CostSolution[I, C]{}, NotFound, d.stats, nil
	}
	sol := CostSolution[I, C]{
		Solution: Solution[I, C]{Rows: solutionRows(d), Colors: t.colorAssignments()},
		Cost:     d.currentCost,
	}
	return sol, Found, d.stats, nil
}

// MinCostDLXC searches to exhaustion for the minimum-cost exact cover
// within deadline. A deadline interruption is always reported as
// TimedOut, never as a provisional, possibly non-optimal, result labelled
// Found (spec.md §7: "MCC engines must never return a non-optimal result
// labelled as optimal"). Callers willing to accept any feasible cover
// should call MinCostDLXCFirst instead.
func MinCostDLXC[I comparable, C comparable](options []CostOption[I, C], primaries, secondaries []I, colorNames []C, deadline time.Time) (CostSolution[I, C], Outcome, Stats, error) {
	it, err := MinCostDLXCIter(options, primaries, secondaries, colorNames)
	if err != nil {
		return CostSolution[I, C]{}, NotFound, Stats{}, err
	}
	var best CostSolution[I, C]
	haveBest := false
	for {
		found, timedOut := it.d.advance(deadline)
		if timedOut {
			return CostSolution[I, C]{}, TimedOut, it.d.stats, nil
		}
		if !found {
			break
		}
		best = CostSolution[I, C]{
			Solution: Solution[I, C]{Rows: solutionRows(it.d), Colors: it.d.table.colorAssignments()},
			Cost:     it.d.currentCost,
		}
		haveBest = true
		it.d.state = StateBacktrackingRow
	}
	if !haveBest {
		return CostSolution[I, C]{}, NotFound, it.d.stats, nil
	}
	return best, Found, it.d.stats, nil
}
