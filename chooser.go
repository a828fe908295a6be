package dlx

import "math/rand"

// chooseColumn implements the minimum-remaining-values heuristic of
// spec.md §4.3. With threshold == unboundedThreshold (DLX/DLXC) it is an
// O(active items) scan of precomputed lengths. With a finite threshold
// (MCC-DLXC) it re-scans each column counting only nodes cheaper than
// threshold, ties broken toward the column whose topmost affordable row
// costs more (a cheap tie is worth less information than an expensive one
// still in play). A column with zero affordable rows makes the whole
// branch infeasible and short-circuits the scan immediately — unlike the
// fast path, the driver cannot detect this case by itself afterward,
// because down[h] == h is no longer a reliable "empty" signal once rows
// are hidden by cost rather than fully covered.
func chooseColumn[I comparable, C comparable](t *Table[I, C], threshold int) (int, bool) {
	if threshold == unboundedThreshold {
		j := t.right[0]
		best := -1
		bestLen := unboundedThreshold
		for j != 0 {
			if t.length[j] < bestLen {
				best, bestLen = j, t.length[j]
			}
			j = t.right[j]
		}
		return best, best != -1
	}

	j := t.right[0]
	best := -1
	bestLen := -1
	for j != 0 {
		length := 0
		i := t.down[j]
		for i != j && t.cost[i] < threshold {
			length++
			i = t.down[i]
		}
		if length == 0 {
			return -1, false
		}
		switch {
		case best == -1 || length < bestLen:
			best, bestLen = j, length
		case length == bestLen && t.cost[t.down[j]] > t.cost[t.down[best]]:
			best = j
		}
		j = t.right[j]
	}
	return best, best != -1
}

// chooseColumnRandom picks uniformly among the columns tied for minimum
// length (SPEC_FULL.md, SUPPLEMENTED FEATURES). It is only ever invoked
// with threshold == unboundedThreshold: MCC-DLXC's cost minimisation and
// randomised tie-break are not combined by this module.
func chooseColumnRandom[I comparable, C comparable](t *Table[I, C], rng *rand.Rand) (int, bool) {
	j := t.right[0]
	bestLen := unboundedThreshold
	var candidates []int
	for j != 0 {
		switch {
		case t.length[j] < bestLen:
			bestLen = t.length[j]
			candidates = append(candidates[:0], j)
		case t.length[j] == bestLen:
			candidates = append(candidates, j)
		}
		j = t.right[j]
	}
	if len(candidates) == 0 {
		return -1, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
