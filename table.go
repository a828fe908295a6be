package dlx

import (
	"fmt"
	"math"
	"sort"
)

// unboundedThreshold marks "no cost ceiling": every option is visible to
// cover/hide. Passing it into the threshold-aware primitives makes
// MCC-DLXC's branch-and-bound machinery degenerate exactly into plain
// DLX/DLXC covering (SPEC_FULL.md §4).
const unboundedThreshold = math.MaxInt

// purifiedColor marks a node whose color already agrees with its header's
// committed color; such nodes are inert to further hide/unhide during this
// commitment (spec.md §3, §4.2).
const purifiedColor = math.MaxInt

// entry is one (header, color) pair inside a resolved option, after the
// caller's item/color names have been mapped to small integer ids.
type entry struct {
	header int
	color  int // 0 means uncolored
}

// option is one fully-resolved input row: its entries, its cost, and its
// original (pre-sort, pre-empty-filter) input index for diagnostics.
type option struct {
	entries []entry
	cost    int
	index   int
}

// Table is the flat, pointer-free toroidal linked mesh described in
// spec.md §3: one slice per field, root and item headers at the low
// indices, then a spacer, then each option's nodes with a spacer between
// consecutive options. A single Table implementation serves DLX, DLXC and
// MCC-DLXC; colors and costs are always present but are no-ops (color 0,
// cost 0 everywhere) when a caller doesn't use them.
type Table[I comparable, C comparable] struct {
	items  []I // index 0 unused; 1..primaryCount primaries; primaryCount+1..namesCount-1 secondaries
	colors []C // index 0 reserved "no color"; 1..len(colors) user-declared colors

	primaryCount   int
	secondaryCount int

	left, right []int // size namesCount: horizontal links for root + headers
	up, down    []int // size nodeCount: vertical links for headers, spacers, option nodes
	top         []int // size nodeCount: owning header for a node, 0 for a spacer
	length      []int // size namesCount: live node count under a header
	color       []int // size nodeCount: per-node color id; overloaded on header slots as the committed color
	cost        []int // size nodeCount: per-node cost, constant across one option's nodes
	rowOf       []int // size nodeCount: input option index owning this node, valid on option nodes only
}

func (t *Table[I, C]) namesCount() int {
	return len(t.left)
}

// buildTable resolves item/color names to integer ids, stable-sorts options
// by nondecreasing cost (spec.md §9's per-node-cost decision, SPEC_FULL.md
// §3), and lays out the toroidal mesh exactly as
// original_source/dlx/libdlx/src/{dlx,dlxc,min_cost_dlxc}.rs construct it.
func buildTable[I comparable, C comparable](primaries, secondaries []I, colorNames []C, rows []ColoredRow[I, C], costs []int) (*Table[I, C], error) {
	primaryCount := len(primaries)
	secondaryCount := len(secondaries)
	namesCount := 1 + primaryCount + secondaryCount

	itemIndex := make(map[I]int, primaryCount+secondaryCount)
	for i, name := range primaries {
		if _, exists := itemIndex[name]; !exists {
			itemIndex[name] = i + 1
		}
	}
	for i, name := range secondaries {
		if _, exists := itemIndex[name]; !exists {
			itemIndex[name] = primaryCount + 1 + i
		}
	}

	colorIndex := make(map[C]int, len(colorNames))
	for i, name := range colorNames {
		if _, exists := colorIndex[name]; !exists {
			colorIndex[name] = i + 1
		}
	}

	opts := make([]option, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue // spec.md §3: options with zero items are silently dropped
		}
		cost := 0
		if costs != nil {
			cost = costs[i]
		}
		entries := make([]entry, 0, len(row))
		for _, ci := range row {
			header, ok := itemIndex[ci.Item]
			if !ok {
				return nil, &UnknownItemError[I]{Item: ci.Item, OptionIndex: i}
			}
			colorID := 0
			if ci.Color != nil {
				cid, ok := colorIndex[*ci.Color]
				if !ok {
					return nil, &UnknownColorError[I, C]{Item: ci.Item, Color: *ci.Color, OptionIndex: i}
				}
				colorID = cid
			}
			entries = append(entries, entry{header: header, color: colorID})
		}
		opts = append(opts, option{entries: entries, cost: cost, index: i})
	}

	sort.SliceStable(opts, func(a, b int) bool { return opts[a].cost < opts[b].cost })

	nodeCount := namesCount + 1
	for _, opt := range opts {
		nodeCount += len(opt.entries) + 1
	}

	t := &Table[I, C]{
		items:          make([]I, namesCount),
		colors:         make([]C, len(colorNames)+1),
		primaryCount:   primaryCount,
		secondaryCount: secondaryCount,
		left:           make([]int, namesCount),
		right:          make([]int, namesCount),
		up:             make([]int, nodeCount),
		down:           make([]int, nodeCount),
		top:            make([]int, nodeCount),
		length:         make([]int, namesCount),
		color:          make([]int, nodeCount),
		cost:           make([]int, nodeCount),
		rowOf:          make([]int, nodeCount),
	}
	copy(t.items[1:1+primaryCount], primaries)
	copy(t.items[1+primaryCount:], secondaries)
	copy(t.colors[1:], colorNames)

	t.initHeaders()
	t.buildOptions(opts)
	return t, nil
}

// initHeaders wires the root and two header rings: primaries form a cycle
// rooted at index 0, secondaries form their own separate cycle rooted at
// their own first header (spec.md §3 Invariant 1 — the chooser never walks
// the secondary ring, but left/right still make it navigable).
func (t *Table[I, C]) initHeaders() {
	p := t.primaryCount
	s := t.secondaryCount
	namesCount := t.namesCount()

	t.left[0] = p
	for i := 0; i < p; i++ {
		t.left[i+1] = i
		t.right[i] = i + 1
		t.up[i+1] = i + 1
		t.down[i+1] = i + 1
	}
	// right[p] stays the zero value, closing the primary ring back to root.

	if s == 0 {
		return
	}
	first := p + 1
	t.left[first] = namesCount - 1
	t.up[first] = first
	t.down[first] = first
	for i := first; i < namesCount-1; i++ {
		t.left[i+1] = i
		t.right[i] = i + 1
		t.up[i+1] = i + 1
		t.down[i+1] = i + 1
	}
	t.right[namesCount-1] = first
}

// buildOptions appends each option's nodes and the spacer that follows it,
// starting at the spacer immediately after the headers (index namesCount).
func (t *Table[I, C]) buildOptions(opts []option) {
	prevSpacer := t.namesCount()
	current := prevSpacer + 1
	for _, opt := range opts {
		for _, e := range opt.entries {
			t.addNode(current, e.header, e.color, opt.cost, opt.index)
			current++
		}
		t.up[current] = prevSpacer + 1
		t.down[prevSpacer] = current - 1
		prevSpacer = current
		current++
	}
}

func (t *Table[I, C]) addNode(index, header, color, cost, rowIndex int) {
	t.length[header]++
	t.up[index] = t.up[header]
	t.down[index] = header
	t.top[index] = header
	t.down[t.up[index]] = index
	if t.down[header] == header {
		t.down[header] = index
	}
	t.up[header] = index
	t.cost[index] = cost
	t.color[index] = color
	t.rowOf[index] = rowIndex
}

// hide splices every node of the given row, other than the row node
// itself, out of its column (spec.md §4.2). Purified nodes are skipped:
// they already agree with their header's committed color and must stay
// linked for the matching unpurify to find them again.
func (t *Table[I, C]) hide(rowNode int) {
	i := rowNode + 1
	for i != rowNode {
		if t.color[i] == purifiedColor {
			i++
			continue
		}
		header := t.top[i]
		if header == 0 {
			i = t.up[i]
			continue
		}
		t.up[t.down[i]] = t.up[i]
		t.down[t.up[i]] = t.down[i]
		if t.length[header] == 0 {
			panic(fmt.Sprintf("dlx: underflowing header %v", t.items[header]))
		}
		t.length[header]--
		i++
	}
}

// unhide is hide's strict inverse, restoring the same set of nodes.
func (t *Table[I, C]) unhide(rowNode int) {
	i := rowNode + 1
	for i != rowNode {
		if t.color[i] == purifiedColor {
			i++
			continue
		}
		header := t.top[i]
		if header == 0 {
			i = t.up[i]
			continue
		}
		t.length[header]++
		t.up[t.down[i]] = i
		t.down[t.up[i]] = i
		i++
	}
}

// cover splices header h out of the horizontal header ring, then hides
// every row under h whose cost is strictly below threshold (spec.md §4.2;
// threshold is unboundedThreshold for DLX/DLXC).
func (t *Table[I, C]) cover(h, threshold int) {
	t.right[t.left[h]] = t.right[h]
	t.left[t.right[h]] = t.left[h]
	i := t.down[h]
	for i != h && t.cost[i] < threshold {
		t.hide(i)
		i = t.down[i]
	}
}

// uncover is cover's strict inverse.
func (t *Table[I, C]) uncover(h, threshold int) {
	i := t.down[h]
	for i != h && t.cost[i] < threshold {
		t.unhide(i)
		i = t.down[i]
	}
	t.left[t.right[h]] = h
	t.right[t.left[h]] = h
}

// purify hides every node under rowNode's header whose color disagrees
// with rowNode's color, and marks the agreeing ones purified so they
// survive this commitment untouched (spec.md §4.2, the color-aware
// analogue of cover for a single secondary header).
func (t *Table[I, C]) purify(rowNode, threshold int) {
	color := t.color[rowNode]
	header := t.top[rowNode]
	i := t.down[header]
	for i != header && t.cost[i] < threshold {
		if t.color[i] == color {
			t.color[i] = purifiedColor
		} else {
			t.hide(i)
		}
		i = t.down[i]
	}
}

// unpurify is purify's strict inverse.
func (t *Table[I, C]) unpurify(rowNode, threshold int) {
	color := t.color[rowNode]
	header := t.top[rowNode]
	i := t.down[header]
	for i != header && t.cost[i] < threshold {
		if t.color[i] == purifiedColor {
			t.color[i] = color
		} else {
			t.unhide(i)
		}
		i = t.down[i]
	}
}

// commit applies rowNode's entry to its header: an uncolored entry covers
// the header outright; a colored entry purifies the header's column and
// records the committed color (spec.md §4.2).
func (t *Table[I, C]) commit(rowNode, threshold int) {
	color := t.color[rowNode]
	header := t.top[rowNode]
	switch {
	case color == 0:
		t.cover(header, threshold)
	case color != purifiedColor:
		t.purify(rowNode, threshold)
		t.color[header] = color
	}
}

// uncommit is commit's strict inverse.
func (t *Table[I, C]) uncommit(rowNode, threshold int) {
	color := t.color[rowNode]
	header := t.top[rowNode]
	switch {
	case color == 0:
		t.uncover(header, threshold)
	case color != purifiedColor:
		t.unpurify(rowNode, threshold)
		t.color[header] = 0
	}
}

// coverRow commits every other entry of rowNode's option (spec.md §4.2).
func (t *Table[I, C]) coverRow(rowNode, threshold int) {
	i := rowNode + 1
	for i != rowNode {
		if t.top[i] == 0 {
			i = t.up[i]
			continue
		}
		t.commit(i, threshold)
		i++
	}
}

// uncoverRow is coverRow's strict inverse.
func (t *Table[I, C]) uncoverRow(rowNode, threshold int) {
	i := rowNode + 1
	for i != rowNode {
		if t.top[i] == 0 {
			i = t.up[i]
			continue
		}
		t.uncommit(i, threshold)
		i++
	}
}

// row extracts the entries of the option owning rowNode, starting with
// rowNode's own entry and continuing in declared order, wrapping past the
// option's spacer back to its first node.
func (t *Table[I, C]) row(rowNode int) ColoredRow[I, C] {
	out := make(ColoredRow[I, C], 0, 4)
	out = append(out, t.itemAt(rowNode))
	k := rowNode + 1
	for k != rowNode {
		if t.top[k] == 0 {
			k = t.up[k]
			continue
		}
		out = append(out, t.itemAt(k))
		k++
	}
	return out
}

func (t *Table[I, C]) itemAt(node int) ColoredItem[I, C] {
	header := t.top[node]
	ci := ColoredItem[I, C]{Item: t.items[header]}
	if cid := t.color[header]; cid != 0 && cid != purifiedColor {
		name := t.colors[cid]
		ci.Color = &name
	}
	return ci
}

// colorAssignments reports, for every secondary item, the color currently
// committed to it (spec.md §6: "mapping from secondary item to its
// committed color or none").
func (t *Table[I, C]) colorAssignments() []ColorAssignment[I, C] {
	out := make([]ColorAssignment[I, C], 0, t.secondaryCount)
	for h := t.primaryCount + 1; h < t.primaryCount+1+t.secondaryCount; h++ {
		cid := t.color[h]
		if cid == 0 {
			out = append(out, ColorAssignment[I, C]{Item: t.items[h]})
			continue
		}
		out = append(out, ColorAssignment[I, C]{Item: t.items[h], Color: t.colors[cid], HasColor: true})
	}
	return out
}
