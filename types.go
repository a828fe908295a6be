package dlx

// State enumerates the explicit state machine the search driver steps
// through (spec.md §4.4). The driver is exposed as an iterator precisely so
// that it can be driven one transition at a time without language-native
// coroutines (spec.md §9).
type State int

const (
	// StateCoveringColumn chooses the next branching item and covers it.
	StateCoveringColumn State = iota
	// StateCoveringRow covers the non-branching items of the option under trial.
	StateCoveringRow
	// StateBacktrackingRow uncovers the current option and advances to the next one.
	StateBacktrackingRow
	// StateBacktrackingColumn uncovers the branching item and returns to the
	// previous level.
	StateBacktrackingColumn
	// StateFoundSolution marks a complete exact cover at the current level.
	StateFoundSolution
)

// String renders the state the way spec.md §4.4 names it.
func (s State) String() string {
	switch s {
	case StateCoveringColumn:
		return "CoveringColumn"
	case StateCoveringRow:
		return "CoveringRow"
	case StateBacktrackingRow:
		return "BacktrackingRow"
	case StateBacktrackingColumn:
		return "BacktrackingColumn"
	case StateFoundSolution:
		return "FoundSolution"
	default:
		return "Unknown"
	}
}

// Outcome distinguishes why a one-shot entry point returned: spec.md §7
// requires "no cover exists" and "a deadline interrupted the search" to be
// distinguishable, so absence of a result is never conflated with a timeout.
type Outcome int

const (
	// NotFound means the search completed and no exact cover exists.
	NotFound Outcome = iota
	// Found means a result is attached.
	Found
	// TimedOut means the configured deadline elapsed before the search
	// could determine an answer (spec.md §4.5, §7).
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "NotFound"
	case Found:
		return "Found"
	case TimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// noColor is the color-name instantiation used internally for the plain DLX
// variant, which never attaches a color to a secondary item.
type noColor struct{}

// Row is one chosen option's items for the colorless DLX variant (spec.md
// §6, §8 scenario 3-6). It starts with the item the search branched on and
// continues through the option's items in declared order, wrapping around,
// so it is a rotation of the declared order.
type Row[I comparable] []I

// Cover is one complete exact cover: the list of chosen options' Rows, in
// the order the search committed to them.
type Cover[I comparable] []Row[I]

// ColoredItem is one (item, optional color) entry inside a DLXC/MCC option.
// A nil Color means the entry is uncolored; spec.md §3 reserves the integer
// 0 for that meaning internally, this is its exported equivalent.
type ColoredItem[I comparable, C comparable] struct {
	Item  I
	Color *C
}

// ColoredRow is one option's entries for the DLXC and MCC-DLXC variants. In
// a returned solution it starts with the item the search branched on and
// continues in declared order, wrapping around, as Row does.
type ColoredRow[I comparable, C comparable] []ColoredItem[I, C]

// ColorAssignment records the color committed to one secondary item by a
// particular solution, if any (spec.md §6: "mapping from secondary item to
// its committed color or none").
type ColorAssignment[I comparable, C comparable] struct {
	Item     I
	Color    C
	HasColor bool
}

// Solution is one exact cover discovered by the DLXC search.
type Solution[I comparable, C comparable] struct {
	Rows   []ColoredRow[I, C]
	Colors []ColorAssignment[I, C]
}

// CostSolution is a Solution together with the total cost of its chosen
// options (MCC-DLXC, spec.md §6).
type CostSolution[I comparable, C comparable] struct {
	Solution[I, C]
	Cost int
}

// CostOption is one input row for the MCC-DLXC variant: a set of entries
// plus the nonnegative cost charged for choosing this option as a whole
// (spec.md §4.1: "MCC additionally takes a nonnegative integer cost per
// option").
type CostOption[I comparable, C comparable] struct {
	Entries []ColoredItem[I, C]
	Cost    int
}
