package dlx

import "time"

// SolveOptions groups a deadline and a chooser seed, grounded on
// flow.FlowOptions / flow.DefaultOptions()'s functional-defaults pattern.
// No entry point takes a SolveOptions: the deadline-bounded functions take
// a time.Time argument and the *Randomized functions take a seed argument,
// so a caller passes these fields on explicitly.
type SolveOptions struct {
	// Deadline is a wall-clock bound, in the form the deadline-bounded
	// entry points accept. The zero time.Time means unbounded.
	Deadline time.Time

	// Seed is a seed in the form the *Randomized entry points accept.
	Seed int64
}

// DefaultSolveOptions returns unbounded, deterministic defaults.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{}
}

func (o SolveOptions) hasDeadline() bool {
	return !o.Deadline.IsZero()
}
