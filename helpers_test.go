package dlx_test

import "time"

// timeZero is the unbounded-deadline sentinel (spec.md §4.5: zero means
// "no deadline").
var timeZero time.Time

// pastDeadline returns a deadline already in the past, forcing the very
// first state-machine step to observe a timeout.
func pastDeadline() time.Time {
	return time.Now().Add(-time.Hour)
}
