package dlx

import "fmt"

// UnknownItemError is returned while constructing a table when an option
// names an item absent from the declared primary/secondary lists (spec.md
// §4.1, §4.5). It carries the offending option's input index so a caller
// debugging a large problem can find the bad row without re-scanning it.
type UnknownItemError[I comparable] struct {
	Item        I
	OptionIndex int
}

func (e *UnknownItemError[I]) Error() string {
	return fmt.Sprintf("dlx: option %d references unknown item %v", e.OptionIndex, e.Item)
}

// UnknownColorError is returned while constructing a table when an option
// colors an item with a name absent from the declared color list (spec.md
// §4.1, §4.5).
type UnknownColorError[I comparable, C comparable] struct {
	Item        I
	Color       C
	OptionIndex int
}

func (e *UnknownColorError[I, C]) Error() string {
	return fmt.Sprintf("dlx: option %d colors item %v with unknown color %v", e.OptionIndex, e.Item, e.Color)
}
