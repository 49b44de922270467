package arraybuilder

import "errors"

var (
	// ErrNotFull is returned by Build when the builder still has
	// unfilled capacity. The builder is left untouched and can keep
	// accepting elements.
	ErrNotFull = errors.New("builder is not full")
)
