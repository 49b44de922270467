package arraybuilder

import "iter"

// Chunker regroups a stream of elements into arrays of a fixed size.
// Elements are pulled from the source sequence on demand and staged in
// an internal builder until a full chunk can be moved out.
type Chunker[T any] struct {
	builder *Builder[T]
	next    func() (T, bool)
	stop    func()
}

// NewChunker returns a chunker that cuts seq into arrays of exactly
// size elements. A size below 1 panics.
//
// The caller should call Stop when done to release the source sequence,
// typically with defer.
func NewChunker[T any](seq iter.Seq[T], size int) *Chunker[T] {
	if size < 1 {
		panic("arraybuilder: chunk size must be positive")
	}

	next, stop := iter.Pull(seq)

	return &Chunker[T]{
		builder: New[T](size),
		next:    next,
		stop:    stop,
	}
}

// Next returns the next full chunk. When the source ends before another
// chunk fills up, Next reports false; any elements pulled past the last
// full chunk stay staged and remain accessible through Remaining.
func (c *Chunker[T]) Next() ([]T, bool) {
	for !c.builder.IsFull() {
		t, ok := c.next()
		if !ok {
			return nil, false
		}
		c.builder.PushUnchecked(t)
	}

	return c.builder.Take().BuildUnchecked(), true
}

// Remaining returns the staged elements that did not amount to a full
// chunk. The view follows the rules of Builder.Slice and is only
// meaningful after Next has reported false.
func (c *Chunker[T]) Remaining() []T {
	return c.builder.Slice()
}

// Stop releases the source sequence. After Stop, Next reports false.
func (c *Chunker[T]) Stop() {
	c.stop()
}

// Chunks cuts seq into arrays of exactly size elements and yields them
// in order. A trailing run shorter than size is dropped; use a Chunker
// when the remainder matters. A size below 1 panics.
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size < 1 {
		panic("arraybuilder: chunk size must be positive")
	}

	return func(yield func([]T) bool) {
		b := New[T](size)
		for t := range seq {
			b.PushUnchecked(t)
			if b.IsFull() && !yield(b.Take().BuildUnchecked()) {
				return
			}
		}
	}
}
