// Package arraybuilder provides an incremental builder for arrays of a
// fixed, predeclared size.
//
// A Builder accepts elements one at a time up to its capacity and hands
// the completed array over in a single move once every slot is filled.
// Between construction and completion it behaves like a bounded stack:
// elements can be pushed, popped, inspected, and cleared, always as a
// contiguous prefix in insertion order.
//
// # Quick Start
//
//	b := arraybuilder.New[int](4)
//	for i := 0; !b.IsFull(); i++ {
//	    b.Push(i * i)
//	}
//	squares, _ := b.Build() // [0 1 4 9]
//
// Build refuses to complete a partially filled builder:
//
//	b := arraybuilder.New[int](4)
//	b.Push(1)
//	if _, err := b.Build(); errors.Is(err, arraybuilder.ErrNotFull) {
//	    // builder untouched, keep pushing
//	}
//
// # Ownership and Release
//
// The builder owns its live elements. Pop, Build, and Take hand
// ownership back to the caller; Clear and Release discard it. For
// element types that hold external resources, WithOnRelease registers a
// hook that runs exactly once per discarded element:
//
//	b := arraybuilder.New[*os.File](4, arraybuilder.WithOnRelease(func(f *os.File) {
//	    f.Close()
//	}))
//	defer b.Release()
//
// The deferred Release runs on every exit path, so files opened into
// the builder are closed even when a later step panics. After a
// successful Build the builder is spent and Release does nothing.
//
// # Checked and Unchecked Operations
//
// Every boundary-sensitive operation comes in tiers. TryPush, Pop, and
// Build report overflow, underflow, and incompleteness as ordinary
// results and leave the builder untouched on refusal. Push panics on
// overflow. PushUnchecked, PopUnchecked, and BuildUnchecked skip the
// guard entirely for callers that have already established it, such as
// a loop bounded by IsFull.
//
// # Chunking
//
// Chunker and Chunks regroup a stream into fixed-size arrays:
//
//	c := arraybuilder.NewChunker(seq, 4)
//	defer c.Stop()
//	for chunk, ok := c.Next(); ok; chunk, ok = c.Next() {
//	    process(chunk)
//	}
//	tail := c.Remaining()
package arraybuilder
