package arraybuilder

import (
	"fmt"
	"iter"
)

// Builder incrementally constructs an array of exactly Cap() elements.
//
// The builder owns a fixed-capacity storage region. Elements pushed so
// far form the live prefix, in insertion order; the remaining slots are
// unoccupied and are never read, exposed, or retained. Once the builder
// is full, Build moves the completed array out in one step.
//
// The zero value is a spent builder with capacity 0; use New or From.
type Builder[T any] struct {
	// buf holds the live prefix as its length and the fixed capacity as
	// its capacity. A nil buf marks a spent builder.
	buf     []T
	release func(T)
}

// New creates an empty builder that can hold exactly capacity elements.
// No element storage is touched until elements are pushed.
//
// A capacity of 0 is valid: the builder is both empty and full, and
// Build succeeds immediately with an empty array. A negative capacity
// panics.
func New[T any](capacity int, opts ...Option[T]) *Builder[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("arraybuilder: negative capacity %d", capacity))
	}

	b := &Builder[T]{buf: make([]T, 0, capacity)}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	return b
}

// From adopts a fully formed slice as a full builder: the capacity is
// len(elems) and every element is already live. Ownership of the slice
// transfers to the builder in bulk; the caller must not use or retain
// elems after the call. No element is copied.
func From[T any](elems []T, opts ...Option[T]) *Builder[T] {
	// Clip spare capacity so the adopted length is the exact capacity.
	b := &Builder[T]{buf: elems[:len(elems):len(elems)]}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	return b
}

// Len returns the number of live elements, 0 through Cap().
func (b *Builder[T]) Len() int {
	return len(b.buf)
}

// Cap returns the fixed capacity. A spent builder reports 0.
func (b *Builder[T]) Cap() int {
	return cap(b.buf)
}

// IsEmpty reports whether the builder holds no live elements.
func (b *Builder[T]) IsEmpty() bool {
	return len(b.buf) == 0
}

// IsFull reports whether every slot holds a live element.
func (b *Builder[T]) IsFull() bool {
	return len(b.buf) == cap(b.buf)
}

// Slice returns the live prefix in insertion order as a read/write
// view. The view is valid until the next operation that mutates the
// builder; it must not be retained across mutations. Appending to the
// returned slice reallocates and never touches builder storage.
func (b *Builder[T]) Slice() []T {
	return b.buf[:len(b.buf):len(b.buf)]
}

// Values returns an iterator over the live prefix in insertion order.
// The builder must not be mutated during iteration.
func (b *Builder[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range b.buf {
			if !yield(t) {
				return
			}
		}
	}
}

// Push appends t at the end of the live prefix, taking ownership of it.
//
// Pushing into a full builder is a contract violation and panics; the
// builder is left intact and t stays with the caller. Use TryPush when
// overflow is an expected outcome.
func (b *Builder[T]) Push(t T) {
	if len(b.buf) == cap(b.buf) {
		panic("arraybuilder: push on full builder")
	}
	b.buf = append(b.buf, t)
}

// TryPush appends t and reports true when there is room. When the
// builder is full it reports false and changes nothing; the caller
// keeps t.
func (b *Builder[T]) TryPush(t T) bool {
	if len(b.buf) == cap(b.buf) {
		return false
	}
	b.buf = append(b.buf, t)
	return true
}

// PushUnchecked appends t without the capacity guard.
//
// The caller must have established len < cap, typically by bounding a
// loop with IsFull or Cap. Pushing into a full or spent builder is
// outside the contract; behavior is unspecified (the runtime stops it
// with a bounds panic, without a descriptive message).
func (b *Builder[T]) PushUnchecked(t T) {
	n := len(b.buf)
	b.buf = b.buf[:n+1]
	b.buf[n] = t
}

// Pop removes and returns the most recently pushed element, handing its
// ownership to the caller. The second result is false when the builder
// is empty, in which case nothing changes.
//
// The vacated slot becomes unoccupied again and retains no reference to
// the element.
func (b *Builder[T]) Pop() (T, bool) {
	if len(b.buf) == 0 {
		var zero T
		return zero, false
	}
	return b.PopUnchecked(), true
}

// PopUnchecked removes and returns the last element without the
// emptiness guard. The caller must have established len > 0; popping an
// empty builder is outside the contract and behavior is unspecified.
func (b *Builder[T]) PopUnchecked() T {
	n := len(b.buf) - 1
	t := b.buf[n]

	var zero T
	b.buf[n] = zero // release the slot; ownership moved to the caller
	b.buf = b.buf[:n]

	return t
}

// Clear releases every live element exactly once, in insertion order,
// and resets the length to 0. Storage is kept, so the builder can be
// refilled without reallocating. Unoccupied slots are never visited.
func (b *Builder[T]) Clear() {
	if b.release != nil {
		for _, t := range b.buf {
			b.release(t)
		}
	}
	clear(b.buf) // drop references so the elements can be collected
	b.buf = b.buf[:0]
}

// Take moves the builder's entire state into the returned builder and
// re-arms the receiver with fresh empty storage of the same capacity.
// No element is copied or released; only ownership moves.
//
//	b1 := arraybuilder.From([]int{1, 2, 3, 4})
//	b2 := b1.Take()
//	// b1.IsEmpty() == true, b2.IsFull() == true
func (b *Builder[T]) Take() *Builder[T] {
	taken := &Builder[T]{buf: b.buf, release: b.release}
	b.buf = make([]T, 0, cap(b.buf))
	return taken
}

// Clone returns a builder with the same capacity and release hook
// holding a copy of the live prefix in fresh storage. The copy is
// shallow: element values are duplicated as-is, so cloning a builder of
// resource-owning elements shares those resources between both
// builders.
func (b *Builder[T]) Clone() *Builder[T] {
	c := &Builder[T]{buf: make([]T, 0, cap(b.buf)), release: b.release}
	c.buf = append(c.buf, b.buf...)
	return c
}

// Build completes construction: when the builder is full it returns the
// storage as an array of exactly Cap() elements in insertion order,
// transferring ownership of all of them to the caller, and leaves the
// builder spent. A spent builder holds no storage, reports capacity 0,
// and releases nothing.
//
// When the builder is not yet full, Build returns ErrNotFull and leaves
// the builder completely untouched, so the caller can keep pushing.
func (b *Builder[T]) Build() ([]T, error) {
	if len(b.buf) != cap(b.buf) {
		return nil, ErrNotFull
	}

	out := b.buf
	b.buf = nil // disarm: ownership of every element moved out
	return out, nil
}

// BuildUnchecked completes construction without the fullness guard. The
// caller must have established len == cap. Building a partially filled
// builder is outside the contract: the returned array would present
// unoccupied slots as elements.
func (b *Builder[T]) BuildUnchecked() []T {
	out := b.buf[:cap(b.buf)]
	b.buf = nil
	return out
}

// Release releases every remaining live element exactly once, in
// insertion order, then drops the storage entirely, leaving the builder
// spent. It is intended to run deferred:
//
//	b := arraybuilder.New[*os.File](4, arraybuilder.WithOnRelease(closeFile))
//	defer b.Release()
//
// The deferred call runs on every exit path, including panics, so
// elements placed before an abnormal exit are still released. After a
// successful Build there is nothing left to release and the call is a
// no-op.
func (b *Builder[T]) Release() {
	if b.release != nil {
		for _, t := range b.buf {
			b.release(t)
		}
	}
	b.buf = nil
}

// String returns a debug summary with the capacity, current length, and
// live elements.
func (b *Builder[T]) String() string {
	return fmt.Sprintf("Builder{capacity: %d, length: %d, values: %v}", cap(b.buf), len(b.buf), b.buf)
}
