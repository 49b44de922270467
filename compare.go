package arraybuilder

import (
	"cmp"
	"slices"
)

// view returns the live prefix of b, treating a nil builder as empty.
func view[T any](b *Builder[T]) []T {
	if b == nil {
		return nil
	}
	return b.buf
}

// Equal reports whether a and b hold the same live elements in the same
// order. Capacity and release hooks do not participate: a full builder
// of capacity 2 and a half-filled builder of capacity 4 compare equal
// when their live prefixes match. A nil builder compares as empty.
func Equal[T comparable](a, b *Builder[T]) bool {
	return slices.Equal(view(a), view(b))
}

// EqualFunc is like Equal but compares elements with eq, allowing
// element types without built-in equality.
func EqualFunc[T1, T2 any](a *Builder[T1], b *Builder[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(view(a), view(b), eq)
}

// Compare orders a and b lexicographically by their live prefixes, the
// way slices.Compare does: it returns -1 when a is less, 0 when equal,
// and +1 when a is greater, with a shorter prefix ordering first when
// it matches the longer one element for element.
func Compare[T cmp.Ordered](a, b *Builder[T]) int {
	return slices.Compare(view(a), view(b))
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T1, T2 any](a *Builder[T1], b *Builder[T2], cmp func(T1, T2) int) int {
	return slices.CompareFunc(view(a), view(b), cmp)
}
