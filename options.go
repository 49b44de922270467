package arraybuilder

// Option configures a Builder at construction time.
type Option[T any] func(*Builder[T])

// WithOnRelease registers fn as the release hook for elements the
// builder discards. Clear and Release invoke fn exactly once per live
// element, in insertion order. Operations that transfer ownership to
// the caller (Pop, Build, Take) never invoke it.
//
// Passing nil disables the hook.
func WithOnRelease[T any](fn func(T)) Option[T] {
	return func(b *Builder[T]) {
		b.release = fn
	}
}
