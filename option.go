package lazypp

import "fmt"

// Option represents presence or absence of a value of type T. It is the
// only signal the pull protocol uses: a stage that has a value returns
// Some, a stage that has ended returns None. The zero value is None.
//
// Values are stored inline with no pointer boxing, so Options copy
// cheaply and Some of a nil-capable value stays distinguishable from
// None via IsSome.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value in a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option for T. Every stage in this package uses
// None to mean "ended"; there is no separate error channel.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's common (value, ok) return shape.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the contained value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer for debugging output.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
