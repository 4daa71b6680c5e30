package lazypp

// Generator is an infinite source stage. Every pull invokes the
// captured function exactly once and wraps its result, so side effects
// inside the function happen once per produced element, in pull order.
//
// A Generator never returns None. A chain built on one must be bounded
// downstream (Take, TakeWhile, or a Filter feeding a bound) before it
// is driven by Each, or the drive never returns.
type Generator[T any] struct {
	fn func() T
}

// NewGenerator creates a Generator around fn. The function is captured
// by value and is not invoked until the first pull.
func NewGenerator[T any](fn func() T) *Generator[T] {
	return &Generator[T]{fn: fn}
}

// Next implements the Sequence interface. It always yields a value.
func (g *Generator[T]) Next() Option[T] {
	return Some(g.fn())
}

// FromGenerator builds a chain over an infinite source that calls fn on
// every pull. The element type is inferred from fn's return type.
//
// Example:
//
//	n := 0
//	naturals := lazypp.FromGenerator("naturals", func() int {
//	    n++
//	    return n
//	})
//	naturals.Take(3).Each(func(v int) {
//	    fmt.Println(v) // 1, 2, 3
//	})
func FromGenerator[T any](name Name, fn func() T) Chain[T] {
	return newChain[T](name, NewGenerator(fn), nil)
}
