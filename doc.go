// Package lazypp provides a lightweight, type-safe library for building lazy pull-based sequences in Go.
//
// # Overview
//
// lazypp lets callers compose independently-defined transformation stages into a
// single pull chain with no intermediate buffering. Construction builds a nested
// chain of stages without evaluating anything; only the terminal Each call (or a
// direct Next pull) drives the chain, one element at a time, from the outermost
// stage down to the source and back up through every transformation.
//
// # Core Concepts
//
// The library is built around one small contract:
//
//   - Sequence[T]: the pull interface with Next() Option[T]
//   - Option[T]: the sole end-of-sequence signal — Some while producing, None once ended
//   - Chain[T]: the fluent front-end holding exactly one stage and composing new ones
//
// Every stage implements Sequence, so stages nest freely while element types stay
// checked at compile time through generics. There is no error channel: logical
// termination is always None, and panics from caller-supplied functions unwind
// through Next and Each unmodified.
//
// # Sources
//
//   - FromGenerator: infinite source calling a function on every pull
//   - Range / RangeStep / RangeFunc: bounded or custom-stepped progressions
//   - FromSlice: finite source over an existing slice
//   - FromSequence: wrap any Sequence implementation
//
// # Stages
//
//   - Map: transform each element (package-level Map changes the element type)
//   - Filter: keep elements satisfying a predicate, preserving order
//   - Take: bound the chain to at most n elements
//   - TakeWhile: yield while a predicate holds, then latch ended forever
//   - Drop: skip a fixed-length prefix
//   - Zip: pair two chains element-by-element
//
// # Usage Example
//
//	evens := lazypp.Range("digits", 0, 10).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Take(2)
//
//	evens.Each(func(n int) {
//	    fmt.Println(n) // 0, 2
//	})
//
// Generators are infinite by construction and must be bounded downstream before
// a chain built on one is drained:
//
//	n := 0
//	squares := lazypp.FromGenerator("squares", func() int {
//	    n++
//	    return n * n
//	})
//	squares.TakeWhile(func(v int) bool { return v < 50 }).Each(print)
//
// # Concurrency
//
// The model is single-threaded and fully synchronous. A stage instance must be
// driven by exactly one caller at a time; Each blocks until the chain is
// exhausted and offers no cancellation or timeout at this layer. Nothing is
// shared between stages beyond values captured at construction, so the pull
// path needs no locks.
//
// # Observability
//
// Decision-making stages (Filter, Take, TakeWhile) and the Each terminal expose
// metrics registries, trace spans, and typed event hooks. Observability is
// strictly read-only: it never alters pull semantics, never inspects caller
// functions, and never intercepts panics.
package lazypp
