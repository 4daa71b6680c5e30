package lazypp

// Real constrains Range to the built-in numeric types that support
// the default +1 step.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// RangeSeq is a stateful source stage that walks a progression from a
// starting cursor. The end test runs against the current cursor before
// anything is produced: when isLast reports true the stage is ended and
// never advances again, so a range whose start already satisfies the
// end test yields nothing at all.
//
// Each successful pull yields the current cursor and then advances it
// with the step function (post-increment order).
type RangeSeq[T any] struct {
	cursor T
	isLast func(T) bool
	step   func(T) T
}

// NewRangeSeq creates the fully general range stage from a start
// cursor, an end test, and a successor function. Neither function is
// invoked until the first pull.
func NewRangeSeq[T any](start T, isLast func(T) bool, step func(T) T) *RangeSeq[T] {
	return &RangeSeq[T]{cursor: start, isLast: isLast, step: step}
}

// Next implements the Sequence interface.
func (r *RangeSeq[T]) Next() Option[T] {
	if r.isLast(r.cursor) {
		return None[T]()
	}
	v := r.cursor
	r.cursor = r.step(r.cursor)
	return Some(v)
}

// Range builds a chain over the numeric progression [start, end) with a
// step of one. Range("digits", 0, 5) yields 0, 1, 2, 3, 4; an empty
// range such as Range("none", 0, 0) yields nothing.
func Range[T Real](name Name, start, end T) Chain[T] {
	return RangeFunc(name, start,
		func(v T) bool { return v == end },
		func(v T) T { return v + 1 })
}

// RangeStep builds a chain from start up to (but excluding) end, using
// equality as the end test and step as the successor function. The step
// must eventually produce a value equal to end or the chain is
// unbounded.
func RangeStep[T comparable](name Name, start, end T, step func(T) T) Chain[T] {
	return RangeFunc(name, start,
		func(v T) bool { return v == end },
		step)
}

// RangeFunc builds a chain from the fully general range form: a start
// cursor, an end test evaluated before each yield, and a successor
// function.
func RangeFunc[T any](name Name, start T, isLast func(T) bool, step func(T) T) Chain[T] {
	return newChain[T](name, NewRangeSeq(start, isLast, step), nil)
}
