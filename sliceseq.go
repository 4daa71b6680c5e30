package lazypp

// SliceSeq is a finite source stage over a caller-provided slice. The
// slice is not copied; callers must not mutate it while the stage is
// being pulled.
type SliceSeq[T any] struct {
	values []T
	idx    int
}

// NewSliceSeq creates a SliceSeq over values.
func NewSliceSeq[T any](values []T) *SliceSeq[T] {
	return &SliceSeq[T]{values: values}
}

// Next implements the Sequence interface.
func (s *SliceSeq[T]) Next() Option[T] {
	if s.idx >= len(s.values) {
		return None[T]()
	}
	v := s.values[s.idx]
	s.idx++
	return Some(v)
}

// FromSlice builds a chain over the elements of values, in order.
func FromSlice[T any](name Name, values []T) Chain[T] {
	return newChain[T](name, NewSliceSeq(values), nil)
}
