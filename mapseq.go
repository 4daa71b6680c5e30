package lazypp

// MapSeq transforms each upstream element with a captured function.
// The element type B is inferred from the function's return type at
// construction; callers never declare it separately.
//
// Next performs exactly one upstream pull per call. There is no
// look-ahead and no buffering: when the upstream yields, the transform
// is applied and the result returned; when the upstream has ended, the
// transform is not invoked.
type MapSeq[A, B any] struct {
	src Sequence[A]
	fn  func(A) B
}

// NewMapSeq creates a MapSeq over src. The transform is captured by
// value and is not invoked until the first pull.
func NewMapSeq[A, B any](src Sequence[A], fn func(A) B) *MapSeq[A, B] {
	return &MapSeq[A, B]{src: src, fn: fn}
}

// Next implements the Sequence interface.
func (m *MapSeq[A, B]) Next() Option[B] {
	v, ok := m.src.Next().Get()
	if !ok {
		return None[B]()
	}
	return Some(m.fn(v))
}
