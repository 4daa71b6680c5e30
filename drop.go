package lazypp

// DropSeq skips the first n upstream elements and then passes the rest
// through unchanged. The skip happens lazily on the first pull; if the
// upstream ends while skipping, the stage simply relays that end.
type DropSeq[T any] struct {
	src     Sequence[T]
	n       int
	skipped bool
}

// NewDropSeq creates a DropSeq over src. Dropping zero or fewer
// elements leaves the upstream untouched.
func NewDropSeq[T any](src Sequence[T], n int) *DropSeq[T] {
	return &DropSeq[T]{src: src, n: n}
}

// Next implements the Sequence interface.
func (d *DropSeq[T]) Next() Option[T] {
	if !d.skipped {
		d.skipped = true
		for i := 0; i < d.n; i++ {
			if d.src.Next().IsNone() {
				return None[T]()
			}
		}
	}
	return d.src.Next()
}
