package lazypp

// Pair holds two values paired from two sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ZipSeq pairs elements from two upstreams element-by-element, ending
// as soon as either upstream ends. Both upstreams are pulled
// sequentially (first a, then b) within each Next call, which is safe
// under the single-consumer model.
//
// When a yields and b turns out to be ended, a's element is consumed
// and discarded; upstreams with side effects per pull should account
// for that.
type ZipSeq[A, B any] struct {
	a Sequence[A]
	b Sequence[B]
}

// NewZipSeq creates a ZipSeq over the two upstreams.
func NewZipSeq[A, B any](a Sequence[A], b Sequence[B]) *ZipSeq[A, B] {
	return &ZipSeq[A, B]{a: a, b: b}
}

// Next implements the Sequence interface.
func (z *ZipSeq[A, B]) Next() Option[Pair[A, B]] {
	va, ok := z.a.Next().Get()
	if !ok {
		return None[Pair[A, B]]()
	}
	vb, ok := z.b.Next().Get()
	if !ok {
		return None[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: va, Second: vb})
}

// Zip pairs two chains element-by-element into a chain of Pairs. The
// result ends when either input ends and inherits the first chain's
// name and clock.
func Zip[A, B any](a Chain[A], b Chain[B]) Chain[Pair[A, B]] {
	return newChain[Pair[A, B]](a.name, NewZipSeq[A, B](a.seq, b.seq), a.clock)
}
