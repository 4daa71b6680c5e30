package lazypp

// Name identifies a chain or stage for event and trace attribution.
// Names are optional labels; they never affect pull semantics.
type Name = string

// Sequence is the core pull contract. A stage produces one element per
// Next call and returns None once it has ended. Next is stateful:
// repeated calls advance the stage, and a single stage instance must be
// driven by exactly one caller at a time.
//
// For most stages "ended" is permanent the moment the upstream source
// is exhausted; Take and TakeWhile additionally end on their own
// (counter reaching zero, predicate failing once) and latch that state
// forever.
type Sequence[T any] interface {
	Next() Option[T]
}

// SequenceFunc adapts an ordinary closure to the Sequence interface,
// for sources that don't warrant a named stage type.
type SequenceFunc[T any] func() Option[T]

// Next implements the Sequence interface.
func (f SequenceFunc[T]) Next() Option[T] {
	return f()
}
