package lazypp

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
)

// Metric keys for the TakeWhile stage.
const (
	TakeWhileYieldedTotal = metricz.Key("takewhile.yielded.total")
	TakeWhileLatchedTotal = metricz.Key("takewhile.latched.total")
)

// Hook event keys for the TakeWhile stage.
const (
	TakeWhileEventLatched = hookz.Key("takewhile.latched")
)

// TakeWhileEvent is emitted once, when a TakeWhile stage latches into
// its ended state.
type TakeWhileEvent struct {
	Name          Name      // Chain name the stage belongs to
	UpstreamEnded bool      // True when the latch was caused by upstream exhaustion
	Yielded       int       // Elements delivered before the latch
	Timestamp     time.Time // When the latch engaged
}

// TakeWhileSeq yields upstream elements while the predicate holds and
// then ends permanently. The latch is one-way: once the predicate has
// failed, or the upstream has ended, every later pull reports ended even
// if further upstream elements would satisfy the predicate.
//
// The first failing element is pulled from the upstream before the
// predicate runs, so it is consumed and discarded, never yielded or
// replayed. Callers whose upstreams carry side effects per pull should
// account for that extra pull.
type TakeWhileSeq[T any] struct {
	src     Sequence[T]
	pred    func(T) bool
	name    Name
	ended   bool
	yielded int
	clock   clockz.Clock

	metrics *metricz.Registry
	hooks   *hookz.Hooks[TakeWhileEvent]
}

// NewTakeWhileSeq creates a TakeWhileSeq over src. The predicate is
// captured by value and is not invoked until the first pull.
func NewTakeWhileSeq[T any](name Name, src Sequence[T], pred func(T) bool) *TakeWhileSeq[T] {
	registry := metricz.New()
	registry.Counter(TakeWhileYieldedTotal)
	registry.Counter(TakeWhileLatchedTotal)

	return &TakeWhileSeq[T]{
		name:    name,
		src:     src,
		pred:    pred,
		metrics: registry,
		hooks:   hookz.New[TakeWhileEvent](),
	}
}

// Next implements the Sequence interface.
func (w *TakeWhileSeq[T]) Next() Option[T] {
	if w.ended {
		return None[T]()
	}
	v, ok := w.src.Next().Get()
	if ok && w.pred(v) {
		w.yielded++
		w.metrics.Counter(TakeWhileYieldedTotal).Inc()
		return Some(v)
	}
	w.ended = true
	w.metrics.Counter(TakeWhileLatchedTotal).Inc()
	_ = w.hooks.Emit(context.Background(), TakeWhileEventLatched, TakeWhileEvent{ //nolint:errcheck
		Name:          w.name,
		UpstreamEnded: !ok,
		Yielded:       w.yielded,
		Timestamp:     w.getClock().Now(),
	})
	return None[T]()
}

// Name returns the chain name this stage reports events under.
func (w *TakeWhileSeq[T]) Name() Name {
	return w.name
}

// Metrics returns the metrics registry for this stage.
func (w *TakeWhileSeq[T]) Metrics() *metricz.Registry {
	return w.metrics
}

// WithClock sets the clock used for event timestamps.
func (w *TakeWhileSeq[T]) WithClock(clock clockz.Clock) *TakeWhileSeq[T] {
	w.clock = clock
	return w
}

func (w *TakeWhileSeq[T]) getClock() clockz.Clock {
	if w.clock == nil {
		return clockz.RealClock
	}
	return w.clock
}

// OnLatched registers a handler fired once, when the stage latches.
func (w *TakeWhileSeq[T]) OnLatched(handler func(context.Context, TakeWhileEvent) error) error {
	_, err := w.hooks.Hook(TakeWhileEventLatched, handler)
	return err
}

// Close shuts down the stage's hook dispatch.
func (w *TakeWhileSeq[T]) Close() error {
	w.hooks.Close()
	return nil
}
