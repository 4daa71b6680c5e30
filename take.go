package lazypp

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
)

// Metric keys for the Take stage.
const (
	TakeYieldedTotal   = metricz.Key("take.yielded.total")
	TakeExhaustedTotal = metricz.Key("take.exhausted.total")
)

// Hook event keys for the Take stage.
const (
	TakeEventExhausted = hookz.Key("take.exhausted")
)

// TakeEvent is emitted when a Take stage spends its element budget.
type TakeEvent struct {
	Name      Name      // Chain name the stage belongs to
	Requested int       // Budget the stage was created with
	Yielded   int       // Elements actually delivered
	Timestamp time.Time // When the budget was spent
}

// TakeSeq bounds the upstream to at most n elements. Once the remaining
// count reaches zero every subsequent pull reports ended without
// touching the upstream. Termination is one-way: nothing resets the
// counter.
//
// If the upstream ends before the budget is spent, the stage simply
// relays that end; the upstream's own exhaustion is already permanent,
// so no extra latch is needed.
type TakeSeq[T any] struct {
	src       Sequence[T]
	name      Name
	remaining int
	requested int
	yielded   int
	clock     clockz.Clock

	metrics *metricz.Registry
	hooks   *hookz.Hooks[TakeEvent]
}

// NewTakeSeq creates a TakeSeq with a budget of n elements. A budget of
// zero (or less) produces a stage that is ended from the start and
// never pulls the upstream at all.
func NewTakeSeq[T any](name Name, src Sequence[T], n int) *TakeSeq[T] {
	if n < 0 {
		n = 0
	}
	registry := metricz.New()
	registry.Counter(TakeYieldedTotal)
	registry.Counter(TakeExhaustedTotal)

	return &TakeSeq[T]{
		name:      name,
		src:       src,
		remaining: n,
		requested: n,
		metrics:   registry,
		hooks:     hookz.New[TakeEvent](),
	}
}

// Next implements the Sequence interface.
func (t *TakeSeq[T]) Next() Option[T] {
	if t.remaining == 0 {
		return None[T]()
	}
	t.remaining--
	v := t.src.Next()
	if v.IsSome() {
		t.yielded++
		t.metrics.Counter(TakeYieldedTotal).Inc()
	}
	if t.remaining == 0 {
		t.metrics.Counter(TakeExhaustedTotal).Inc()
		_ = t.hooks.Emit(context.Background(), TakeEventExhausted, TakeEvent{ //nolint:errcheck
			Name:      t.name,
			Requested: t.requested,
			Yielded:   t.yielded,
			Timestamp: t.getClock().Now(),
		})
	}
	return v
}

// Name returns the chain name this stage reports events under.
func (t *TakeSeq[T]) Name() Name {
	return t.name
}

// Metrics returns the metrics registry for this stage.
func (t *TakeSeq[T]) Metrics() *metricz.Registry {
	return t.metrics
}

// WithClock sets the clock used for event timestamps.
func (t *TakeSeq[T]) WithClock(clock clockz.Clock) *TakeSeq[T] {
	t.clock = clock
	return t
}

func (t *TakeSeq[T]) getClock() clockz.Clock {
	if t.clock == nil {
		return clockz.RealClock
	}
	return t.clock
}

// OnExhausted registers a handler fired once, when the element budget
// is spent. It does not fire when the upstream ends early.
func (t *TakeSeq[T]) OnExhausted(handler func(context.Context, TakeEvent) error) error {
	_, err := t.hooks.Hook(TakeEventExhausted, handler)
	return err
}

// Close shuts down the stage's hook dispatch.
func (t *TakeSeq[T]) Close() error {
	t.hooks.Close()
	return nil
}
