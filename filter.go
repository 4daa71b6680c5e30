package lazypp

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
)

// Metric keys for the Filter stage.
const (
	FilterTestedTotal  = metricz.Key("filter.tested.total")
	FilterPassedTotal  = metricz.Key("filter.passed.total")
	FilterSkippedTotal = metricz.Key("filter.skipped.total")
)

// Hook event keys for the Filter stage.
const (
	FilterEventPassed  = hookz.Key("filter.passed")
	FilterEventSkipped = hookz.Key("filter.skipped")
)

// FilterEvent represents one predicate decision. It is emitted via
// hookz each time the filter tests an upstream element, allowing
// external systems to track how selective a chain is without touching
// the pull path.
type FilterEvent struct {
	Name      Name      // Chain name the stage belongs to
	Passed    bool      // Whether the element satisfied the predicate
	Timestamp time.Time // When the decision was made
}

// FilterSeq yields only the upstream elements that satisfy a predicate.
// The element type is unchanged; skipped elements are consumed from the
// upstream and discarded internally.
//
// This is the one stage whose single Next call may perform an unbounded
// number of upstream pulls: it keeps pulling until something passes or
// the upstream ends. A filter over an infinite generator whose predicate
// never holds will therefore never return from Next.
//
// # Observability
//
// Metrics:
//   - filter.tested.total: Counter of elements tested
//   - filter.passed.total: Counter of elements that passed
//   - filter.skipped.total: Counter of elements discarded
//
// Events (via hooks):
//   - filter.passed: Fired when an element satisfies the predicate
//   - filter.skipped: Fired when an element is discarded
//
// Example:
//
//	evens := lazypp.NewFilterSeq("evens", src, func(n int) bool {
//	    return n%2 == 0
//	})
//	evens.OnSkipped(func(_ context.Context, event lazypp.FilterEvent) error {
//	    log.Printf("discarded an element at %v", event.Timestamp)
//	    return nil
//	})
type FilterSeq[T any] struct {
	src   Sequence[T]
	pred  func(T) bool
	name  Name
	clock clockz.Clock

	metrics *metricz.Registry
	hooks   *hookz.Hooks[FilterEvent]
}

// NewFilterSeq creates a FilterSeq over src. The predicate is captured
// by value and is not invoked until the first pull.
func NewFilterSeq[T any](name Name, src Sequence[T], pred func(T) bool) *FilterSeq[T] {
	registry := metricz.New()
	registry.Counter(FilterTestedTotal)
	registry.Counter(FilterPassedTotal)
	registry.Counter(FilterSkippedTotal)

	return &FilterSeq[T]{
		name:    name,
		src:     src,
		pred:    pred,
		metrics: registry,
		hooks:   hookz.New[FilterEvent](),
	}
}

// Next implements the Sequence interface. It pulls from the upstream
// until an element satisfies the predicate or the upstream ends.
func (f *FilterSeq[T]) Next() Option[T] {
	for {
		v, ok := f.src.Next().Get()
		if !ok {
			return None[T]()
		}
		f.metrics.Counter(FilterTestedTotal).Inc()
		if f.pred(v) {
			f.metrics.Counter(FilterPassedTotal).Inc()
			_ = f.hooks.Emit(context.Background(), FilterEventPassed, FilterEvent{ //nolint:errcheck
				Name:      f.name,
				Passed:    true,
				Timestamp: f.getClock().Now(),
			})
			return Some(v)
		}
		f.metrics.Counter(FilterSkippedTotal).Inc()
		_ = f.hooks.Emit(context.Background(), FilterEventSkipped, FilterEvent{ //nolint:errcheck
			Name:      f.name,
			Passed:    false,
			Timestamp: f.getClock().Now(),
		})
	}
}

// Name returns the chain name this stage reports events under.
func (f *FilterSeq[T]) Name() Name {
	return f.name
}

// Metrics returns the metrics registry for this stage.
func (f *FilterSeq[T]) Metrics() *metricz.Registry {
	return f.metrics
}

// WithClock sets the clock used for event timestamps.
func (f *FilterSeq[T]) WithClock(clock clockz.Clock) *FilterSeq[T] {
	f.clock = clock
	return f
}

func (f *FilterSeq[T]) getClock() clockz.Clock {
	if f.clock == nil {
		return clockz.RealClock
	}
	return f.clock
}

// OnPassed registers a handler fired when an element satisfies the
// predicate. Handlers run asynchronously off the pull path.
func (f *FilterSeq[T]) OnPassed(handler func(context.Context, FilterEvent) error) error {
	_, err := f.hooks.Hook(FilterEventPassed, handler)
	return err
}

// OnSkipped registers a handler fired when an element is discarded.
func (f *FilterSeq[T]) OnSkipped(handler func(context.Context, FilterEvent) error) error {
	_, err := f.hooks.Hook(FilterEventSkipped, handler)
	return err
}

// Close shuts down the stage's hook dispatch.
func (f *FilterSeq[T]) Close() error {
	f.hooks.Close()
	return nil
}
