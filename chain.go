package lazypp

import (
	"context"
	"strconv"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Chain terminal.
const (
	// Metrics.
	EachDrivesTotal   = metricz.Key("each.drives.total")
	EachElementsTotal = metricz.Key("each.elements.total")
	EachDurationMs    = metricz.Key("each.duration.ms")

	// Spans.
	EachDriveSpan = tracez.Key("each.drive")

	// Tags.
	EachTagChain    = tracez.Tag("each.chain")
	EachTagElements = tracez.Tag("each.elements")

	// Hook event keys.
	DriveEventComplete = hookz.Key("each.complete")
)

// DriveEvent is emitted when Each finishes draining a chain.
type DriveEvent struct {
	Name      Name          // Chain name
	Elements  int           // Elements delivered to the callback
	Duration  time.Duration // Wall time for the whole drive
	Timestamp time.Time     // When the drive completed
}

// Chain is the fluent front-end over a single sequence stage. Each
// combinator method wraps the held stage in a new one and returns a new
// Chain owning the result; nothing upstream is evaluated until the
// chain is driven.
//
// Chains have value semantics: the old handle keeps its stage and the
// new handle nests it structurally, exactly like the stages themselves.
// Construction never invokes any caller-supplied function — only Next
// and Each do.
//
// Go methods cannot introduce type parameters, so the element-changing
// transform lives as the package-level Map function while the Map
// method covers same-type transforms.
//
// # Observability
//
// Metrics:
//   - each.drives.total: Counter of Each runs
//   - each.elements.total: Counter of elements delivered across runs
//   - each.duration.ms: Gauge of the last drive's duration
//
// Traces:
//   - each.drive: Span covering one full Each run
//
// Events (via hooks):
//   - each.complete: Fired when a drive finishes
//
// Example:
//
//	digits := lazypp.Range("digits", 0, 10)
//	evens := digits.Filter(func(n int) bool { return n%2 == 0 }).Take(2)
//	evens.Each(func(n int) {
//	    fmt.Println(n) // 0, 2
//	})
type Chain[T any] struct {
	seq   Sequence[T]
	name  Name
	clock clockz.Clock

	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[DriveEvent]
}

func newChain[T any](name Name, seq Sequence[T], clock clockz.Clock) Chain[T] {
	registry := metricz.New()
	registry.Counter(EachDrivesTotal)
	registry.Counter(EachElementsTotal)
	registry.Gauge(EachDurationMs)

	return Chain[T]{
		name:    name,
		seq:     seq,
		clock:   clock,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[DriveEvent](),
	}
}

// FromSequence wraps an existing sequence stage in a Chain.
func FromSequence[T any](name Name, seq Sequence[T]) Chain[T] {
	return newChain[T](name, seq, nil)
}

// Map returns a chain whose elements are transformed by fn, one
// upstream pull per element. The element type changes to fn's return
// type; for same-type transforms the Chain.Map method reads better.
func Map[A, B any](c Chain[A], fn func(A) B) Chain[B] {
	return newChain[B](c.name, NewMapSeq(c.seq, fn), c.clock)
}

// Map returns a chain transformed by fn without changing the element
// type. Use the package-level Map function when the transform produces
// a different type.
func (c Chain[T]) Map(fn func(T) T) Chain[T] {
	return newChain[T](c.name, NewMapSeq(c.seq, fn), c.clock)
}

// Filter returns a chain yielding only elements that satisfy pred,
// preserving upstream order.
func (c Chain[T]) Filter(pred func(T) bool) Chain[T] {
	stage := NewFilterSeq(c.name, c.seq, pred).WithClock(c.clock)
	return newChain[T](c.name, stage, c.clock)
}

// Take returns a chain bounded to at most n elements. Take(0) ends
// immediately without ever pulling the upstream.
func (c Chain[T]) Take(n int) Chain[T] {
	stage := NewTakeSeq(c.name, c.seq, n).WithClock(c.clock)
	return newChain[T](c.name, stage, c.clock)
}

// TakeWhile returns a chain that yields elements while pred holds and
// then ends permanently. The first failing element is consumed from the
// upstream and discarded, not yielded.
func (c Chain[T]) TakeWhile(pred func(T) bool) Chain[T] {
	stage := NewTakeWhileSeq(c.name, c.seq, pred).WithClock(c.clock)
	return newChain[T](c.name, stage, c.clock)
}

// Drop returns a chain that skips the first n elements.
func (c Chain[T]) Drop(n int) Chain[T] {
	return newChain[T](c.name, NewDropSeq(c.seq, n), c.clock)
}

// Next pulls a single element from the chain's outermost stage. Most
// callers want Each; Next exists for callers driving the chain at their
// own pace.
func (c Chain[T]) Next() Option[T] {
	return c.seq.Next()
}

// Each drains the chain, invoking fn once per produced element in
// strict pull order, synchronously, with no buffering. It returns when
// the chain reports ended; over an unbounded generator chain it never
// returns. Panics from fn or from any captured stage function unwind
// through Each unmodified.
func (c Chain[T]) Each(fn func(T)) {
	clock := c.getClock()
	start := clock.Now()

	ctx, span := c.tracer.StartSpan(context.Background(), EachDriveSpan)
	defer span.Finish()
	span.SetTag(EachTagChain, string(c.name))

	c.metrics.Counter(EachDrivesTotal).Inc()

	var count int
	for {
		v, ok := c.seq.Next().Get()
		if !ok {
			break
		}
		count++
		c.metrics.Counter(EachElementsTotal).Inc()
		fn(v)
	}

	elapsed := clock.Since(start)
	c.metrics.Gauge(EachDurationMs).Set(float64(elapsed.Milliseconds()))
	span.SetTag(EachTagElements, strconv.Itoa(count))

	_ = c.hooks.Emit(ctx, DriveEventComplete, DriveEvent{ //nolint:errcheck
		Name:      c.name,
		Elements:  count,
		Duration:  elapsed,
		Timestamp: clock.Now(),
	})
}

// Name returns the chain's name.
func (c Chain[T]) Name() Name {
	return c.name
}

// Source returns the chain's outermost stage, for callers that need to
// reach stage-level hooks or metrics.
func (c Chain[T]) Source() Sequence[T] {
	return c.seq
}

// Metrics returns the metrics registry for this chain handle.
func (c Chain[T]) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this chain handle.
func (c Chain[T]) Tracer() *tracez.Tracer {
	return c.tracer
}

// WithClock returns a copy of the chain using clock for drive durations
// and event timestamps. Stages derived after the call inherit it.
func (c Chain[T]) WithClock(clock clockz.Clock) Chain[T] {
	c.clock = clock
	return c
}

func (c Chain[T]) getClock() clockz.Clock {
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// OnComplete registers a handler fired when a drive finishes. Handlers
// run asynchronously off the pull path.
func (c Chain[T]) OnComplete(handler func(context.Context, DriveEvent) error) error {
	_, err := c.hooks.Hook(DriveEventComplete, handler)
	return err
}

// Close gracefully shuts down this handle's observability components.
func (c Chain[T]) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}
