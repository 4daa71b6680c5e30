package lazypp

import (
	"context"
	"testing"
	"time"
)

func TestTakeWhileSeq_YieldsWhilePredicateHolds(t *testing.T) {
	got := collect(Range("digits", 0, 10).TakeWhile(func(n int) bool { return n < 4 }))

	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestTakeWhileSeq_LatchIsPermanent(t *testing.T) {
	// 5 fails the predicate and latches the stage; the 1s after it would
	// pass again but must never be yielded.
	w := NewTakeWhileSeq("small", NewSliceSeq([]int{1, 2, 5, 1, 1}), func(n int) bool { return n < 3 })
	defer w.Close()

	w.Next()
	w.Next()
	for i := 0; i < 4; i++ {
		if w.Next().IsSome() {
			t.Fatal("expected latched stage to stay ended")
		}
	}
}

func TestTakeWhileSeq_FailingElementIsConsumed(t *testing.T) {
	pulls := 0
	src := SequenceFunc[int](func() Option[int] {
		pulls++
		return Some(pulls)
	})
	w := NewTakeWhileSeq[int]("small", src, func(n int) bool { return n < 3 })
	defer w.Close()

	w.Next() // 1
	w.Next() // 2
	if w.Next().IsSome() {
		t.Fatal("expected latch on the first failing element")
	}
	// The failing element (3) was pulled from upstream and discarded.
	if pulls != 3 {
		t.Errorf("expected 3 upstream pulls, got %d", pulls)
	}
	// A latched stage never touches the upstream again.
	w.Next()
	if pulls != 3 {
		t.Errorf("expected no further upstream pulls after latch, got %d", pulls)
	}
}

func TestTakeWhileSeq_LatchesOnUpstreamEnd(t *testing.T) {
	predCalls := 0
	w := NewTakeWhileSeq("all", NewSliceSeq([]int{1, 2}), func(_ int) bool {
		predCalls++
		return true
	})
	defer w.Close()

	w.Next()
	w.Next()
	if w.Next().IsSome() {
		t.Fatal("expected end when upstream ends")
	}
	// The predicate must not run against an absent value.
	if predCalls != 2 {
		t.Errorf("expected 2 predicate calls, got %d", predCalls)
	}
}

func TestTakeWhileSeq_MetricsAndLatchedHook(t *testing.T) {
	w := NewTakeWhileSeq("small", NewSliceSeq([]int{1, 2, 9}), func(n int) bool { return n < 5 })
	defer w.Close()

	events := make(chan TakeWhileEvent, 1)
	if err := w.OnLatched(func(_ context.Context, e TakeWhileEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("failed to register OnLatched: %v", err)
	}

	for w.Next().IsSome() {
	}

	if yielded := w.Metrics().Counter(TakeWhileYieldedTotal).Value(); yielded != 2 {
		t.Errorf("expected 2 yielded, got %f", yielded)
	}
	if latched := w.Metrics().Counter(TakeWhileLatchedTotal).Value(); latched != 1 {
		t.Errorf("expected 1 latch, got %f", latched)
	}

	select {
	case e := <-events:
		if e.UpstreamEnded {
			t.Error("expected latch cause to be a predicate failure, not upstream end")
		}
		if e.Yielded != 2 {
			t.Errorf("expected Yielded=2, got %d", e.Yielded)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for latched event")
	}
}

func TestTakeWhileSeq_UpstreamEndEventCause(t *testing.T) {
	w := NewTakeWhileSeq("all", NewSliceSeq([]int{1}), func(_ int) bool { return true })
	defer w.Close()

	events := make(chan TakeWhileEvent, 1)
	if err := w.OnLatched(func(_ context.Context, e TakeWhileEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("failed to register OnLatched: %v", err)
	}

	for w.Next().IsSome() {
	}

	select {
	case e := <-events:
		if !e.UpstreamEnded {
			t.Error("expected latch cause to be upstream end")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for latched event")
	}
}
