package lazypp

import (
	"strconv"
	"testing"
)

func TestMapSeq_Transforms(t *testing.T) {
	m := NewMapSeq(NewSliceSeq([]int{1, 2, 3}), func(n int) int { return n * 10 })

	want := []int{10, 20, 30}
	for i, w := range want {
		v, ok := m.Next().Get()
		if !ok {
			t.Fatalf("pull %d: unexpected end", i)
		}
		if v != w {
			t.Errorf("pull %d: expected %d, got %d", i, w, v)
		}
	}
	if m.Next().IsSome() {
		t.Error("expected end after source exhausted")
	}
}

func TestMapSeq_ChangesElementType(t *testing.T) {
	m := NewMapSeq(NewSliceSeq([]int{7, 8}), strconv.Itoa)

	v, ok := m.Next().Get()
	if !ok || v != "7" {
		t.Errorf("expected \"7\", got (%q, %t)", v, ok)
	}
}

func TestMapSeq_OnePullPerCall(t *testing.T) {
	pulls := 0
	src := SequenceFunc[int](func() Option[int] {
		pulls++
		return Some(pulls)
	})
	m := NewMapSeq[int, int](src, func(n int) int { return n })

	m.Next()
	if pulls != 1 {
		t.Errorf("expected exactly 1 upstream pull, got %d", pulls)
	}
	m.Next()
	if pulls != 2 {
		t.Errorf("expected exactly 2 upstream pulls, got %d", pulls)
	}
}

func TestMapSeq_TransformNotInvokedAfterEnd(t *testing.T) {
	calls := 0
	m := NewMapSeq(NewSliceSeq([]int{}), func(n int) int {
		calls++
		return n
	})

	if m.Next().IsSome() {
		t.Fatal("expected empty source to end immediately")
	}
	if calls != 0 {
		t.Errorf("expected transform to never run, got %d calls", calls)
	}
}

func TestMap_Identity(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9}

	plain := collect(FromSlice("plain", values))
	mapped := collect(FromSlice("mapped", values).Map(func(n int) int { return n }))

	if len(plain) != len(mapped) {
		t.Fatalf("expected identical counts, got %d and %d", len(plain), len(mapped))
	}
	for i := range plain {
		if plain[i] != mapped[i] {
			t.Errorf("element %d: expected %d, got %d", i, plain[i], mapped[i])
		}
	}
}

func TestMap_TypeChangingChain(t *testing.T) {
	got := collect(Map(Range("digits", 0, 3), strconv.Itoa))

	want := []string{"0", "1", "2"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
