package lazypp

import "testing"

func TestZip_PairsUpToShortest(t *testing.T) {
	nums := FromSlice("nums", []int{1, 2, 3})
	labels := FromSlice("labels", []string{"a", "b"})

	got := collect(Zip(nums, labels))

	want := []Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestZip_EndsWhenEitherEnds(t *testing.T) {
	empty := FromSlice("empty", []int{})
	nums := FromSlice("nums", []int{1, 2})

	if got := collect(Zip(empty, nums)); len(got) != 0 {
		t.Errorf("expected no pairs when the first chain is empty, got %v", got)
	}
}

func TestZipSeq_StaysEnded(t *testing.T) {
	z := NewZipSeq[int, int](NewSliceSeq([]int{1}), NewSliceSeq([]int{2}))

	if z.Next().IsNone() {
		t.Fatal("expected one pair")
	}
	if z.Next().IsSome() {
		t.Error("expected end after shortest input")
	}
	if z.Next().IsSome() {
		t.Error("expected the stage to stay ended")
	}
}

func TestZip_WithGenerator(t *testing.T) {
	n := 0
	naturals := FromGenerator("naturals", func() int {
		n++
		return n
	})
	letters := FromSlice("letters", []string{"x", "y"})

	got := collect(Zip(naturals, letters))
	if len(got) != 2 {
		t.Fatalf("expected the finite side to bound the zip, got %d pairs", len(got))
	}
	if got[0].First != 1 || got[0].Second != "x" {
		t.Errorf("unexpected first pair %v", got[0])
	}
}
