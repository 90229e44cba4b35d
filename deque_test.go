package deque

import "testing"

func assertValid[T any](t *testing.T, d *Deque[T]) {
	t.Helper()
	if err := d.validate(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func TestNewEmpty(t *testing.T) {
	d := New[int]()
	assertValid(t, d)
	if !d.Empty() {
		t.Fatalf("expected empty deque")
	}
	if d.Len() != 0 {
		t.Fatalf("expected length 0, got %d", d.Len())
	}
}

func TestNewWithSize(t *testing.T) {
	d := NewWithSize[int](5)
	assertValid(t, d)
	if d.Len() != 5 {
		t.Fatalf("expected length 5, got %d", d.Len())
	}
	for i := 0; i < 5; i++ {
		if d.At(i) != 0 {
			t.Fatalf("expected zero value at %d, got %d", i, d.At(i))
		}
	}
}

func TestNewFilled(t *testing.T) {
	d := NewFilled(4, 7)
	assertValid(t, d)
	for i := 0; i < 4; i++ {
		if d.At(i) != 7 {
			t.Fatalf("expected 7 at %d, got %d", i, d.At(i))
		}
	}
}

func TestFromSlice(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	d := FromSlice(s)
	assertValid(t, d)
	for i, v := range s {
		if d.At(i) != v {
			t.Fatalf("index %d: expected %d, got %d", i, v, d.At(i))
		}
	}
	// mutating the deque must not mutate the source slice.
	d.Set(0, 99)
	if s[0] != 1 {
		t.Fatalf("FromSlice should copy, not alias")
	}
}

func TestPushBackPopFront(t *testing.T) {
	d := New[int]()
	for i := 0; i < 1000; i++ {
		d.PushBack(i)
	}
	assertValid(t, d)
	for i := 0; i < 1000; i++ {
		v := d.PopFront()
		if v != i {
			t.Fatalf("expected %d, got %d", i, v)
		}
	}
	assertValid(t, d)
	if !d.Empty() {
		t.Fatalf("expected empty after draining")
	}
}

func TestPushFrontPopBack(t *testing.T) {
	d := New[int]()
	for i := 0; i < 1000; i++ {
		d.PushFront(i)
	}
	assertValid(t, d)
	for i := 0; i < 1000; i++ {
		v := d.PopBack()
		if v != i {
			t.Fatalf("expected %d, got %d", i, v)
		}
	}
	assertValid(t, d)
}

func TestAlternatingPushBothEnds(t *testing.T) {
	d := New[int]()
	for i := 0; i < 500; i++ {
		d.PushBack(i)
		d.PushFront(-i)
	}
	assertValid(t, d)
	if d.Len() != 1000 {
		t.Fatalf("expected length 1000, got %d", d.Len())
	}
	if d.At(0) != -499 {
		t.Fatalf("expected -499 at 0, got %d", d.At(0))
	}
	if d.At(999) != 499 {
		t.Fatalf("expected 499 at 999, got %d", d.At(999))
	}
}

func TestThousandPushFiveHundredPop(t *testing.T) {
	d := New[int]()
	for i := 0; i < 1000; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 500; i++ {
		d.PopFront()
	}
	assertValid(t, d)
	if d.Len() != 500 {
		t.Fatalf("expected length 500, got %d", d.Len())
	}
	if d.At(0) != 500 {
		t.Fatalf("expected front 500, got %d", d.At(0))
	}
}

func TestInsertMiddle(t *testing.T) {
	d := FromSlice([]int{0, 1, 2, 3, 4, 5})
	d.InsertSlice(3, []int{99, 99, 99})
	assertValid(t, d)
	want := []int{0, 1, 2, 99, 99, 99, 3, 4, 5}
	if d.Len() != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), d.Len())
	}
	for i, v := range want {
		if d.At(i) != v {
			t.Fatalf("index %d: expected %d, got %d", i, v, d.At(i))
		}
	}
}

func TestEraseMiddle(t *testing.T) {
	d := FromSlice([]int{0, 1, 2, 3, 4, 5, 6})
	d.EraseRange(1, 3)
	assertValid(t, d)
	want := []int{0, 4, 5, 6}
	if d.Len() != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), d.Len())
	}
	for i, v := range want {
		if d.At(i) != v {
			t.Fatalf("index %d: expected %d, got %d", i, v, d.At(i))
		}
	}
}

func TestEraseEntireRangeYieldsValidEmptyDeque(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	d.EraseRange(0, 3)
	assertValid(t, d)
	if !d.Empty() {
		t.Fatalf("expected empty deque after erasing everything")
	}
	d.PushBack(42)
	assertValid(t, d)
	if d.At(0) != 42 {
		t.Fatalf("expected 42, got %d", d.At(0))
	}
}

func TestInsertThenEraseIsNoOp(t *testing.T) {
	d := FromSlice([]int{1, 2, 3, 4, 5})
	before := FromSlice([]int{1, 2, 3, 4, 5})
	d.InsertSlice(2, []int{100, 200})
	d.EraseRange(2, 2)
	assertValid(t, d)
	if !Equal(d, before) {
		t.Fatalf("insert followed by erase of the same range should be a no-op")
	}
}

func TestPushPopIsNoOp(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	before := FromSlice([]int{1, 2, 3})
	d.PushBack(7)
	d.PopBack()
	assertValid(t, d)
	if !Equal(d, before) {
		t.Fatalf("push/pop at the same end should be a no-op")
	}
	d.PushFront(7)
	d.PopFront()
	assertValid(t, d)
	if !Equal(d, before) {
		t.Fatalf("push/pop at the same end should be a no-op")
	}
}

func TestCloneEqualsOriginal(t *testing.T) {
	d := FromSlice([]int{1, 2, 3, 4})
	c := d.Clone()
	assertValid(t, c)
	if !Equal(d, c) {
		t.Fatalf("clone should equal original")
	}
	c.Set(0, 99)
	if d.At(0) == 99 {
		t.Fatalf("clone should be independent of original")
	}
}

func TestClearThenReinsertEqualsFresh(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	d.Clear()
	assertValid(t, d)
	if !d.Empty() {
		t.Fatalf("expected empty after Clear")
	}
	d.PushBack(1, 2, 3)
	assertValid(t, d)
	fresh := FromSlice([]int{1, 2, 3})
	if !Equal(d, fresh) {
		t.Fatalf("clear then reinsert should match a freshly built deque")
	}
}

func TestSwapIsSelfInverse(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5})
	origA, origB := a.Clone(), b.Clone()
	a.Swap(b)
	a.Swap(b)
	assertValid(t, a)
	assertValid(t, b)
	if !Equal(a, origA) || !Equal(b, origB) {
		t.Fatalf("swapping twice should restore the original contents")
	}
}

func TestShrinkToFitPreservesContentsAndIsIdempotent(t *testing.T) {
	d := New[int]()
	for i := 0; i < 10000; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 9000; i++ {
		d.PopFront()
	}
	before := d.Clone()
	d.ShrinkToFit()
	assertValid(t, d)
	if !Equal(d, before) {
		t.Fatalf("shrink_to_fit must preserve contents")
	}
	after := d.Clone()
	d.ShrinkToFit()
	if !Equal(d, after) {
		t.Fatalf("shrink_to_fit must be idempotent")
	}
}

func TestResizeGrowShrink(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	if err := d.Resize(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertValid(t, d)
	want := []int{1, 2, 3, 0, 0}
	for i, v := range want {
		if d.At(i) != v {
			t.Fatalf("index %d: expected %d, got %d", i, v, d.At(i))
		}
	}
	if err := d.Resize(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertValid(t, d)
	if d.Len() != 2 || d.At(0) != 1 || d.At(1) != 2 {
		t.Fatalf("unexpected contents after shrink-resize")
	}
}

func TestResizeNegativeReturnsError(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	if err := d.Resize(-1); err != ErrNegativeCapacity {
		t.Fatalf("expected ErrNegativeCapacity, got %v", err)
	}
}

func TestAssign(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	if err := d.Assign(4, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertValid(t, d)
	for i := 0; i < 4; i++ {
		if d.At(i) != 9 {
			t.Fatalf("index %d: expected 9, got %d", i, d.At(i))
		}
	}
}

func TestLargeBulkPushReallocatesLogarithmicallyFewTimes(t *testing.T) {
	d := New[int]()
	reallocs := 0
	lastNumChunks := d.numChunks()
	for i := 0; i < 1_000_000; i++ {
		d.PushBack(i)
		if d.numChunks() != lastNumChunks {
			reallocs++
			lastNumChunks = d.numChunks()
		}
	}
	assertValid(t, d)
	if reallocs > 64 {
		t.Fatalf("expected O(log n) map growth events, saw %d", reallocs)
	}
}

func TestNoGrowthWhileSlackRemains(t *testing.T) {
	d := New[int]()
	beforeChunks := d.numChunks()
	half := chunkPadding / 2
	for i := 0; i < half; i++ {
		d.PushFront(i)
	}
	if d.numChunks() != beforeChunks {
		t.Fatalf("expected no map growth while front slack remains")
	}
}
