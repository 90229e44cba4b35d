package deque

// mutate.go implements the four amortized-O(1) end operations. Each keeps
// the slot under the cursor it moves backed by an allocated chunk.

// PushBack appends v. Never invalidates indices of existing elements.
func (d *Deque[T]) PushBack(vs ...T) {
	for _, v := range vs {
		*d.elemAt(d.end) = v
		d.end = d.advance(d.end, 1)
		d.needRoomEnd()
	}
}

// PushFront prepends v. When multiple values are given they end up in the
// deque in the same relative order as passed, i.e. PushFront(1,2,3) leaves
// 1 closest to the front.
func (d *Deque[T]) PushFront(vs ...T) {
	for i := len(vs) - 1; i >= 0; i-- {
		d.needRoomBegin()
		d.begin = d.advance(d.begin, -1)
		*d.elemAt(d.begin) = vs[i]
	}
}

// PopBack removes and returns the last element. Panics if the deque is
// empty.
func (d *Deque[T]) PopBack() T {
	if d.Empty() {
		panic("deque: PopBack on empty deque")
	}
	return d.PopBackUnsafe()
}

// PopBackUnsafe removes and returns the last element without checking for
// emptiness first. The chunk a pop empties out is intentionally left
// allocated — that slack is only reclaimed by ShrinkToFit, not by pop
// itself.
func (d *Deque[T]) PopBackUnsafe() T {
	d.end = d.advance(d.end, -1)
	p := d.elemAt(d.end)
	v := *p
	var zero T
	*p = zero
	return v
}

// PopFront removes and returns the first element. Panics if the deque is
// empty.
func (d *Deque[T]) PopFront() T {
	if d.Empty() {
		panic("deque: PopFront on empty deque")
	}
	return d.PopFrontUnsafe()
}

// PopFrontUnsafe removes and returns the first element without checking for
// emptiness first. As with PopBackUnsafe, the chunk a pop empties out is
// left allocated; only ShrinkToFit reclaims it.
func (d *Deque[T]) PopFrontUnsafe() T {
	p := d.elemAt(d.begin)
	v := *p
	var zero T
	*p = zero
	d.begin = d.advance(d.begin, 1)
	return v
}
