package deque

// shift.go implements the interior insert/erase engine: growing or
// shrinking the live range by n slots at an arbitrary offset, then sliding
// whichever side is shorter across the gap. Unlike the end operations in
// mutate.go, these are O(n + distance moved), never O(1).

// moveForward copies count elements starting at src to dst, processing low
// addresses first. Safe when dst is at or before src (no element is
// overwritten before it has been read).
func (d *Deque[T]) moveForward(dst, src pos, count int) {
	for i := 0; i < count; i++ {
		*d.elemAt(dst) = *d.elemAt(src)
		dst = d.advance(dst, 1)
		src = d.advance(src, 1)
	}
}

// moveBackward copies count elements starting at src to dst, processing
// high addresses first. Required when dst is after src and the ranges
// overlap, mirroring why a single-slice memmove must choose direction based
// on relative address: here the "address" is (outer,inner) order and the
// overlap spans chunk boundaries, so Go's per-chunk copy() cannot be
// trusted to get the cross-chunk order right on its own.
func (d *Deque[T]) moveBackward(dst, src pos, count int) {
	dst = d.advance(dst, count-1)
	src = d.advance(src, count-1)
	for i := 0; i < count; i++ {
		*d.elemAt(dst) = *d.elemAt(src)
		dst = d.advance(dst, -1)
		src = d.advance(src, -1)
	}
}

// zeroRange overwrites every slot in [from,to) with T's zero value, so
// vacated slots do not keep a stale reference alive for the GC.
func (d *Deque[T]) zeroRange(from, to pos) {
	var zero T
	p := from
	n := d.diff(to, from)
	for i := 0; i < n; i++ {
		*d.elemAt(p) = zero
		p = d.advance(p, 1)
	}
}

// insertShiftBegin reserves a gap of n slots starting at offset i by
// growing at the front and sliding [0,i) left by n, which is cheaper than
// sliding the other side whenever i is closer to begin than to end. The
// caller is responsible for filling the gap afterward.
func (d *Deque[T]) insertShiftBegin(i, n int) pos {
	for k := 0; k < n; k++ {
		d.needRoomBegin()
		d.begin = d.advance(d.begin, -1)
	}
	gapStart := d.advance(d.begin, i)
	d.moveForward(d.begin, d.advance(d.begin, n), i)
	return gapStart
}

// insertShiftEnd reserves a gap of n slots starting at offset i by growing
// at the back and sliding [i,len) right by n.
func (d *Deque[T]) insertShiftEnd(i, n int) pos {
	length := d.Len()
	for k := 0; k < n; k++ {
		d.end = d.advance(d.end, 1)
		d.needRoomEnd()
	}
	gapStart := d.advance(d.begin, i)
	tailLen := length - i
	d.moveBackward(d.advance(gapStart, n), gapStart, tailLen)
	return gapStart
}

// InsertSlice inserts vs at index i, shifting whichever side (the i
// elements before it, or the Len()-i elements after it) is shorter. Panics
// if i is out of [0,Len()].
func (d *Deque[T]) InsertSlice(i int, vs []T) {
	if i < 0 || i > d.Len() {
		panic(indexOutOfRangeMessage(i, d.Len()))
	}
	n := len(vs)
	if n == 0 {
		return
	}
	var gap pos
	if i < d.Len()-i {
		gap = d.insertShiftBegin(i, n)
	} else {
		gap = d.insertShiftEnd(i, n)
	}
	p := gap
	for _, v := range vs {
		*d.elemAt(p) = v
		p = d.advance(p, 1)
	}
}

// Insert inserts a single value at index i.
func (d *Deque[T]) Insert(i int, v T) {
	d.InsertSlice(i, []T{v})
}

// EraseRange removes the n elements starting at index i, shifting whichever
// side is shorter to close the gap. Panics if the range is out of bounds.
func (d *Deque[T]) EraseRange(i, n int) {
	if n == 0 {
		return
	}
	length := d.Len()
	if i < 0 || n < 0 || i+n > length {
		panic(ErrInvalidRange)
	}
	before := i
	after := length - i - n
	if before < after {
		src := d.begin
		dst := d.advance(src, n)
		d.moveBackward(dst, src, before)
		newBegin := d.advance(d.begin, n)
		d.zeroRange(d.begin, newBegin)
		d.begin = newBegin
		d.reclaimFreedChunksBegin()
	} else {
		dst := d.advance(d.begin, i)
		src := d.advance(dst, n)
		d.moveForward(dst, src, after)
		newEnd := d.advance(d.end, -n)
		d.zeroRange(newEnd, d.end)
		d.end = newEnd
		d.reclaimFreedChunksEnd()
	}
}

// Erase removes the single element at index i.
func (d *Deque[T]) Erase(i int) {
	d.EraseRange(i, 1)
}

// reclaimFreedChunksBegin frees any now-fully-vacated chunks that sit
// before d.begin's chunk; erase can vacate many chunks at once, and unlike
// PopFront (which never frees a chunk) it releases them here.
func (d *Deque[T]) reclaimFreedChunksBegin() {
	for d.beginChunk < d.begin.outer {
		d.outer[d.beginChunk] = nil
		d.beginChunk++
	}
}

// reclaimFreedChunksEnd frees chunks strictly beyond the one designated by
// d.end. That chunk itself — d.end.outer — must always stay allocated per
// invariant I3, regardless of d.end.inner, since end is an exclusive bound
// that still names a live, addressable chunk.
func (d *Deque[T]) reclaimFreedChunksEnd() {
	limit := d.end.outer + 1
	for d.endChunk > limit {
		d.endChunk--
		d.outer[d.endChunk] = nil
	}
}

// Resize grows or shrinks the deque to n elements, padding with zero values
// when growing. Returns ErrNegativeCapacity if n is negative, mirroring the
// teacher's own convention of reporting a bad target size as an error
// rather than a panic (unlike an out-of-range index, which is a caller
// bug, a negative resize target is an ordinary validation failure).
func (d *Deque[T]) Resize(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	length := d.Len()
	switch {
	case n > length:
		var zero T
		tail := make([]T, n-length)
		for i := range tail {
			tail[i] = zero
		}
		d.InsertSlice(length, tail)
	case n < length:
		d.EraseRange(n, length-n)
	}
	return nil
}

// Assign replaces the deque's contents with n copies of value. Returns
// ErrNegativeCount if n is negative.
func (d *Deque[T]) Assign(n int, value T) error {
	if n < 0 {
		return ErrNegativeCount
	}
	d.Clear()
	if n == 0 {
		return nil
	}
	vs := make([]T, n)
	for i := range vs {
		vs[i] = value
	}
	d.InsertSlice(0, vs)
	return nil
}

// AssignSlice replaces the deque's contents with a copy of s.
func (d *Deque[T]) AssignSlice(s []T) {
	d.Clear()
	d.InsertSlice(0, s)
}
