package deque

import "cmp"

// query.go mirrors the teacher's free-function style: comparisons and
// searches are free functions parameterized separately from Deque[T]
// itself, so that Deque[T] is never constrained to comparable or
// cmp.Ordered just because some callers want to search or compare it.

// ForEach calls f once per element, in order.
func (d *Deque[T]) ForEach(f func(T)) {
	p := d.begin
	n := d.Len()
	for i := 0; i < n; i++ {
		f(*d.elemAt(p))
		p = d.advance(p, 1)
	}
}

// Iter returns a range-over-func view of the elements, front to back.
func (d *Deque[T]) Iter() func(func(T) bool) {
	return func(yield func(T) bool) {
		p := d.begin
		n := d.Len()
		for i := 0; i < n; i++ {
			if !yield(*d.elemAt(p)) {
				return
			}
			p = d.advance(p, 1)
		}
	}
}

// All returns a range-over-func view of (index, element) pairs, front to
// back.
func (d *Deque[T]) All() func(func(int, T) bool) {
	return func(yield func(int, T) bool) {
		p := d.begin
		n := d.Len()
		for i := 0; i < n; i++ {
			if !yield(i, *d.elemAt(p)) {
				return
			}
			p = d.advance(p, 1)
		}
	}
}

// ContainsFunc reports whether any element satisfies pred.
func ContainsFunc[T any](d *Deque[T], pred func(T) bool) bool {
	return IndexFunc(d, pred) >= 0
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func IndexFunc[T any](d *Deque[T], pred func(T) bool) int {
	p := d.begin
	n := d.Len()
	for i := 0; i < n; i++ {
		if pred(*d.elemAt(p)) {
			return i
		}
		p = d.advance(p, 1)
	}
	return -1
}

// EqualFunc reports whether a and b have the same length and eq(a[i],b[i])
// holds for every i.
func EqualFunc[T any](a, b *Deque[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	pa, pb := a.begin, b.begin
	n := a.Len()
	for i := 0; i < n; i++ {
		if !eq(*a.elemAt(pa), *b.elemAt(pb)) {
			return false
		}
		pa = a.advance(pa, 1)
		pb = b.advance(pb, 1)
	}
	return true
}

// MaxFunc returns the index of the greatest element according to less (a
// strict less-than), or -1 if d is empty. On ties the first occurrence
// wins.
func MaxFunc[T any](d *Deque[T], less func(a, b T) bool) int {
	if d.Empty() {
		return -1
	}
	best := 0
	bestV := d.AtUnsafe(0)
	n := d.Len()
	for i := 1; i < n; i++ {
		v := d.AtUnsafe(i)
		if less(bestV, v) {
			best, bestV = i, v
		}
	}
	return best
}

// MinFunc returns the index of the least element according to less, or -1
// if d is empty.
func MinFunc[T any](d *Deque[T], less func(a, b T) bool) int {
	return MaxFunc(d, func(a, b T) bool { return less(b, a) })
}

// Contains reports whether d holds an element equal to v.
func Contains[T comparable](d *Deque[T], v T) bool {
	return Index(d, v) >= 0
}

// Index returns the index of the first element equal to v, or -1.
func Index[T comparable](d *Deque[T], v T) int {
	return IndexFunc(d, func(x T) bool { return x == v })
}

// Equal reports whether a and b have the same length and elements in the
// same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// Max returns the index of the greatest element, or -1 if d is empty.
func Max[T cmp.Ordered](d *Deque[T]) int {
	return MaxFunc(d, func(a, b T) bool { return a < b })
}

// Min returns the index of the least element, or -1 if d is empty.
func Min[T cmp.Ordered](d *Deque[T]) int {
	return MinFunc(d, func(a, b T) bool { return a < b })
}

// validate checks the structural invariants that must hold after every
// public mutator: it is used only by tests, mirroring the original's
// debug-only __is_valid hook.
func (d *Deque[T]) validate() error {
	if len(d.outer) < 2 {
		return errInvalid("outer map too small")
	}
	if d.outer[0] != nil || d.outer[len(d.outer)-1] != nil {
		return errInvalid("sentinel slot not nil")
	}
	if d.beginChunk < 1 || d.endChunk > len(d.outer)-1 || d.beginChunk > d.endChunk {
		return errInvalid("allocated range out of bounds")
	}
	for i := 1; i < len(d.outer)-1; i++ {
		allocated := d.outer[i] != nil
		inWindow := i >= d.beginChunk && i < d.endChunk
		if allocated != inWindow {
			return errInvalid("allocation does not match window")
		}
		if allocated && len(d.outer[i].elems) != d.chunkSize {
			return errInvalid("chunk has wrong size")
		}
	}
	if d.begin.outer < d.beginChunk || d.begin.outer >= d.endChunk {
		return errInvalid("begin cursor outside allocated window")
	}
	if d.end.outer < d.beginChunk || d.end.outer >= d.endChunk {
		return errInvalid("end cursor outside allocated window")
	}
	if d.diff(d.end, d.begin) < 0 {
		return errInvalid("end precedes begin")
	}
	return nil
}

func errInvalid(msg string) error {
	return &invalidStateError{msg: msg}
}

type invalidStateError struct{ msg string }

func (e *invalidStateError) Error() string { return "deque: invariant violated: " + e.msg }
