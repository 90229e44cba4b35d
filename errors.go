package deque

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by operations that can fail without it being a
// caller bug (unlike an out-of-range index, which panics instead, matching
// the teacher's own checkBounds convention). ErrInvalidRange is the one
// exception: it is not returned but is the value EraseRange panics with.
var (
	ErrNegativeCapacity = errors.New("deque: capacity must not be negative")
	ErrNegativeCount    = errors.New("deque: count must not be negative")
	ErrInvalidRange     = errors.New("deque: invalid range")
)

func indexOutOfRangeMessage(i, length int) string {
	return fmt.Sprintf("deque: index out of range [%d] with length %d", i, length)
}
