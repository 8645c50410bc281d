// Package deque provides a growable double-ended queue.
//
// The deque owns a contiguous block of slots and keeps its live elements
// in a non-wrapping half-open range [head, tail) centered in the block, so
// pushes at either end have headroom without immediate reallocation. When
// a push runs out of room on its side, the block doubles and the live
// range is re-centered, keeping every push amortized O(1).
//
// A Deque is single-owner: it is NOT safe for concurrent use. All
// operations are synchronous and non-blocking.
package deque

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the initial block size allocated by New.
const DefaultCapacity = 4

// ErrInvalidCapacity is returned when a deque is constructed with a
// capacity below one.
var ErrInvalidCapacity = errors.New("deque: capacity must be at least 1")

// Deque is a growable double-ended queue.
//
// Invariants between calls:
//   - 0 <= head <= tail <= len(buf)
//   - slots in [head, tail) hold live values; every other slot is the
//     zero value
//
// The buffer is exclusively owned by the Deque: List copies, and no slice
// or pointer into the buffer is ever handed out.
type Deque[T any] struct {
	buf  []T
	head int // index of the first live element
	tail int // one past the last live element
}

// New creates an empty Deque with the default capacity, with the live
// range centered so both push directions have initial room.
func New[T any]() *Deque[T] {
	d, _ := NewWithCapacity[T](DefaultCapacity)
	return d
}

// NewWithCapacity creates an empty Deque with the given capacity.
// Capacities below 2 are raised to 2 so centering leaves room on both
// sides. Returns ErrInvalidCapacity if capacity is less than 1.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if capacity < 2 {
		capacity = 2
	}
	return &Deque[T]{
		buf:  make([]T, capacity),
		head: capacity / 2,
		tail: capacity / 2,
	}, nil
}

// Len returns the number of live elements.
func (d *Deque[T]) Len() int {
	return d.tail - d.head
}

// Cap returns the current capacity of the backing block.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

// PushFront places v at the front of the deque, growing the block first
// if the front has no headroom.
func (d *Deque[T]) PushFront(v T) {
	if d.head == 0 {
		d.grow(2 * len(d.buf))
	}
	d.head--
	d.buf[d.head] = v
}

// PushBack places v at the back of the deque, growing the block first if
// the back has no headroom.
func (d *Deque[T]) PushBack(v T) {
	if d.tail == len(d.buf) {
		d.grow(2 * len(d.buf))
	}
	d.buf[d.tail] = v
	d.tail++
}

// PopFront removes and returns the front element.
// Returns false if the deque is empty. The vacated slot is zeroed so the
// deque does not retain a reference to the element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.head == d.tail {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head++
	return v, true
}

// PopBack removes and returns the back element.
// Returns false if the deque is empty. The vacated slot is zeroed so the
// deque does not retain a reference to the element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.head == d.tail {
		return zero, false
	}
	d.tail--
	v := d.buf[d.tail]
	d.buf[d.tail] = zero
	return v, true
}

// PeekFront returns the front element without removing it.
// Returns false if the deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	if d.head == d.tail {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// PeekBack returns the back element without removing it.
// Returns false if the deque is empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	if d.head == d.tail {
		var zero T
		return zero, false
	}
	return d.buf[d.tail-1], true
}

// grow reallocates the backing block and copies the live range into it,
// re-centered so both push directions regain headroom proportional to the
// new capacity.
func (d *Deque[T]) grow(newCap int) {
	n := d.tail - d.head
	newBuf := make([]T, newCap)
	newHead := (newCap - n) / 2
	copy(newBuf[newHead:], d.buf[d.head:d.tail])
	d.buf = newBuf
	d.head = newHead
	d.tail = newHead + n
}

// List returns a copy of the live elements in front-to-back order.
// Returns nil if the deque is empty. The copy shares no memory with the
// deque.
func (d *Deque[T]) List() []T {
	if d.head == d.tail {
		return nil
	}
	out := make([]T, d.tail-d.head)
	copy(out, d.buf[d.head:d.tail])
	return out
}

// Clear removes every live element, zeroing the live range so references
// are released, and re-centers the empty deque in its current block.
func (d *Deque[T]) Clear() {
	var zero T
	for i := d.head; i < d.tail; i++ {
		d.buf[i] = zero
	}
	d.head = len(d.buf) / 2
	d.tail = d.head
}

// String renders the deque for humans: the live elements in front-to-back
// order, followed by the index state.
func (d *Deque[T]) String() string {
	return fmt.Sprintf("Deque{items: %v, head: %d, tail: %d, len: %d, cap: %d}",
		d.List(), d.head, d.tail, d.Len(), d.Cap())
}
