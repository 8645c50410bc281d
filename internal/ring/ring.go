package ring

import (
	"sync/atomic"
)

// Ring is a lock-free SPSC (Single-Producer Single-Consumer) bounded queue.
//
// WARNING: This queue is NOT safe for multiple producers or multiple
// consumers. Using it incorrectly will cause data races and undefined
// behavior.
//
// The backing buffer is exclusively owned by the Ring: no slice or pointer
// into it is ever handed out. head and tail are free-running counters; the
// physical slot for a logical position is always position&mask, the single
// index translation shared by Push, Pop, Resize, and Clear.
//
// A slot only holds a live value between the moment Push publishes head
// and the moment Pop publishes tail. Pop zeroes the slot it vacates before
// publishing, so the buffer never retains a reference past the element's
// logical lifetime, and a full queue never overwrites a slot the consumer
// has not yet released.
//
// The implementation includes runtime guards that panic if the SPSC
// contract is violated. This catches bugs early during development.
type Ring[T any] struct {
	buf  []T
	mask uint64

	// Cache line padding to prevent false sharing
	_pad0 [56]byte //nolint:unused

	head atomic.Uint64 // Written by producer, read by consumer

	_pad1 [56]byte //nolint:unused

	tail atomic.Uint64 // Written by consumer, read by producer

	_pad2 [56]byte //nolint:unused

	// SPSC guards: detect concurrent misuse
	pushActive atomic.Uint32
	popActive  atomic.Uint32
}

// New creates a Ring with the specified capacity.
// Capacity will be rounded up to the next power of 2 (observable via Cap).
// Returns ErrInvalidCapacity if capacity is less than 1.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	n := nextPow2(capacity)
	return &Ring[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}, nil
}

// nextPow2 rounds n up to the next power of 2.
func nextPow2(n int) uint64 {
	p := uint64(1)
	for p < uint64(n) {
		p <<= 1
	}
	return p
}

// Push adds an item to the queue.
// Returns ErrFull if the queue is full; the item is not stored and no
// live slot is touched.
//
// SPSC CONTRACT: Only ONE goroutine may call Push().
func (r *Ring[T]) Push(v T) error {
	// SPSC guard: panic if concurrent Push detected
	if !r.pushActive.CompareAndSwap(0, 1) {
		panic("ring: concurrent Push on SPSC Ring - only one producer allowed")
	}
	defer r.pushActive.Store(0)

	head := r.head.Load()
	tail := r.tail.Load()

	if head-tail >= uint64(len(r.buf)) {
		return ErrFull
	}

	// Write the element first, then publish the index. The atomic store
	// orders the element write before the counter becomes visible, so the
	// consumer never observes a slot whose content is not yet readable.
	r.buf[head&r.mask] = v
	r.head.Store(head + 1)

	return nil
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty. The vacated slot is zeroed before
// it is handed back to the producer, so ownership of the element transfers
// to the caller exactly once.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop().
func (r *Ring[T]) Pop() (T, bool) {
	// SPSC guard: panic if concurrent Pop detected
	if !r.popActive.CompareAndSwap(0, 1) {
		panic("ring: concurrent Pop on SPSC Ring - only one consumer allowed")
	}
	defer r.popActive.Store(0)

	tail := r.tail.Load()
	head := r.head.Load()

	if tail >= head {
		var zero T
		return zero, false
	}

	// Move the element out, then release the slot to the producer by
	// publishing the new tail. Zeroing must happen before the publish:
	// afterwards the producer is free to write the slot.
	i := tail & r.mask
	v := r.buf[i]
	var zero T
	r.buf[i] = zero
	r.tail.Store(tail + 1)

	return v, true
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale.
func (r *Ring[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int(head - tail)
}

// Cap returns the capacity of the queue.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Resize reallocates the backing buffer and copies the live elements into
// the low end of the new buffer in logical order, oldest first. The new
// capacity is rounded up to the next power of 2.
//
// Resize is a stop-the-world structural operation: the caller must ensure
// no Push or Pop is in flight. It claims both SPSC guards for its duration
// and panics if an operation is running concurrently.
//
// Returns ErrInvalidCapacity if newCapacity is less than 1, and
// ErrTooSmall if the live elements do not fit. On error the queue is
// left untouched.
func (r *Ring[T]) Resize(newCapacity int) error {
	if newCapacity < 1 {
		return ErrInvalidCapacity
	}
	r.claim()
	defer r.release()

	head := r.head.Load()
	tail := r.tail.Load()
	count := head - tail

	n := nextPow2(newCapacity)
	if count > n {
		return ErrTooSmall
	}

	newBuf := make([]T, n)
	for i := uint64(0); i < count; i++ {
		newBuf[i] = r.buf[(tail+i)&r.mask]
	}

	r.buf = newBuf
	r.mask = n - 1
	r.tail.Store(0)
	r.head.Store(count)
	return nil
}

// Clear removes every live element, zeroing exactly the slots in the live
// range (wraparound included) so their references are released, and resets
// the counters.
//
// Like Resize, Clear requires that no Push or Pop is in flight.
func (r *Ring[T]) Clear() {
	r.claim()
	defer r.release()

	head := r.head.Load()
	tail := r.tail.Load()

	var zero T
	for i := tail; i < head; i++ {
		r.buf[i&r.mask] = zero
	}

	r.head.Store(0)
	r.tail.Store(0)
}

// claim takes both SPSC guards, excluding producer and consumer for the
// duration of a structural operation.
func (r *Ring[T]) claim() {
	if !r.pushActive.CompareAndSwap(0, 1) {
		panic("ring: structural operation racing a Push - callers must quiesce the queue")
	}
	if !r.popActive.CompareAndSwap(0, 1) {
		r.pushActive.Store(0)
		panic("ring: structural operation racing a Pop - callers must quiesce the queue")
	}
}

func (r *Ring[T]) release() {
	r.popActive.Store(0)
	r.pushActive.Store(0)
}
