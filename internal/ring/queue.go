// Package ring provides bounded FIFO queue implementations.
//
// This package offers two implementations of the Queue interface:
//   - Chan: Standard library approach using buffered channels
//   - Ring: Lock-free circular buffer over exclusively owned storage
//
// # Ring Safety (IMPORTANT)
//
// Ring is a Single-Producer Single-Consumer (SPSC) queue.
// It is NOT safe for multiple goroutines to call Push() or Pop() concurrently.
//
// The implementation includes runtime guards that panic on misuse.
// This catches bugs early but adds ~1-2ns overhead per operation.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push()
//   - Exactly ONE goroutine calls Pop()
//   - These may be the same goroutine or different goroutines
//
// Resize and Clear are structural operations: they additionally require
// that no Push or Pop is in flight while they run.
package ring

import "errors"

// ErrInvalidCapacity is returned when a queue is constructed or resized
// with a capacity below one. A zero-capacity ring would be permanently
// full and empty at the same time, so it is rejected outright.
var ErrInvalidCapacity = errors.New("ring: capacity must be at least 1")

// ErrFull is returned by Push when the queue holds capacity elements.
// The queue never overwrites a live slot; the caller decides whether to
// drop, retry, or block.
var ErrFull = errors.New("ring: queue is full")

// ErrTooSmall is returned by Resize when the live elements do not fit in
// the requested capacity.
var ErrTooSmall = errors.New("ring: new capacity cannot hold live elements")

// Queue is a bounded single-producer single-consumer FIFO queue.
//
// Implementations are non-blocking: Push returns ErrFull if full,
// Pop returns false if empty.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns ErrFull if the queue is full; the item is not stored.
	Push(T) error

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)

	// Len returns the current number of items in the queue.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int
}
