package ring

// Chan wraps a buffered channel as a Queue.
//
// This is the standard library approach. Each Push/Pop performs
// a non-blocking channel operation via select with default.
type Chan[T any] struct {
	ch chan T
}

// NewChan creates a Chan with the specified buffer size.
func NewChan[T any](size int) (*Chan[T], error) {
	if size < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Chan[T]{
		ch: make(chan T, size),
	}, nil
}

// Push adds an item to the queue.
// Returns ErrFull if the queue is full (non-blocking).
func (q *Chan[T]) Push(v T) error {
	select {
	case q.ch <- v:
		return nil
	default:
		return ErrFull
	}
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *Chan[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of items in the queue.
func (q *Chan[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *Chan[T]) Cap() int {
	return cap(q.ch)
}
