// Package queue provides a bounded, blocking FIFO queue that is safe for
// concurrent use by any number of producers and consumers.
package queue

import (
	"context"
	"sync"
)

// Queue is a fixed-capacity circular buffer. Enqueue blocks while the queue
// is full and Dequeue blocks while it is empty; both can be abandoned through
// their context.
type Queue[T any] struct {
	mu     sync.Mutex
	buffer []T
	head   int
	tail   int
	count  int

	notFull  signal
	notEmpty signal
}

// New returns an empty queue holding at most capacity items, or
// ErrInvalidCapacity if capacity is not positive.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Queue[T]{
		buffer: make([]T, capacity),
	}, nil
}

// Enqueue places item at the tail of the queue, waiting for free space if
// necessary. If ctx is done while waiting, the queue is left untouched and an
// error matching ErrCancelled is returned.
func (q *Queue[T]) Enqueue(ctx context.Context, item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == len(q.buffer) {
		if err := q.notFull.wait(ctx, &q.mu); err != nil {
			return err
		}
	}

	q.buffer[q.tail] = item
	q.tail = (q.tail + 1) % len(q.buffer)
	q.count++

	q.notEmpty.broadcast()
	return nil
}

// Dequeue removes and returns the item at the head of the queue, waiting for
// one to arrive if necessary. If ctx is done while waiting, the queue is left
// untouched and an error matching ErrCancelled is returned.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 {
		if err := q.notEmpty.wait(ctx, &q.mu); err != nil {
			var zero T
			return zero, err
		}
	}

	var zero T
	item := q.buffer[q.head]
	q.buffer[q.head] = zero
	q.head = (q.head + 1) % len(q.buffer)
	q.count--

	q.notFull.broadcast()
	return item, nil
}

// Len returns the number of items currently held.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.count
}

// Cap returns the fixed capacity the queue was created with.
func (q *Queue[T]) Cap() int {
	return len(q.buffer)
}
