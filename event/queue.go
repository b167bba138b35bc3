package event

import "sync"

// Queue is an unbounded FIFO shared between producer goroutines and a single consumer
// Thread-Safety:
//   - Push: mutex held for one append, any number of producers
//   - TryPop / Drain: mutex held for O(1) work; Drain swaps the backing slice
//
// Nothing is ever dropped or reordered
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends v at the tail
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
}

// TryPop removes the head element, returning false when empty
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true
}

// Drain removes and returns every pending element in FIFO order, nil when empty
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	items, head := q.items, q.head
	q.items, q.head = nil, 0
	q.mu.Unlock()

	if head >= len(items) {
		return nil
	}
	return items[head:]
}

// Len returns the number of pending elements
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
