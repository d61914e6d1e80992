// Package events holds the per-tick event queues that decouple the physics
// collaborator, input polling and the game systems.
//
// Queues are single-threaded FIFOs drained once per tick; events are handed
// out in the order they were pushed.
package events

// Queue is a FIFO of events of one type.
type Queue[T any] struct {
	items []T
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: make([]T, 0, 16)}
}

// Push appends an event.
func (q *Queue[T]) Push(e T) {
	q.items = append(q.items, e)
}

// Drain returns the pending events in push order and empties the queue.
// Events pushed while the caller walks the result land in the next drain.
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = make([]T, 0, cap(out))
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear drops all pending events.
func (q *Queue[T]) Clear() {
	q.items = q.items[:0]
}
