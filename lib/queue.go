package lib

import "fmt"

const defaultQueueSize = 16

// Queue is a FIFO queue on a growable ring buffer.
type Queue[T any] struct {
	queue []T
	size  int
	head  int
	tail  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		queue: make([]T, defaultQueueSize),
	}
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Enqueue appends e at the rear
func (q *Queue[T]) Enqueue(e T) {
	if q.size == len(q.queue) {
		q.grow()
	}
	q.queue[q.tail] = e
	q.tail = (q.tail + 1) % len(q.queue)
	q.size++
}

// Dequeue removes and returns the front element
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, underflow("dequeue")
	}
	e := q.queue[q.head]
	q.queue[q.head] = zero
	q.head = (q.head + 1) % len(q.queue)
	q.size--
	return e, nil
}

func (q *Queue[T]) Front() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, underflow("front")
	}
	return q.queue[q.head], nil
}

func (q *Queue[T]) Rear() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, underflow("rear")
	}
	return q.queue[(q.tail-1+len(q.queue))%len(q.queue)], nil
}

func (q *Queue[T]) Clear() {
	q.queue = nil
	q.size = 0
	q.head = 0
	q.tail = 0
}

// Values returns the elements from front to rear
func (q *Queue[T]) Values() []T {
	values := make([]T, q.size)
	for i := range values {
		values[i] = q.queue[(q.head+i)%len(q.queue)]
	}
	return values
}

func (q *Queue[T]) String() string {
	return fmt.Sprint(q.Values())
}

// grow doubles the buffer and unrolls the ring so head is at 0
func (q *Queue[T]) grow() {
	n := len(q.queue) * 2
	if n == 0 {
		n = defaultQueueSize
	}
	queue := make([]T, n)
	if q.size > 0 {
		copy(queue, q.queue[q.head:])
		copy(queue[len(q.queue)-q.head:], q.queue[:q.head])
	}
	q.head = 0
	q.tail = q.size
	q.queue = queue
}
