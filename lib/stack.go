package lib

import "fmt"

// Stack implements the stack data structure backed by a slice.
// The top of the stack is the last element.
type Stack[T any] struct {
	items []T
}

// NewStack creates a new Stack
func NewStack[T any]() *Stack[T] {
	return new(Stack[T])
}

// Len returns the number of items in the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Peek views the top item on the stack
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var v T
		return v, underflow("peek")
	}
	return s.items[len(s.items)-1], nil
}

// Pop the top item of the stack and return it
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, underflow("pop")
	}

	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]
	return v, nil
}

// Push a value onto the top of the stack
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Clear() {
	s.items = nil
}

// Values returns a copy of the items from bottom to top
func (s *Stack[T]) Values() []T {
	values := make([]T, len(s.items))
	copy(values, s.items)
	return values
}

func (s *Stack[T]) String() string {
	return fmt.Sprint(s.items)
}
