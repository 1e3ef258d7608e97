package lib

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// LinkedList implements a singly linked list of comparable values.
// The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	head   *node[T]
	length int
}

type node[T comparable] struct {
	value T
	next  *node[T]
}

// NewLinkedList creates a new empty LinkedList
func NewLinkedList[T comparable]() *LinkedList[T] {
	return new(LinkedList[T])
}

// Len returns the number of values in the list
func (l *LinkedList[T]) Len() int {
	return l.length
}

func (l *LinkedList[T]) Empty() bool {
	return l.head == nil
}

// Clear drops every node
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.length = 0
}

// InsertAtBeginning links v in front of the current head
func (l *LinkedList[T]) InsertAtBeginning(v T) {
	l.head = &node[T]{v, l.head}
	l.length++
}

// InsertAtEnd walks to the tail and links v after it
func (l *LinkedList[T]) InsertAtEnd(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
	} else {
		i := l.head
		for i.next != nil {
			i = i.next
		}
		i.next = n
	}
	l.length++
}

// InsertAt inserts v so that it ends up at index position.
// position may equal Len(), which appends.
func (l *LinkedList[T]) InsertAt(v T, position int) error {
	if position < 0 || position > l.length {
		return outOfRange(position, l.length)
	}
	if position == 0 {
		l.InsertAtBeginning(v)
		return nil
	}
	// move i to node before insertion
	i := l.before(position)
	i.next = &node[T]{v, i.next}
	l.length++
	return nil
}

// DeleteValue unlinks the first node holding v.
// It reports whether such a node existed.
func (l *LinkedList[T]) DeleteValue(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.value == v {
		l.head = l.head.next
		l.length--
		return true
	}
	for i := l.head; i.next != nil; i = i.next {
		if i.next.value == v {
			i.next = i.next.next
			l.length--
			return true
		}
	}
	return false
}

// DeleteAt unlinks the node at position and returns its value
func (l *LinkedList[T]) DeleteAt(position int) (T, error) {
	var v T
	if l.head == nil {
		return v, errors.Wrap(ErrOutOfRange, "delete from empty list")
	}
	if position < 0 || position >= l.length {
		return v, outOfRange(position, l.length)
	}
	if position == 0 {
		v = l.head.value
		l.head = l.head.next
		l.length--
		return v, nil
	}
	i := l.before(position)
	v = i.next.value
	i.next = i.next.next
	l.length--
	return v, nil
}

// Search returns the index of the first v in the list, or -1
func (l *LinkedList[T]) Search(v T) int {
	p := 0
	for i := l.head; i != nil; i = i.next {
		if i.value == v {
			return p
		}
		p++
	}
	return -1
}

// Get returns the value at position without unlinking it
func (l *LinkedList[T]) Get(position int) (T, error) {
	if position < 0 || position >= l.length {
		var v T
		return v, outOfRange(position, l.length)
	}
	return l.before(position + 1).value, nil
}

// Head returns the first value of the list
func (l *LinkedList[T]) Head() (T, error) {
	if l.head == nil {
		var v T
		return v, underflow("head")
	}
	return l.head.value, nil
}

// Values returns the list contents from head to tail
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for i := l.head; i != nil; i = i.next {
		values = append(values, i.value)
	}
	return values
}

// before returns the node at index position-1; 0 < position <= length.
func (l *LinkedList[T]) before(position int) *node[T] {
	i := l.head
	for p := 1; p < position; p++ {
		i = i.next
	}
	return i
}

func (l *LinkedList[T]) String() string {
	if l.head == nil {
		return "[]"
	}
	var buffer bytes.Buffer
	for i := l.head; i != nil; i = i.next {
		fmt.Fprintf(&buffer, "%v -> ", i.value)
	}
	buffer.WriteString("nil")
	return buffer.String()
}
