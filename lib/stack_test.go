package lib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, err := s.Pop()
	if err != nil || v != 3 {
		t.Errorf("Pop() = %v, %v; want 3", v, err)
	}
	v, err = s.Peek()
	if err != nil || v != 2 {
		t.Errorf("Peek() = %v, %v; want 2", v, err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.String() != "[1 2]" {
		t.Errorf("String() = %q", s.String())
	}
	if diff := cmp.Diff([]int{1, 2}, s.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	s.Clear()
	if !s.Empty() || s.String() != "[]" {
		t.Errorf("Clear() left %v", s)
	}
}

func TestStackUnderflow(t *testing.T) {
	var s Stack[string]
	if _, err := s.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Pop() error = %v, want ErrUnderflow", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Peek() error = %v, want ErrUnderflow", err)
	}
	if !s.Empty() || s.Len() != 0 {
		t.Error("failed Pop/Peek mutated the stack")
	}
}

func TestStackValuesCopy(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	values := s.Values()
	values[0] = 100
	if v, _ := s.Peek(); v != 1 {
		t.Errorf("Values() aliases the stack, Peek() = %d", v)
	}
}
