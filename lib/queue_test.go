package lib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	q.Enqueue("A")
	q.Enqueue("B")

	v, err := q.Dequeue()
	if err != nil || v != "A" {
		t.Errorf("Dequeue() = %v, %v; want A", v, err)
	}
	if v, _ := q.Front(); v != "B" {
		t.Errorf("Front() = %v, want B", v)
	}
	if v, _ := q.Rear(); v != "B" {
		t.Errorf("Rear() = %v, want B", v)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestQueueUnderflow(t *testing.T) {
	var q Queue[int]
	ops := map[string]func() (int, error){
		"Dequeue": q.Dequeue,
		"Front":   q.Front,
		"Rear":    q.Rear,
	}
	for name, op := range ops {
		if _, err := op(); !errors.Is(err, ErrUnderflow) {
			t.Errorf("%s() error = %v, want ErrUnderflow", name, err)
		}
	}
	if !q.Empty() || q.String() != "[]" {
		t.Errorf("failed operations mutated queue: %v", &q)
	}
}

func TestQueueWrapAndGrow(t *testing.T) {
	var q Queue[int]
	next, want := 0, 0
	// interleave so head and tail wrap around several times while the buffer grows
	for round := 0; round < 10; round++ {
		for i := 0; i < defaultQueueSize/2+round*3+1; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < defaultQueueSize/2; i++ {
			v, err := q.Dequeue()
			if err != nil {
				t.Fatal(err)
			}
			if v != want {
				t.Fatalf("Dequeue() = %d, want %d", v, want)
			}
			want++
		}
		if r, _ := q.Rear(); r != next-1 {
			t.Fatalf("Rear() = %d, want %d", r, next-1)
		}
	}
	if q.Len() != next-want {
		t.Errorf("Len() = %d, want %d", q.Len(), next-want)
	}

	expected := make([]int, 0, q.Len())
	for i := want; i < next; i++ {
		expected = append(expected, i)
	}
	if diff := cmp.Diff(expected, q.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	q.Clear()
	if !q.Empty() {
		t.Error("Clear() left elements")
	}
	q.Enqueue(7)
	if v, _ := q.Front(); v != 7 {
		t.Errorf("Front() after Clear and Enqueue = %d, want 7", v)
	}
}

func BenchmarkQueue(b *testing.B) {
	q := NewQueue[int]()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i%2 == 0 {
			q.Dequeue()
		}
	}
}
