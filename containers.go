package aoc

import (
	"container/heap"
	"fmt"
)

// Stack is a LIFO stack. The zero value is empty.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Len() int             { return len(s.items) }
func (s *Stack[T]) Push(v T)             { s.items = append(s.items, v) }
func (s *Stack[T]) While(f func(T) bool) { drain(s.Pop, f) }

// Pop removes the top of the stack. ok is false if it was empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	items []T
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: in}
}

func (q *Queue[T]) Len() int             { return len(q.items) }
func (q *Queue[T]) Push(v T)             { q.items = append(q.items, v) }
func (q *Queue[T]) While(f func(T) bool) { drain(q.Pop, f) }

// Pop removes the head of the queue. ok is false if it was empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	v = q.items[0]
	q.items = q.items[1:]
	return v, true
}

// drain pops values into f until pop reports empty or f returns false.
// f may push more values.
func drain[T any](pop func() (T, bool), f func(T) bool) {
	for v, ok := pop(); ok && f(v); v, ok = pop() {
	}
}

// PQI is an item in a PQ: a value V with priority P.
type PQI[T any] struct {
	V T
	P int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// PQ is a priority queue popping the lowest priority first.
type PQ[T any] struct {
	h pqHeap[T]
}

func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

func (q *PQ[T]) Push(v *PQI[T]) { heap.Push(&q.h, v) }
func (q *PQ[T]) Pop() *PQI[T]   { return heap.Pop(&q.h).(*PQI[T]) }
func (q *PQ[T]) Len() int       { return len(q.h) }

type pqHeap[T any] []*PQI[T]

func (h pqHeap[T]) Len() int           { return len(h) }
func (h pqHeap[T]) Less(i, j int) bool { return h[i].P < h[j].P }
func (h pqHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pqHeap[T]) Push(x any)        { *h = append(*h, x.(*PQI[T])) }

func (h *pqHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
