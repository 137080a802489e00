package seq

import "container/heap"

// QueueMode selects whether Pop returns the minimum- or maximum-weighted
// element.
type QueueMode int

const (
	MinFirst QueueMode = iota
	MaxFirst
)

// PriorityQueue is a weighted queue over elements of type T. The zero value
// is not usable; construct with NewPriorityQueue.
type PriorityQueue[T any] struct {
	h *itemHeap[T]
}

// NewPriorityQueue creates an empty queue with the given extraction mode.
func NewPriorityQueue[T any](mode QueueMode) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: &itemHeap[T]{mode: mode}}
}

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int {
	return len(q.h.items)
}

// Push inserts value with the given weight.
func (q *PriorityQueue[T]) Push(value T, weight float64) {
	heap.Push(q.h, item[T]{value: value, weight: weight})
}

// Pop removes and returns the extreme-weighted element per the queue mode.
// The boolean is false if the queue is empty.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}
	it := heap.Pop(q.h).(item[T])
	return it.value, true
}

type item[T any] struct {
	value  T
	weight float64
}

// itemHeap implements heap.Interface. Push and Pop use pointer receivers
// because they modify the slice's length, not just its contents.
type itemHeap[T any] struct {
	items []item[T]
	mode  QueueMode
}

func (h *itemHeap[T]) Len() int { return len(h.items) }

func (h *itemHeap[T]) Less(i, j int) bool {
	if h.mode == MaxFirst {
		return h.items[i].weight > h.items[j].weight
	}
	return h.items[i].weight < h.items[j].weight
}

func (h *itemHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[T]) Push(x any) {
	h.items = append(h.items, x.(item[T]))
}

func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}
