// Package pqueue provides a minimum-priority queue with membership testing.
//
// Queue orders items by a float64 priority. Among items with equal priority
// the one inserted first is dequeued first. Enqueue never deduplicates and
// there is no decrease-key: callers that need a better priority for a queued
// item either push a second entry or, as A* does here, leave the original
// entry in place.
//
// Complexity:
//
//   - Enqueue:  O(log N)
//   - Dequeue:  O(log N)
//   - Contains: O(1)
//   - Memory:   O(N)
//
// The heap ordering (priority, insertion sequence) reproduces exactly what a
// left-to-right linear scan for the first strict minimum would return.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned when Dequeue or Peek is called on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Queue is a min-priority queue over comparable items.
// The zero value is not usable; call New.
type Queue[T comparable] struct {
	h       entryHeap[T]
	members map[T]int // item → number of queued entries
	seq     uint64
}

// New returns an empty Queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{members: make(map[T]int)}
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return len(q.h) }

// Enqueue adds item with the given priority unconditionally.
func (q *Queue[T]) Enqueue(item T, priority float64) {
	heap.Push(&q.h, &entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
	q.members[item]++
}

// Dequeue removes and returns the item with the lowest priority,
// the earliest inserted one among equal minima.
func (q *Queue[T]) Dequeue() (T, error) {
	if len(q.h) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(*entry[T])
	if n := q.members[e.item]; n <= 1 {
		delete(q.members, e.item)
	} else {
		q.members[e.item] = n - 1
	}

	return e.item, nil
}

// Peek returns the next item and its priority without removing it.
func (q *Queue[T]) Peek() (T, float64, error) {
	if len(q.h) == 0 {
		var zero T
		return zero, 0, ErrEmptyQueue
	}

	return q.h[0].item, q.h[0].priority, nil
}

// Contains reports whether at least one entry for item is queued.
func (q *Queue[T]) Contains(item T) bool {
	return q.members[item] > 0
}

// entry is one queued (item, priority) pair; seq records insertion order.
type entry[T comparable] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[T comparable] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(*entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}
