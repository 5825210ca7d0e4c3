// SPDX-License-Identifier: MIT

package mst

import "container/heap"

// ArcQueue is an array-backed binary min-heap of Arc ordered by
// (Weight, insertion sequence). The zero value is an empty, usable queue.
//
// Invariant between operations: every parent sorts before both children.
type ArcQueue struct {
	h    arcHeap
	next uint64 // sequence stamp for the next insertion
}

// NewArcQueue builds a queue from arcs with a single O(n) heapify pass.
// Arcs keep their argument order as tie-break order.
func NewArcQueue(arcs ...Arc) *ArcQueue {
	q := &ArcQueue{h: make(arcHeap, 0, len(arcs))}
	for _, a := range arcs {
		q.h = append(q.h, queuedArc{arc: a, seq: q.next})
		q.next++
	}
	heap.Init(&q.h)

	return q
}

// Insert adds a to the queue. Complexity: O(log n).
func (q *ArcQueue) Insert(a Arc) {
	heap.Push(&q.h, queuedArc{arc: a, seq: q.next})
	q.next++
}

// Peek returns the minimum arc without removing it. ok is false when the queue is empty.
func (q *ArcQueue) Peek() (Arc, bool) {
	if len(q.h) == 0 {
		return Arc{}, false
	}

	return q.h[0].arc, true
}

// ExtractMin removes and returns the minimum arc. ok is false when the queue
// is empty. Complexity: O(log n).
func (q *ArcQueue) ExtractMin() (Arc, bool) {
	if len(q.h) == 0 {
		return Arc{}, false
	}

	return heap.Pop(&q.h).(queuedArc).arc, true
}

// MergeInto appends the storage of other to q and restores the heap invariant
// with one O(n) heapify, then returns q. other is consumed and left empty.
// Arcs of other keep their relative order and rank after q's own arcs on ties.
// Merging nil, q itself, or an empty queue leaves q unchanged.
func (q *ArcQueue) MergeInto(other *ArcQueue) *ArcQueue {
	if other == nil || other == q {
		return q
	}
	if len(other.h) == 0 {
		other.reset()
		return q
	}
	for _, it := range other.h {
		it.seq += q.next
		q.h = append(q.h, it)
	}
	q.next += other.next
	heap.Init(&q.h)
	other.reset()

	return q
}

func (q *ArcQueue) reset() {
	q.h = nil
	q.next = 0
}

// Len returns the number of queued arcs.
func (q *ArcQueue) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no arcs.
func (q *ArcQueue) IsEmpty() bool { return len(q.h) == 0 }

// Arcs returns a snapshot of the queued arcs in storage (heap) order.
func (q *ArcQueue) Arcs() []Arc {
	out := make([]Arc, len(q.h))
	for i, it := range q.h {
		out[i] = it.arc
	}

	return out
}

// Drain removes every arc and returns them in extraction order.
func (q *ArcQueue) Drain() []Arc {
	out := make([]Arc, 0, len(q.h))
	for len(q.h) > 0 {
		out = append(out, heap.Pop(&q.h).(queuedArc).arc)
	}

	return out
}

// queuedArc pairs an arc with its tie-break stamp.
type queuedArc struct {
	arc Arc
	seq uint64
}

// arcHeap implements heap.Interface for a min-heap of queuedArc.
type arcHeap []queuedArc

func (h arcHeap) Len() int { return len(h) }

func (h arcHeap) Less(i, j int) bool {
	if h[i].arc.Weight != h[j].arc.Weight {
		return h[i].arc.Weight < h[j].arc.Weight
	}

	return h[i].seq < h[j].seq
}

func (h arcHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *arcHeap) Push(x interface{}) { *h = append(*h, x.(queuedArc)) }

func (h *arcHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
