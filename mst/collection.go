// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mstforest/dsu"
)

// compactThreshold is the number of consumed FIFO slots after which the
// backing slice is compacted.
const compactThreshold = 64

// fifoEntry names a queued partition. An entry is live only while the tree is
// queued and its generation still matches; anything else is skipped lazily.
type fifoEntry struct {
	id  int
	gen uint64
}

// Collection is the working set of partial trees: an arena of partitions
// indexed by id, a FIFO of ids giving front/back order, and a union-find
// index mapping every vertex to the partition that owns it.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	trees  []*PartialTree // arena, index == PartialTree.id
	fifo   []fifoEntry
	head   int // first unconsumed FIFO slot
	queued int

	members *dsu.DisjointSet
	owner   map[string]int // set representative → partition id
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		members: dsu.New(),
		owner:   make(map[string]int),
	}
}

// Len returns the number of queued partitions.
func (c *Collection) Len() int { return c.queued }

// Append enqueues t at the back. The first Append of a tree assigns its id and
// registers its vertices in the membership index.
//
// Errors: ErrNilPartition, ErrAlreadyQueued, ErrRetiredPartition, ErrVertexOwned.
func (c *Collection) Append(t *PartialTree) error {
	if t == nil {
		return ErrNilPartition
	}
	switch t.state {
	case stateQueued:
		return fmt.Errorf("%w: %s", ErrAlreadyQueued, t)
	case stateRetired:
		return fmt.Errorf("%w: %s", ErrRetiredPartition, t)
	case stateNew:
		if err := c.register(t); err != nil {
			return err
		}
	}

	t.gen++
	t.state = stateQueued
	c.fifo = append(c.fifo, fifoEntry{id: t.id, gen: t.gen})
	c.queued++

	return nil
}

// register assigns t an id and indexes its vertices.
func (c *Collection) register(t *PartialTree) error {
	for _, v := range t.vertices {
		if c.members.Has(v) {
			return fmt.Errorf("%w: %q", ErrVertexOwned, v)
		}
	}
	t.id = len(c.trees)
	c.trees = append(c.trees, t)
	for _, v := range t.vertices {
		c.members.Add(v)
		// Union cannot fail: both keys were just added.
		_, _ = c.members.Union(t.root, v)
	}
	rep, _ := c.members.Find(t.root)
	c.owner[rep] = t.id

	return nil
}

// RemoveFront detaches and returns the partition at the front of the queue.
// Returns ErrEmptyCollection when no partition is queued.
func (c *Collection) RemoveFront() (*PartialTree, error) {
	for c.head < len(c.fifo) {
		e := c.fifo[c.head]
		c.head++
		t := c.trees[e.id]
		if t.state != stateQueued || t.gen != e.gen {
			continue
		}
		t.state = stateDetached
		c.queued--
		c.compact()

		return t, nil
	}
	c.compact()

	return nil, ErrEmptyCollection
}

// RemoveTreeContaining detaches and returns the queued partition that owns
// vertex. Returns ErrNoSuchPartition if the vertex is unknown or its owner is
// not queued. Complexity: O(α(V)).
func (c *Collection) RemoveTreeContaining(vertex string) (*PartialTree, error) {
	t, ok := c.Owner(vertex)
	if !ok || t.state != stateQueued {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchPartition, vertex)
	}
	// The FIFO entry goes stale and is skipped by RemoveFront.
	t.state = stateDetached
	c.queued--

	return t, nil
}

// Owner returns the partition that owns vertex, whatever its state.
func (c *Collection) Owner(vertex string) (*PartialTree, bool) {
	rep, err := c.members.Find(vertex)
	if err != nil {
		return nil, false
	}
	id, ok := c.owner[rep]
	if !ok {
		return nil, false
	}

	return c.trees[id], true
}

// Merge moves src's arcs and vertices into dst and records that dst now owns
// every vertex src owned. src is retired; if it was still queued it leaves
// the queue.
//
// Errors: ErrNilPartition, ErrRetiredPartition, ErrNoSuchPartition (a partition
// that was never appended).
func (c *Collection) Merge(dst, src *PartialTree) error {
	if dst == nil || src == nil {
		return ErrNilPartition
	}
	for _, t := range []*PartialTree{dst, src} {
		if t.state == stateRetired {
			return fmt.Errorf("%w: %s", ErrRetiredPartition, t)
		}
		if t.state == stateNew {
			return fmt.Errorf("%w: %s was never appended", ErrNoSuchPartition, t)
		}
	}
	if dst == src {
		return nil
	}

	dstRep, _ := c.members.Find(dst.root)
	srcRep, _ := c.members.Find(src.root)
	if _, err := c.members.Union(dst.root, src.root); err != nil {
		return fmt.Errorf("mst: merge %s into %s: %w", src, dst, err)
	}
	delete(c.owner, dstRep)
	delete(c.owner, srcRep)
	rep, _ := c.members.Find(dst.root)
	c.owner[rep] = dst.id

	dst.MergeArcsFrom(src)
	c.retire(src)

	return nil
}

// Drop retires t without merging it. Its vertices stay indexed to it, so
// RemoveTreeContaining on them reports ErrNoSuchPartition.
func (c *Collection) Drop(t *PartialTree) {
	if t == nil || t.state == stateNew {
		return
	}
	c.retire(t)
}

func (c *Collection) retire(t *PartialTree) {
	if t.state == stateQueued {
		c.queued--
	}
	t.state = stateRetired
}

// All returns a restartable, front-to-back sequence over the queued
// partitions. Mutating the collection while ranging is a caller error.
func (c *Collection) All() iter.Seq[*PartialTree] {
	return func(yield func(*PartialTree) bool) {
		for _, e := range c.fifo[c.head:] {
			t := c.trees[e.id]
			if t.state != stateQueued || t.gen != e.gen {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// compact drops consumed FIFO slots once enough of them accumulate.
func (c *Collection) compact() {
	if c.head == len(c.fifo) {
		c.fifo = c.fifo[:0]
		c.head = 0
		return
	}
	if c.head < compactThreshold || c.head < len(c.fifo)/2 {
		return
	}
	n := copy(c.fifo, c.fifo[c.head:])
	c.fifo = c.fifo[:n]
	c.head = 0
}
