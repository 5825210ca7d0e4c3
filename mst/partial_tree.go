// SPDX-License-Identifier: MIT

package mst

import "fmt"

// treeState tracks a PartialTree through its Collection lifecycle.
type treeState int

const (
	stateNew      treeState = iota // never appended
	stateQueued                    // in the FIFO
	stateDetached                  // removed from the FIFO, owned by the caller
	stateRetired                   // merged away or dropped
)

// PartialTree is one partition of the evolving spanning forest: the vertices
// joined so far and the queue of arcs leaving them.
//
// Root is the seed vertex and is informational only. Membership questions go
// through the Collection's index.
type PartialTree struct {
	id       int
	root     string
	vertices []string
	arcs     *ArcQueue

	state treeState
	gen   uint64 // bumped on every Append, validates FIFO entries
}

// NewPartialTree returns a singleton partition seeded with vertex seed whose
// queue holds arcs, built with one heapify pass. The partition has no id until
// it is appended to a Collection.
func NewPartialTree(seed string, arcs ...Arc) *PartialTree {
	return &PartialTree{
		id:       -1,
		root:     seed,
		vertices: []string{seed},
		arcs:     NewArcQueue(arcs...),
	}
}

// ID returns the partition id assigned by the Collection, or -1 before the first Append.
func (t *PartialTree) ID() int { return t.id }

// Root returns the seed vertex.
func (t *PartialTree) Root() string { return t.root }

// Arcs gives access to the partition's arc queue.
func (t *PartialTree) Arcs() *ArcQueue { return t.arcs }

// Size returns the number of vertices in the partition.
func (t *PartialTree) Size() int { return len(t.vertices) }

// Vertices returns a copy of the partition's vertices, seed first, then in merge order.
func (t *PartialTree) Vertices() []string {
	out := make([]string, len(t.vertices))
	copy(out, t.vertices)

	return out
}

// MergeArcsFrom absorbs other's arc queue and vertices into t. Root is unchanged
// and other is left empty. It does not touch any Collection index; use
// Collection.Merge for partitions that belong to a collection.
func (t *PartialTree) MergeArcsFrom(other *PartialTree) {
	if other == nil || other == t {
		return
	}
	t.arcs.MergeInto(other.arcs)
	t.vertices = append(t.vertices, other.vertices...)
	other.vertices = nil
}

func (t *PartialTree) String() string {
	return fmt.Sprintf("partition#%d(root=%s, vertices=%d, arcs=%d)", t.id, t.root, len(t.vertices), t.arcs.Len())
}
