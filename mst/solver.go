// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

// Initialize builds one singleton PartialTree per vertex of g, in g.Vertices()
// order, and appends them all to a new Collection. Each tree's queue holds
// every arc leaving its vertex, oriented away from it.
//
// Error Conditions:
//   - ErrInvalidGraph: g is nil, directed by default, or holds directed edges.
//
// Complexity: O(V + E).
func Initialize(g *core.Graph) (*Collection, error) {
	if g == nil || g.Directed() || g.HasDirectedEdges() {
		return nil, ErrInvalidGraph
	}

	c := NewCollection()
	for _, v := range g.Vertices() {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("mst: initialize %q: %w", v, err)
		}
		arcs := make([]Arc, 0, len(edges))
		for _, e := range edges {
			arcs = append(arcs, Arc{From: v, To: e.Other(v), Weight: e.Weight})
		}
		if err = c.Append(NewPartialTree(v, arcs...)); err != nil {
			return nil, fmt.Errorf("mst: initialize %q: %w", v, err)
		}
	}

	return c, nil
}

// Execute runs the partial-tree merge loop on c until at most one partition
// is queued, and returns the accepted arcs.
//
// Steps:
//  1. P := c.RemoveFront().
//  2. Extract arcs from P's queue until one leaves P; internal arcs are discarded.
//  3. No such arc: record an IsolatedPartition diagnostic and drop P.
//  4. Otherwise accept the arc, remove the partition owning its destination,
//     merge it into P and append P.
//
// A singleton survivor in a collection that started with more than one vertex
// is reported as isolated too, so every vertex is either covered by an arc or
// named by a diagnostic.
//
// Error Conditions:
//   - ErrEmptyCollection, ErrNoSuchPartition: internal failures, returned with a nil Result.
//   - ErrDisconnected: only with WithStrict(), returned together with the Result.
func Execute(c *Collection, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	res := &Result{}
	for t := range c.All() {
		res.Vertices += t.Size()
	}

	for c.Len() > 1 {
		p, err := c.RemoveFront()
		if err != nil {
			return nil, fmt.Errorf("mst: execute: %w", err)
		}

		arc, ok := nextExternalArc(c, p)
		if !ok {
			d := isolate(p)
			c.Drop(p)
			res.Diagnostics = append(res.Diagnostics, d)
			log.Warn("partition has no usable arc; excluded from spanning tree",
				"partition", d.Partition, "root", d.Root, "vertices", len(d.Vertices))
			if o.OnIsolated != nil {
				o.OnIsolated(d)
			}
			continue
		}

		res.accept(arc)
		if o.OnAccept != nil {
			o.OnAccept(arc)
		}

		found, err := c.RemoveTreeContaining(arc.To)
		if err != nil {
			return nil, fmt.Errorf("mst: execute: accepted %s: %w", arc, err)
		}
		if err = c.Merge(p, found); err != nil {
			return nil, fmt.Errorf("mst: execute: %w", err)
		}
		log.Debug("merged partitions",
			"arc", arc.String(), "into", p.ID(), "from", found.ID(), "size", p.Size())
		if err = c.Append(p); err != nil {
			return nil, fmt.Errorf("mst: execute: %w", err)
		}
	}

	for t := range c.All() {
		res.Remaining = t.Vertices()
		if t.Size() == 1 && res.Vertices > 1 {
			d := isolate(t)
			res.Diagnostics = append(res.Diagnostics, d)
			log.Warn("partition has no usable arc; excluded from spanning tree",
				"partition", d.Partition, "root", d.Root, "vertices", len(d.Vertices))
			if o.OnIsolated != nil {
				o.OnIsolated(d)
			}
		}
	}

	if o.Strict && !res.Spanning() {
		return res, fmt.Errorf("%w: %d arcs for %d vertices, %d isolated partitions",
			ErrDisconnected, len(res.Arcs), res.Vertices, len(res.Diagnostics))
	}

	return res, nil
}

// Solve is Initialize followed by Execute.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	c, err := Initialize(g)
	if err != nil {
		return nil, err
	}

	return Execute(c, opts...)
}

// nextExternalArc extracts arcs from p until one leads to a vertex p does not
// own. An arc towards a vertex missing from the index is returned as is; the
// following RemoveTreeContaining reports it.
func nextExternalArc(c *Collection, p *PartialTree) (Arc, bool) {
	for {
		a, ok := p.arcs.ExtractMin()
		if !ok {
			return Arc{}, false
		}
		if owner, known := c.Owner(a.To); known && owner == p {
			continue
		}

		return a, true
	}
}

func isolate(t *PartialTree) Diagnostic {
	return Diagnostic{
		Kind:      IsolatedPartition,
		Partition: t.ID(),
		Root:      t.Root(),
		Vertices:  t.Vertices(),
	}
}
