// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstforest/core"
)

// Document is the format-neutral content of a graph file.
type Document struct {
	Vertices []string     `toml:"vertices"`
	Edges    []EdgeRecord `toml:"edge"`
}

// EdgeRecord is one undirected weighted edge.
type EdgeRecord struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Validate checks that vertex names are non-empty and unique, and that every
// edge joins declared vertices with a finite weight.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Vertices))
	for i, v := range d.Vertices {
		if v == "" {
			return fmt.Errorf("%w: vertex %d has an empty name", ErrSyntax, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %q declared twice", ErrSyntax, v)
		}
		seen[v] = true
	}
	for i, e := range d.Edges {
		if !seen[e.From] || !seen[e.To] {
			return fmt.Errorf("%w: edge %d %s-%s references an undeclared vertex", ErrSyntax, i, e.From, e.To)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge %d %s-%s has non-finite weight", ErrSyntax, i, e.From, e.To)
		}
	}

	return nil
}

// Graph validates d and builds a weighted undirected graph that admits
// self-loops and parallel edges, as files may contain both.
func (d *Document) Graph() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}
	for _, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %s-%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g's vertices and edges in insertion order.
func FromGraph(g *core.Graph) *Document {
	d := &Document{Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, EdgeRecord{From: e.From, To: e.To, Weight: e.Weight})
	}

	return d
}
