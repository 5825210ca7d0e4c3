// SPDX-License-Identifier: MIT

// impl_components.go - disconnected fixtures: Components(k, size, p) and Isolated(n).
//
// Contract:
//   - Components: k ≥ 1 blocks of size ≥ 1; block b uses vertex indices
//     [b·size, (b+1)·size). Each block is a RandomConnected(size, p) and no
//     edge crosses blocks, so the graph has exactly k components.
//   - Isolated: n ≥ 1 bare vertices whose indices continue after the
//     vertices already present in g.
//
// Complexity: Components O(k·size²); Isolated O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

const (
	methodComponents = "Components"
	methodIsolated   = "Isolated"
	minComponents    = 1
	minIsolated      = 1
)

// Components returns a Constructor that builds k disjoint connected blocks.
func Components(k, size int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minComponents {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodComponents, k, minComponents, ErrTooFewVertices)
		}
		if err := validateRandom(methodComponents, size, p); err != nil {
			return err
		}
		for b := 0; b < k; b++ {
			if err := connectedBlock(g, cfg, methodComponents, b*size, size, p); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that appends n vertices with no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minIsolated {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolated, ErrTooFewVertices)
		}
		_, err := addVertices(g, cfg, methodIsolated, g.VertexCount(), n)

		return err
	}
}
