// SPDX-License-Identifier: MIT

// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1) in ascending order.
//   - Edges (i-1)–i for i=1..n-1; Cycle closes with (n-1)–0.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodCycle, n, true)
	}
}

func ring(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids, err := addVertices(g, cfg, method, 0, n)
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err = addEdge(g, cfg, method, ids[i-1], ids[i]); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, cfg, method, ids[n-1], ids[0])
	}

	return nil
}
