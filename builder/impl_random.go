// SPDX-License-Identifier: MIT

// impl_random.go - RandomSparse(n, p) and RandomConnected(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RandomSparse: each unordered pair {i,j}, i<j, is kept with probability p,
//     trials in (i asc, j asc) order. cfg.rng is required unless p ∈ {0,1}.
//   - RandomConnected: a uniformly shuffled random recursive tree first
//     (vertex perm[k] attaches to a random earlier perm[j]), then every
//     remaining pair with probability p. cfg.rng is required for n ≥ 2.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph
// G(n, p). The result is usually disconnected for small p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRandom(methodRandomSparse, n, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}

		return sprinkle(g, cfg, methodRandomSparse, ids, p)
	}
}

// RandomConnected returns a Constructor that builds a connected random graph
// on n vertices: a random spanning tree plus G(n, p) extra edges.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRandom(methodRandomConnected, n, p); err != nil {
			return err
		}

		return connectedBlock(g, cfg, methodRandomConnected, 0, n, p)
	}
}

func validateRandom(method string, n int, p float64) error {
	if n < minRandomVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// connectedBlock adds vertices idFn(base..base+n-1) joined by a random
// spanning tree, then sprinkles extra edges with probability p.
func connectedBlock(g *core.Graph, cfg builderConfig, method string, base, n int, p float64) error {
	if cfg.rng == nil && n > 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	ids, err := addVertices(g, cfg, method, base, n)
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	perm := cfg.rng.Perm(n)
	for k := 1; k < n; k++ {
		parent := perm[cfg.rng.Intn(k)]
		if err = addEdge(g, cfg, method, ids[parent], ids[perm[k]]); err != nil {
			return err
		}
	}

	return sprinkle(g, cfg, method, ids, p)
}

// sprinkle adds each missing pair of ids with probability p.
func sprinkle(g *core.Graph, cfg builderConfig, method string, ids []string, p float64) error {
	if p == probMin {
		return nil
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if p < probMax && cfg.rng.Float64() >= p {
				continue
			}
			if g.HasEdge(ids[i], ids[j]) {
				continue
			}
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
