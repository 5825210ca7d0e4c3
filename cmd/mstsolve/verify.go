// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstforest/ctxlog"
	"github.com/katalvlaran/mstforest/graphio"
	"github.com/katalvlaran/mstforest/mst"
	"github.com/katalvlaran/mstforest/prim_kruskal"
)

// errMismatch indicates that the partial-tree engine and Kruskal disagree.
var errMismatch = errors.New("mstsolve: partial-tree result differs from Kruskal")

// weightTolerance bounds the relative difference of float sums compared by verify.
const weightTolerance = 1e-9

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Cross-check the partial-tree engine against Kruskal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			var format graphio.Format
			if a.cfg.Format != "" {
				var err error
				if format, err = graphio.ParseFormat(a.cfg.Format); err != nil {
					return err
				}
			}
			g, err := graphio.Load(ctx, args[0], format)
			if err != nil {
				return err
			}

			res, err := mst.Solve(g, mst.WithLogger(ctxlog.FromContext(ctx)))
			if err != nil {
				return err
			}
			rep, err := mst.Verify(g, res.Arcs)
			if err != nil {
				return fmt.Errorf("mstsolve: partial-tree result is not a spanning forest: %w", err)
			}
			edges, want, err := prim_kruskal.KruskalForest(g)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "vertices:    %d\n", rep.Vertices)
			fmt.Fprintf(w, "components:  %d\n", rep.Components)
			fmt.Fprintf(w, "partial:     arcs=%d total=%s\n", rep.Arcs, formatWeight(rep.TotalWeight))
			fmt.Fprintf(w, "kruskal:     arcs=%d total=%s\n", len(edges), formatWeight(want))
			fmt.Fprintf(w, "diagnostics: %d\n", len(res.Diagnostics))

			if rep.Arcs != len(edges) || !sameWeight(rep.TotalWeight, want) {
				return fmt.Errorf("%w: partial %s over %d arcs, kruskal %s over %d edges",
					errMismatch, formatWeight(rep.TotalWeight), rep.Arcs, formatWeight(want), len(edges))
			}
			fmt.Fprintln(w, "ok")

			return nil
		},
	}
	cmd.Flags().String("format", "", "input format: text, toml or hcl (default: by extension)")

	return cmd
}

func sameWeight(a, b float64) bool {
	return math.Abs(a-b) <= weightTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
