// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstforest/config"
	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/ctxlog"
	"github.com/katalvlaran/mstforest/graphio"
	"github.com/katalvlaran/mstforest/mst"
	"github.com/katalvlaran/mstforest/prim_kruskal"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Compute the minimum spanning tree of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Watch {
				return watchAndSolve(cmd.Context(), cmd.OutOrStdout(), args[0], a.cfg)
			}

			return solveFile(cmd.Context(), cmd.OutOrStdout(), args[0], a.cfg)
		},
	}

	f := cmd.Flags()
	f.String("method", config.MethodPartial, "algorithm: partial, kruskal or prim")
	f.String("root", "", "start vertex for prim (default: first vertex)")
	f.Bool("strict", false, "fail when the graph is disconnected")
	f.Bool("watch", false, "re-solve whenever the file changes")
	f.String("format", "", "input format: text, toml or hcl (default: by extension)")
	f.Duration("debounce", graphio.DefaultDebounce, "quiet period before a change triggers a re-solve")

	return cmd
}

// solveFile loads path and prints the spanning tree computed by cfg.Method.
func solveFile(ctx context.Context, w io.Writer, path string, cfg config.Config) error {
	var format graphio.Format
	if cfg.Format != "" {
		var err error
		if format, err = graphio.ParseFormat(cfg.Format); err != nil {
			return err
		}
	}
	g, err := graphio.Load(ctx, path, format)
	if err != nil {
		return err
	}

	if cfg.Method == config.MethodPartial {
		return solvePartial(ctx, w, g, cfg)
	}

	return solveClassic(w, g, cfg)
}

func solvePartial(ctx context.Context, w io.Writer, g *core.Graph, cfg config.Config) error {
	opts := []mst.Option{mst.WithLogger(ctxlog.FromContext(ctx))}
	if cfg.Strict {
		opts = append(opts, mst.WithStrict())
	}

	res, err := mst.Solve(g, opts...)
	if res == nil {
		return err
	}
	for _, a := range res.Arcs {
		fmt.Fprintf(w, "%s %s %s\n", a.From, a.To, formatWeight(a.Weight))
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "# %s\n", d)
	}
	fmt.Fprintf(w, "# method=%s vertices=%d arcs=%d total=%s spanning=%t\n",
		config.MethodPartial, res.Vertices, len(res.Arcs), formatWeight(res.TotalWeight), res.Spanning())

	return err
}

func solveClassic(w io.Writer, g *core.Graph, cfg config.Config) error {
	edges, total, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(cfg.Method), prim_kruskal.WithRoot(cfg.Root))
	spanning := err == nil
	if errors.Is(err, prim_kruskal.ErrDisconnected) && cfg.Method == config.MethodKruskal && !cfg.Strict {
		edges, total, err = prim_kruskal.KruskalForest(g)
	}
	if err != nil {
		return err
	}

	for _, e := range edges {
		fmt.Fprintf(w, "%s %s %s\n", e.From, e.To, formatWeight(e.Weight))
	}
	fmt.Fprintf(w, "# method=%s vertices=%d arcs=%d total=%s spanning=%t\n",
		cfg.Method, g.VertexCount(), len(edges), formatWeight(total), spanning)

	return nil
}

// watchAndSolve solves once, then again after every change of path until
// ctx is cancelled. Failures after the first solve are logged, not returned.
func watchAndSolve(ctx context.Context, w io.Writer, path string, cfg config.Config) error {
	logger := ctxlog.FromContext(ctx)
	if err := solveFile(ctx, w, path, cfg); err != nil {
		return err
	}

	watcher, err := graphio.NewWatcher(path)
	if err != nil {
		return err
	}
	watcher.Debounce = cfg.Debounce
	if err = watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()
	logger.Info("Watching graph file.", "path", watcher.Path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-watcher.Changes:
			if !ok {
				return nil
			}
			if change.Removed {
				logger.Warn("Graph file removed; waiting for it to reappear.", "path", change.Path)
				continue
			}
			logger.Info("Graph file changed; solving again.", "path", change.Path)
			if err := solveFile(ctx, w, path, cfg); err != nil {
				logger.Error("Solve failed.", "path", change.Path, "error", err)
			}
		}
	}
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
