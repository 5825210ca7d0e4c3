// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstforest/config"
	"github.com/katalvlaran/mstforest/ctxlog"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"method":     "method",
	"root":       "root",
	"strict":     "strict",
	"watch":      "watch",
	"format":     "format",
	"debounce":   "debounce",
	"verbose":    "verbose",
	"log-format": "log_format",
	"log-level":  "log_level",
}

// app carries the resolved configuration from the root pre-run to subcommands.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mstsolve",
		Short:         "Minimum spanning trees by partial-tree merging",
		Long:          "mstsolve loads a weighted undirected graph and computes its minimum spanning tree, or a spanning forest with diagnostics when the graph is disconnected.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .mstsolve.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(), newVerifyCmd(a))

	return root
}

// init resolves configuration for the executing command and installs the
// logger in its context.
func (a *app) init(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(cfgFile); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	return nil
}
