// pprplots renders the figures of the personalized PageRank fraud-detection experiments.
//
// Two charts, each written to a fixed PNG name in the working directory unless --out is given:
//  1. performance: grouped bars of Power Iteration vs Monte Carlo execution time per alpha
//     (plot_performance_comparison.png). Timings are built in; --config loads them from YAML.
//  2. suspects: the top-N rows of the PPR result table as horizontal bars colored by status
//     (plot_top_suspects.png). A missing table prints a short notice and writes nothing.
//
// --show opens a preview window once the images are saved.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/logging"
)

const (
	defaultPerformanceOut = "plot_performance_comparison.png"
	defaultSuspectsOut    = "plot_top_suspects.png"
	defaultTopN           = 20
)

type globalFlags struct {
	logLevel string
	show     bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "pprplots",
		Short:         "Render PPR fraud-detection result charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !logging.ValidLevel(g.logLevel) {
				return fmt.Errorf("unknown log level %q (debug, info, warn, error)", g.logLevel)
			}
			logging.SetOutput(cmd.ErrOrStderr())
			logging.SetLogLevel(g.logLevel)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&g.show, "show", false, "open a preview window after saving")

	root.AddCommand(newPerformanceCmd(g), newSuspectsCmd(g), newAllCmd(g))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
