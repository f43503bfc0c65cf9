package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/dataset"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/logging"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/ranking"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/render"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

type performanceOptions struct {
	config   string
	out      string
	barWidth float64
}

type suspectsOptions struct {
	input    string
	out      string
	top      int
	annotate bool
	source   bool
}

func newPerformanceCmd(g *globalFlags) *cobra.Command {
	o := &performanceOptions{}
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Grouped bar chart of exact vs approximate PPR execution times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runPerformance(cmd.OutOrStdout(), *o)
			if err != nil || out == "" {
				return err
			}
			return maybePreview(g, out)
		},
	}
	addPerformanceFlags(cmd, o)
	return cmd
}

func addPerformanceFlags(cmd *cobra.Command, o *performanceOptions) {
	cmd.Flags().StringVar(&o.config, "config", "", "YAML file with comparison samples (default: built-in timings)")
	cmd.Flags().StringVar(&o.out, "out", defaultPerformanceOut, "output PNG path")
	cmd.Flags().Float64Var(&o.barWidth, "bar-width", render.DefaultBarWidth, "bar width in slot units, (0, 0.5]")
}

func newSuspectsCmd(g *globalFlags) *cobra.Command {
	o := &suspectsOptions{}
	cmd := &cobra.Command{
		Use:   "suspects",
		Short: "Horizontal bar chart of the top-N PPR suspects",
		Long: `Plot the first --top rows of the PPR result CSV as horizontal bars, rank 1 on top,
colored by status (seed blue, suspicious orange, others gray).

A missing CSV prints a diagnostic and exits 0 without writing anything.
A CSV with a header but no data rows is an error: no chart is written and
the command exits 1.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runSuspects(cmd.OutOrStdout(), *o)
			if err != nil || out == "" {
				return err
			}
			return maybePreview(g, out)
		},
	}
	addSuspectsFlags(cmd, o, "out")
	return cmd
}

func addSuspectsFlags(cmd *cobra.Command, o *suspectsOptions, outFlag string) {
	cmd.Flags().StringVar(&o.input, "input", dataset.DefaultResultsFile, "PPR result CSV (NodeID, Score, Status)")
	cmd.Flags().StringVar(&o.out, outFlag, defaultSuspectsOut, "output PNG path")
	cmd.Flags().IntVar(&o.top, "top", defaultTopN, "number of rows to plot")
	cmd.Flags().BoolVar(&o.annotate, "annotate", false, "print the score next to each bar")
	cmd.Flags().BoolVar(&o.source, "source-note", false, "stamp the input file name under the chart")
}

func newAllCmd(g *globalFlags) *cobra.Command {
	po := &performanceOptions{}
	so := &suspectsOptions{}
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Render both charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var written []string
			out, err := runPerformance(cmd.OutOrStdout(), *po)
			if err != nil {
				return err
			}
			if out != "" {
				written = append(written, out)
			}
			out, err = runSuspects(cmd.OutOrStdout(), *so)
			if err != nil {
				return err
			}
			if out != "" {
				written = append(written, out)
			}
			return maybePreview(g, written...)
		},
	}
	addPerformanceFlags(cmd, po)
	addSuspectsFlags(cmd, so, "suspects-out")
	return cmd
}

// runPerformance returns the written path, or "" when the input was missing.
func runPerformance(stdout io.Writer, o performanceOptions) (string, error) {
	defer logging.TimeTrack(time.Now(), "performance chart")
	cmp, err := dataset.LoadComparison(o.config)
	if errors.Is(err, dataset.ErrMissingInput) {
		fmt.Fprintf(stdout, "Config file not found: %s\n", o.config)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	opts := render.ComparisonOptions()
	opts.BarWidth = o.barWidth
	if err := render.SavePNG(o.out, func(w io.Writer) error { return render.RenderComparison(w, cmp, opts) }); err != nil {
		return "", err
	}
	logging.Infof("wrote %s (%d settings, %s vs %s)", o.out, len(cmp.Samples), cmp.SeriesA, cmp.SeriesB)
	return o.out, nil
}

// runSuspects returns the written path, or "" when the result table was missing.
func runSuspects(stdout io.Writer, o suspectsOptions) (string, error) {
	defer logging.TimeTrack(time.Now(), "suspects chart")
	if o.top <= 0 {
		return "", fmt.Errorf("--top must be positive, got %d", o.top)
	}
	rows, err := dataset.LoadSuspects(o.input)
	if errors.Is(err, dataset.ErrMissingInput) {
		logging.Debugf("load %s: %v", o.input, err)
		fmt.Fprintf(stdout, "CSV file not found: %s\n", o.input)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if ok, at := dataset.IsSorted(rows); !ok {
		// data row index -> file line (header is line 1)
		logging.Warnf("%s is not sorted by descending %s (line %d); plotting in file order", o.input, dataset.ColScore, at+2)
	}
	ranked := ranking.Rank(rows, o.top, nil)
	opts := render.SuspectsOptions(len(ranked))
	opts.Annotate = o.annotate
	if o.source {
		opts.Footnote = fmt.Sprintf("source: %s (top %d of %d rows)", filepath.Base(o.input), len(ranked), len(rows))
	}
	if err := render.SavePNG(o.out, func(w io.Writer) error { return render.RenderSuspects(w, ranked, opts) }); err != nil {
		return "", err
	}
	counts := ranking.CountByCategory(ranked)
	logging.Infof("wrote %s rows=%d seeds=%d suspicious=%d normal=%d", o.out, len(ranked),
		counts[types.CategorySeed], counts[types.CategorySuspicious], counts[types.CategoryNormal])
	return o.out, nil
}

func maybePreview(g *globalFlags, paths ...string) error {
	if !g.show || len(paths) == 0 {
		return nil
	}
	return showPreview(paths)
}
