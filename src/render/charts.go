// Package render draws the performance comparison and top-suspects charts as PNG.
package render

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/ranking"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

// DefaultDPI maps the inch sizes below to pixels.
const DefaultDPI = 100.0

// Figure sizes in inches.
var (
	ComparisonSize = [2]float64{10, 6}
	SuspectsSize   = [2]float64{10, 8}
)

// Options controls one chart image.
type Options struct {
	Title    string
	Width    int
	Height   int
	DPI      float64
	BarWidth float64
	// Annotate adds value labels to ranked bars; grouped bars are always labelled.
	Annotate bool
	// Footnote is stamped bottom-left after rendering when non-empty.
	Footnote string
}

func sized(inches [2]float64) Options {
	return Options{
		Width:  int(math.Round(inches[0] * DefaultDPI)),
		Height: int(math.Round(inches[1] * DefaultDPI)),
		DPI:    DefaultDPI,
	}
}

// ComparisonOptions returns the 10x6 inch defaults of the performance chart.
func ComparisonOptions() Options { return sized(ComparisonSize) }

// SuspectsOptions returns the 10x8 inch defaults of the top-suspects chart.
func SuspectsOptions(n int) Options {
	o := sized(SuspectsSize)
	o.Title = fmt.Sprintf("Top %d Most Suspicious Users (Fraud Detection Results)", n)
	return o
}

func (o Options) withDefaults(def Options) Options {
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if o.Title == "" {
		o.Title = def.Title
	}
	return o
}

// NewComparisonChart builds the grouped chart without rendering it.
func NewComparisonChart(cmp types.Comparison, opts Options) (chart.Chart, GroupedPlan, error) {
	opts = opts.withDefaults(ComparisonOptions())
	if len(cmp.Samples) == 0 {
		return chart.Chart{}, GroupedPlan{}, ErrNoData
	}
	f, err := labelFont()
	if err != nil {
		return chart.Chart{}, GroupedPlan{}, fmt.Errorf("%w: label font: %w", ErrRendering, err)
	}
	plan := GroupedLayout(cmp, opts.BarWidth)
	title := opts.Title
	if title == "" {
		title = plan.Title
	}
	hidden := chart.Style{Hidden: true}
	ch := chart.Chart{
		Title:      title,
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        opts.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Ticks:          categoryTicks(plan.Labels()),
			GridMajorStyle: hidden,
			GridMinorStyle: hidden,
		},
		YAxis: chart.YAxis{
			Name:           plan.Unit,
			Range:          &chart.ContinuousRange{Min: plan.Min, Max: plan.Max},
			Ticks:          niceTicks(plan.Min, plan.Max, 6),
			GridMajorStyle: hidden,
			GridMinorStyle: hidden,
		},
		Series: []chart.Series{groupedBars{plan: plan, font: f}},
	}
	ch.Elements = []chart.Renderable{legend(plan.Legend, cornerTopRight)}
	return ch, plan, nil
}

// RenderComparison writes the grouped performance chart as PNG to w.
func RenderComparison(w io.Writer, cmp types.Comparison, opts Options) error {
	ch, _, err := NewComparisonChart(cmp, opts)
	if err != nil {
		return err
	}
	return renderPNG(w, ch, opts.Footnote)
}

// NewSuspectsChart builds the ranked horizontal chart without rendering it.
// ranked must already be in display order (bottom bar first).
func NewSuspectsChart(ranked []ranking.Ranked, opts Options) (chart.Chart, RankedPlan, error) {
	opts = opts.withDefaults(SuspectsOptions(len(ranked)))
	if len(ranked) == 0 {
		return chart.Chart{}, RankedPlan{}, ErrNoData
	}
	f, err := labelFont()
	if err != nil {
		return chart.Chart{}, RankedPlan{}, fmt.Errorf("%w: label font: %w", ErrRendering, err)
	}
	plan := RankedLayout(ranked)
	hidden := chart.Style{Hidden: true}
	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        opts.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Fraud Score",
			Range:          &chart.ContinuousRange{Min: plan.Min, Max: plan.Max},
			Ticks:          niceTicks(plan.Min, plan.Max, 6),
			GridMajorStyle: hidden,
			GridMinorStyle: hidden,
		},
		YAxis: chart.YAxis{
			Ticks:          categoryTicks(plan.Labels()),
			GridMajorStyle: hidden,
			GridMinorStyle: hidden,
		},
		Series: []chart.Series{rankedBars{plan: plan, font: f, annotate: opts.Annotate}},
	}
	ch.Elements = []chart.Renderable{legend(plan.Legend, cornerBottomRight)}
	return ch, plan, nil
}

// RenderSuspects writes the ranked chart as PNG to w.
func RenderSuspects(w io.Writer, ranked []ranking.Ranked, opts Options) error {
	ch, _, err := NewSuspectsChart(ranked, opts)
	if err != nil {
		return err
	}
	return renderPNG(w, ch, opts.Footnote)
}

func renderPNG(w io.Writer, ch chart.Chart, footnote string) error {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRendering, ch.Title, err)
	}
	if footnote != "" {
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("%w: decode: %w", ErrRendering, err)
		}
		buf.Reset()
		if err := png.Encode(&buf, stampFootnote(img, footnote)); err != nil {
			return fmt.Errorf("%w: encode: %w", ErrRendering, err)
		}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write: %w", ErrRendering, err)
	}
	return nil
}
