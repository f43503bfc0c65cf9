package render

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/ranking"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

const (
	// DefaultBarWidth is the width of one grouped bar in slot units (slots are 1 apart).
	DefaultBarWidth = 0.35
	// RankedBarThickness is the height of one horizontal bar in slot units.
	RankedBarThickness = 0.8

	// LabelOffsetPoints is the gap between a bar end and its value label.
	LabelOffsetPoints = 3.0
	// LabelFontSize applies to every value label.
	LabelFontSize = 9.0
)

var (
	ColorExact  = drawing.ColorFromHex("4CAF50")
	ColorApprox = drawing.ColorFromHex("FF9800")
)

// Annotate formats a bar value exactly as given: no rounding, no exponent, no unit.
func Annotate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LegendEntry is one swatch of a chart legend.
type LegendEntry struct {
	Label string
	Color drawing.Color
}

// Bar is a vertical bar in data coordinates: Center and Width on the slot axis,
// Value on the value axis.
type Bar struct {
	Series int
	Center float64
	Width  float64
	Value  float64
	Color  drawing.Color
	Label  string
}

func (b Bar) Left() float64  { return b.Center - b.Width/2 }
func (b Bar) Right() float64 { return b.Center + b.Width/2 }

// Group is one labelled slot of the grouped chart.
type Group struct {
	Label    string
	Position float64
	Bars     []Bar
}

// GroupedPlan is everything the grouped chart draws, before pixel mapping.
type GroupedPlan struct {
	Title    string
	Unit     string
	BarWidth float64
	Groups   []Group
	Legend   []LegendEntry
	Min, Max float64
	Grid     []float64
}

// GroupedLayout places the two series of every sample side by side around the
// slot center: series A ends and series B starts exactly at the center.
// barWidth outside (0, 0.5] falls back to DefaultBarWidth so neighbouring
// slots can never overlap.
func GroupedLayout(cmp types.Comparison, barWidth float64) GroupedPlan {
	if barWidth <= 0 || barWidth > 0.5 || math.IsNaN(barWidth) {
		barWidth = DefaultBarWidth
	}
	plan := GroupedPlan{
		Title:    cmp.Title,
		Unit:     cmp.Unit,
		BarWidth: barWidth,
		Legend: []LegendEntry{
			{Label: cmp.SeriesA, Color: ColorExact},
			{Label: cmp.SeriesB, Color: ColorApprox},
		},
	}
	values := make([]float64, 0, 2*len(cmp.Samples))
	for i, s := range cmp.Samples {
		x := float64(i)
		plan.Groups = append(plan.Groups, Group{
			Label:    s.Label,
			Position: x,
			Bars: []Bar{
				{Series: 0, Center: x - barWidth/2, Width: barWidth, Value: s.ExactMicros, Color: ColorExact, Label: Annotate(s.ExactMicros)},
				{Series: 1, Center: x + barWidth/2, Width: barWidth, Value: s.ApproxMicros, Color: ColorApprox, Label: Annotate(s.ApproxMicros)},
			},
		})
		values = append(values, s.ExactMicros, s.ApproxMicros)
	}
	plan.Min, plan.Max = valueBounds(values)
	for _, t := range niceTicks(plan.Min, plan.Max, 6) {
		if t.Value != 0 {
			plan.Grid = append(plan.Grid, t.Value)
		}
	}
	return plan
}

// Labels returns the slot labels in order.
func (p GroupedPlan) Labels() []string {
	out := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		out[i] = g.Label
	}
	return out
}

// RankedBar is one horizontal bar; Position is its slot counted from the bottom.
type RankedBar struct {
	NodeID    string
	Position  float64
	Thickness float64
	Score     float64
	Category  types.Category
	Color     drawing.Color
	Label     string
}

// RankedPlan is everything the ranked chart draws, before pixel mapping.
type RankedPlan struct {
	Bars     []RankedBar
	Legend   []LegendEntry
	Min, Max float64
}

// RankedLayout keeps the given order: ranked[0] is the bottom bar.
func RankedLayout(ranked []ranking.Ranked) RankedPlan {
	plan := RankedPlan{
		Legend: []LegendEntry{
			{Label: ranking.LegendLabel(types.CategorySeed), Color: ranking.ColorOf(types.CategorySeed)},
			{Label: ranking.LegendLabel(types.CategorySuspicious), Color: ranking.ColorOf(types.CategorySuspicious)},
		},
	}
	values := make([]float64, 0, len(ranked))
	for i, r := range ranked {
		plan.Bars = append(plan.Bars, RankedBar{
			NodeID:    r.Row.NodeID,
			Position:  float64(i),
			Thickness: RankedBarThickness,
			Score:     r.Row.Score,
			Category:  r.Category,
			Color:     r.Color,
			Label:     Annotate(r.Row.Score),
		})
		values = append(values, r.Row.Score)
	}
	plan.Min, plan.Max = valueBounds(values)
	return plan
}

// Labels returns the node ids bottom to top.
func (p RankedPlan) Labels() []string {
	out := make([]string, len(p.Bars))
	for i, b := range p.Bars {
		out[i] = b.NodeID
	}
	return out
}

// labelOffsetPx converts LabelOffsetPoints to pixels; the offset does not depend on bar size.
func labelOffsetPx(dpi float64) int {
	if dpi <= 0 {
		dpi = 72
	}
	return int(math.Round(LabelOffsetPoints * dpi / 72))
}

// aboveBar returns the baseline origin of a label of width textW centered over
// a vertical bar whose top edge is at topY (pixels grow downwards).
func aboveBar(centerX, topY, textW, offset int) (int, int) {
	return centerX - textW/2, topY - offset
}

// pastBar returns the baseline origin of a label placed after the end of a
// horizontal bar, vertically centered on it.
func pastBar(endX, centerY, textH, offset int) (int, int) {
	return endX + offset, centerY + textH/2
}

// keepInside moves a label of width textW left until it ends at right.
// Long labels on the longest bars would otherwise run over the axis.
func keepInside(x, textW, right int) int {
	if x+textW > right {
		return right - textW
	}
	return x
}
