package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	gridColor = drawing.ColorFromHex("B0B0B0").WithAlpha(77)
	gridDash  = []float64{5, 3}
	labelInk  = drawing.ColorFromHex("222222")
)

// fillRect fills the pixel rectangle spanned by two corners.
func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.FillStroke()
	r.ResetStyle()
}

func setLabelStyle(r chart.Renderer, f *truetype.Font) {
	r.SetFont(f)
	r.SetFontSize(LabelFontSize)
	r.SetFontColor(labelInk)
}

// groupedBars draws a GroupedPlan: horizontal gridlines first, then the bars,
// then one value label per bar.
type groupedBars struct {
	plan GroupedPlan
	font *truetype.Font
}

var _ chart.Series = groupedBars{}

func (s groupedBars) GetName() string           { return "grouped bars" }
func (s groupedBars) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s groupedBars) GetStyle() chart.Style     { return chart.Style{} }

func (s groupedBars) Validate() error {
	if len(s.plan.Groups) == 0 {
		return ErrNoData
	}
	if s.font == nil {
		return fmt.Errorf("grouped bars: label font missing")
	}
	return nil
}

func (s groupedBars) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	yOf := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }
	xOf := func(v float64) int { return canvasBox.Left + xrange.Translate(v) }

	for _, g := range s.plan.Grid {
		y := yOf(g)
		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(1)
		r.SetStrokeDashArray(gridDash)
		r.MoveTo(canvasBox.Left, y)
		r.LineTo(canvasBox.Right, y)
		r.Stroke()
		r.ResetStyle()
	}

	base := yOf(0)
	for _, grp := range s.plan.Groups {
		for _, b := range grp.Bars {
			fillRect(r, xOf(b.Left()), yOf(b.Value), xOf(b.Right()), base, b.Color)
		}
	}

	off := labelOffsetPx(r.GetDPI())
	for _, grp := range s.plan.Groups {
		for _, b := range grp.Bars {
			setLabelStyle(r, s.font)
			top := yOf(b.Value)
			if base < top {
				top = base
			}
			x, y := aboveBar(xOf(b.Center), top, r.MeasureText(b.Label).Width(), off)
			r.Text(b.Label, x, y)
		}
	}
	r.ResetStyle()
}

// rankedBars draws a RankedPlan with bars growing right from zero.
type rankedBars struct {
	plan     RankedPlan
	font     *truetype.Font
	annotate bool
}

var _ chart.Series = rankedBars{}

func (s rankedBars) GetName() string           { return "ranked bars" }
func (s rankedBars) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s rankedBars) GetStyle() chart.Style     { return chart.Style{} }

func (s rankedBars) Validate() error {
	if len(s.plan.Bars) == 0 {
		return ErrNoData
	}
	if s.annotate && s.font == nil {
		return fmt.Errorf("ranked bars: label font missing")
	}
	return nil
}

func (s rankedBars) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	yOf := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }
	xOf := func(v float64) int { return canvasBox.Left + xrange.Translate(v) }

	base := xOf(0)
	for _, b := range s.plan.Bars {
		half := b.Thickness / 2
		fillRect(r, base, yOf(b.Position+half), xOf(b.Score), yOf(b.Position-half), b.Color)
	}
	if !s.annotate {
		return
	}
	off := labelOffsetPx(r.GetDPI())
	for _, b := range s.plan.Bars {
		setLabelStyle(r, s.font)
		end := xOf(b.Score)
		if end < base {
			end = base
		}
		tb := r.MeasureText(b.Label)
		x, y := pastBar(end, yOf(b.Position), tb.Height(), off)
		r.Text(b.Label, keepInside(x, tb.Width(), canvasBox.Right), y)
	}
	r.ResetStyle()
}

// corner picks where a legend sits inside the plot canvas.
type corner int

const (
	cornerTopRight corner = iota
	cornerBottomRight
)

// legend draws one filled swatch plus label per entry inside the canvas.
func legend(entries []LegendEntry, at corner) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		f := defaults.Font
		if f == nil {
			var err error
			if f, err = chart.GetDefaultFont(); err != nil {
				return
			}
		}
		const (
			pad      = 8
			swatch   = 12
			gap      = 6
			fontSize = 10.0
			margin   = 10
		)
		r.SetFont(f)
		r.SetFontSize(fontSize)

		textW, lineH := 0, swatch
		for _, e := range entries {
			tb := r.MeasureText(e.Label)
			if tb.Width() > textW {
				textW = tb.Width()
			}
			if tb.Height() > lineH {
				lineH = tb.Height()
			}
		}
		w := pad*2 + swatch + gap + textW
		h := pad*2 + len(entries)*lineH + (len(entries)-1)*gap

		left, top := canvasBox.Right-margin-w, canvasBox.Top+margin
		if at == cornerBottomRight {
			top = canvasBox.Bottom - margin - h
		}

		r.SetFillColor(drawing.ColorWhite.WithAlpha(230))
		r.SetStrokeColor(drawing.ColorFromHex("CCCCCC"))
		r.SetStrokeWidth(1)
		r.MoveTo(left, top)
		r.LineTo(left+w, top)
		r.LineTo(left+w, top+h)
		r.LineTo(left, top+h)
		r.Close()
		r.FillStroke()
		r.ResetStyle()

		y := top + pad
		for _, e := range entries {
			sy := y + (lineH-swatch)/2
			fillRect(r, left+pad, sy, left+pad+swatch, sy+swatch, e.Color)
			r.SetFont(f)
			r.SetFontSize(fontSize)
			r.SetFontColor(labelInk)
			r.Text(e.Label, left+pad+swatch+gap, y+lineH-(lineH-swatch)/2)
			y += lineH + gap
		}
		r.ResetStyle()
	}
}
