package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds returns a value axis for bars growing from zero: the range
// always contains zero, and each non-zero side gets 5% headroom before being
// rounded outward to its own order of magnitude.
func niceAxisBounds(lo, hi float64) (float64, float64) {
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == 0 && hi == 0 {
		return 0, 1
	}
	min, max := 0.0, 0.0
	if hi > 0 {
		max = headroom(hi)
	}
	if lo < 0 {
		min = -headroom(-lo)
	}
	return min, max
}

func headroom(v float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v*1.05/mag) * mag
}

// valueBounds is niceAxisBounds over the finite values of a series.
func valueBounds(values []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return niceAxisBounds(lo, hi)
}

// niceStep picks the 1/2/2.5/5 multiple of a power of ten that splits span
// into the tick count closest to n.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Max(math.Ceil(span/step), 2)
		if score := math.Abs(count - float64(n)); score < bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

// niceTicks labels [min,max] with about n ticks on a niceStep grid.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := niceStep(max-min, n)
	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	var ticks []chart.Tick
	// Index-based stepping keeps 0.1+0.2 style drift out of the labels.
	for k := 0; ; k++ {
		v := start + float64(k)*step
		if v > end+step/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v, step)})
	}
	return ticks
}

// formatTick prints v with just enough decimals to tell neighbouring ticks apart.
func formatTick(v, step float64) string {
	if v == 0 {
		return "0"
	}
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step)))
		if step*math.Pow(10, float64(decimals)) != math.Trunc(step*math.Pow(10, float64(decimals))) {
			decimals++
		}
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// categoryTicks labels integer slots 0..n-1 and pads the axis half a slot on
// each side. go-chart derives the axis range from the tick extent.
func categoryTicks(labels []string) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(labels)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5, Label: ""})
	for i, l := range labels {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(labels)) - 0.5, Label: ""})
	return ticks
}
