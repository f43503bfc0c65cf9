package render

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/ranking"
	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

const eps = 1e-9

func TestAnnotate_NoRounding(t *testing.T) {
	cases := map[float64]string{
		2167591: "2167591",
		10978:   "10978",
		0:       "0",
		0.25:    "0.25",
		0.0875:  "0.0875",
		1e21:    "1000000000000000000000",
		-3.5:    "-3.5",
	}
	for v, want := range cases {
		if got := Annotate(v); got != want {
			t.Fatalf("Annotate(%v)=%q want %q", v, got, want)
		}
	}
}

func TestGroupedLayout_DefaultComparison(t *testing.T) {
	plan := GroupedLayout(types.DefaultComparison(), 0)
	if plan.BarWidth != DefaultBarWidth {
		t.Fatalf("bar width=%v want default %v", plan.BarWidth, DefaultBarWidth)
	}
	if len(plan.Groups) != 3 {
		t.Fatalf("groups=%d want 3", len(plan.Groups))
	}
	wantLabels := [][2]string{{"10978", "2167591"}, {"7151", "1066008"}, {"3431", "435158"}}
	for i, g := range plan.Groups {
		if len(g.Bars) != 2 {
			t.Fatalf("group %d has %d bars, want 2", i, len(g.Bars))
		}
		if g.Position != float64(i) {
			t.Fatalf("group %d at %v", i, g.Position)
		}
		a, b := g.Bars[0], g.Bars[1]
		if a.Label != wantLabels[i][0] || b.Label != wantLabels[i][1] {
			t.Fatalf("group %d labels %q/%q want %q", i, a.Label, b.Label, wantLabels[i])
		}
		// symmetric around the slot center, touching, not overlapping
		if math.Abs(a.Right()-g.Position) > eps || math.Abs(b.Left()-g.Position) > eps {
			t.Fatalf("group %d bars do not meet at center: A.right=%v B.left=%v", i, a.Right(), b.Left())
		}
		if math.Abs((g.Position-a.Center)-(b.Center-g.Position)) > eps {
			t.Fatalf("group %d offsets not symmetric", i)
		}
		if a.Color != ColorExact || b.Color != ColorApprox || a.Series != 0 || b.Series != 1 {
			t.Fatalf("group %d series mixed up: %+v %+v", i, a, b)
		}
	}
	// equal padding between neighbouring slots
	for i := 1; i < len(plan.Groups); i++ {
		gap := plan.Groups[i].Bars[0].Left() - plan.Groups[i-1].Bars[1].Right()
		if math.Abs(gap-(1-2*DefaultBarWidth)) > eps {
			t.Fatalf("gap %d=%v want %v", i, gap, 1-2*DefaultBarWidth)
		}
	}
	if plan.Min != 0 || plan.Max < 2167591 {
		t.Fatalf("value range [%v,%v] must start at 0 and cover the largest bar", plan.Min, plan.Max)
	}
	if diff := cmp.Diff([]string{"Alpha = 0.15", "Alpha = 0.50", "Alpha = 0.85"}, plan.Labels()); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	for _, g := range plan.Grid {
		if g == 0 {
			t.Fatalf("zero baseline should not be a gridline")
		}
	}
}

func TestGroupedLayout_RawHeights(t *testing.T) {
	cmpIn := types.Comparison{Samples: []types.MetricSample{{Label: "x", ExactMicros: 1, ApproxMicros: 1e6}}}
	plan := GroupedLayout(cmpIn, 0.4)
	if plan.BarWidth != 0.4 {
		t.Fatalf("bar width=%v", plan.BarWidth)
	}
	if plan.Groups[0].Bars[0].Value != 1 || plan.Groups[0].Bars[1].Value != 1e6 {
		t.Fatalf("heights must be the raw values: %+v", plan.Groups[0].Bars)
	}
	for _, bw := range []float64{-1, 0.75, math.NaN()} {
		if got := GroupedLayout(cmpIn, bw).BarWidth; got != DefaultBarWidth {
			t.Fatalf("bar width %v should fall back, got %v", bw, got)
		}
	}
}

func rankedRows(n int) []ranking.Ranked {
	rows := make([]types.SuspectRow, n)
	for i := range rows {
		rows[i] = types.SuspectRow{NodeID: fmt.Sprintf("node-%d", i+1), Score: 0.5 - float64(i)*0.01, Status: "Normal"}
	}
	rows[0].Status = "Seed"
	rows[2].Status = "Suspicious"
	return ranking.Rank(rows, 20, nil)
}

func TestRankedLayout_KeepsDisplayOrder(t *testing.T) {
	ranked := rankedRows(25)
	plan := RankedLayout(ranked)
	if len(plan.Bars) != 20 {
		t.Fatalf("bars=%d want 20", len(plan.Bars))
	}
	for i, b := range plan.Bars {
		if b.Position != float64(i) || b.NodeID != ranked[i].Row.NodeID || b.Score != ranked[i].Row.Score {
			t.Fatalf("bar %d reordered: %+v vs %+v", i, b, ranked[i].Row)
		}
		if b.Color != ranked[i].Color {
			t.Fatalf("bar %d color changed", i)
		}
	}
	top := plan.Bars[len(plan.Bars)-1]
	if top.NodeID != "node-1" || top.Category != types.CategorySeed {
		t.Fatalf("top bar should be the rank-1 seed, got %+v", top)
	}
	if plan.Bars[0].NodeID != "node-20" {
		t.Fatalf("bottom bar should be rank 20, got %s", plan.Bars[0].NodeID)
	}
	want := []LegendEntry{
		{Label: "Seed (Known Fraudster)", Color: ranking.ColorSeed},
		{Label: "High Risk / Suspicious", Color: ranking.ColorSuspicious},
	}
	if diff := cmp.Diff(want, plan.Legend); diff != "" {
		t.Fatalf("legend (-want +got):\n%s", diff)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	a := GroupedLayout(types.DefaultComparison(), 0)
	b := GroupedLayout(types.DefaultComparison(), 0)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("grouped layout not deterministic:\n%s", diff)
	}
	ra := RankedLayout(rankedRows(25))
	rb := RankedLayout(rankedRows(25))
	if diff := cmp.Diff(ra, rb); diff != "" {
		t.Fatalf("ranked layout not deterministic:\n%s", diff)
	}
}

func TestLabelPlacementArithmetic(t *testing.T) {
	for dpi, want := range map[float64]int{72: 3, 96: 4, 100: 4, 144: 6, 0: 3} {
		if got := labelOffsetPx(dpi); got != want {
			t.Fatalf("labelOffsetPx(%v)=%d want %d", dpi, got, want)
		}
	}
	x, y := aboveBar(100, 50, 40, 4)
	if x != 80 || y != 46 {
		t.Fatalf("aboveBar=(%d,%d) want (80,46)", x, y)
	}
	// offset does not depend on the bar height
	_, y1 := aboveBar(100, 10, 40, 4)
	_, y2 := aboveBar(100, 400, 40, 4)
	if 10-y1 != 400-y2 {
		t.Fatalf("vertical offset depends on bar height: %d vs %d", 10-y1, 400-y2)
	}
	x, y = pastBar(300, 120, 10, 4)
	if x != 304 || y != 125 {
		t.Fatalf("pastBar=(%d,%d) want (304,125)", x, y)
	}
}
