package ranking

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

func makeRows(n int) []types.SuspectRow {
	rows := make([]types.SuspectRow, n)
	for i := range rows {
		rows[i] = types.SuspectRow{NodeID: fmt.Sprintf("n%02d", i+1), Score: float64(n - i), Status: "Normal"}
	}
	return rows
}

func TestClassify_Priority(t *testing.T) {
	cases := []struct {
		status string
		want   types.Category
	}{
		{"Seed", types.CategorySeed},
		{"Seed (Known Fraudster)", types.CategorySeed},
		{"Suspicious", types.CategorySuspicious},
		{"Suspicious Seed", types.CategorySeed},
		{"Seed/Suspicious", types.CategorySeed},
		{"High Risk - Suspicious", types.CategorySuspicious},
		{"seed", types.CategoryNormal},
		{"SUSPICIOUS", types.CategoryNormal},
		{"Normal", types.CategoryNormal},
		{"", types.CategoryNormal},
	}
	for _, tc := range cases {
		if got := Classify(tc.status); got != tc.want {
			t.Fatalf("Classify(%q)=%s want %s", tc.status, got, tc.want)
		}
	}
}

func TestClassifier_RuleOrderIsPriority(t *testing.T) {
	flipped := NewClassifier(
		Contains("Suspicious", types.CategorySuspicious),
		Contains("Seed", types.CategorySeed),
	)
	if got := flipped.Classify("Seed Suspicious"); got != types.CategorySuspicious {
		t.Fatalf("first rule should win, got %s", got)
	}
	if got := NewClassifier().Classify("Seed"); got != types.CategoryNormal {
		t.Fatalf("empty rule list must fall back to NORMAL, got %s", got)
	}
	rules := DefaultRules()
	c := NewClassifier(rules...)
	rules[0] = Contains("x", types.CategorySuspicious)
	if got := c.Classify("Seed"); got != types.CategorySeed {
		t.Fatalf("classifier must not observe later edits of its rules, got %s", got)
	}
}

func TestColorOf_DistinctPerCategory(t *testing.T) {
	seen := map[string]types.Category{}
	for _, c := range []types.Category{types.CategoryNormal, types.CategorySeed, types.CategorySuspicious} {
		key := fmt.Sprintf("%v", ColorOf(c))
		if prev, dup := seen[key]; dup {
			t.Fatalf("%s and %s share color %s", prev, c, key)
		}
		seen[key] = c
	}
	if ColorOf(types.CategorySeed) != ColorSeed || ColorOf(types.Category(42)) != ColorNormal {
		t.Fatalf("unexpected color mapping")
	}
	if LegendLabel(types.CategoryNormal) != "" || LegendLabel(types.CategorySeed) == "" {
		t.Fatalf("legend labels: only SEED and SUSPICIOUS are called out")
	}
}

func TestSelectTop(t *testing.T) {
	rows := makeRows(5)
	for _, n := range []int{-1, 0, 1, 3, 5, 8} {
		got := SelectTop(rows, n)
		want := n
		if want < 0 {
			want = 0
		}
		if want > len(rows) {
			want = len(rows)
		}
		if len(got) != want {
			t.Fatalf("SelectTop(%d) len=%d want %d", n, len(got), want)
		}
		if diff := cmp.Diff(rows[:want], got); diff != "" {
			t.Fatalf("SelectTop(%d) order changed (-want +got):\n%s", n, diff)
		}
	}
	got := SelectTop(rows, 2)
	got[0].NodeID = "changed"
	if rows[0].NodeID != "n01" {
		t.Fatalf("SelectTop must not alias its input")
	}
}

func TestReverseForDisplay_Involution(t *testing.T) {
	rows := makeRows(7)
	rev := ReverseForDisplay(rows)
	if rev[0].NodeID != "n07" || rev[6].NodeID != "n01" {
		t.Fatalf("reverse order wrong: first=%s last=%s", rev[0].NodeID, rev[6].NodeID)
	}
	if diff := cmp.Diff(rows, ReverseForDisplay(rev)); diff != "" {
		t.Fatalf("reversing twice should restore order (-want +got):\n%s", diff)
	}
	if len(ReverseForDisplay(nil)) != 0 {
		t.Fatalf("reverse of nil should be empty")
	}
}

func TestRank_Top20Of25(t *testing.T) {
	rows := makeRows(25)
	rows[0].Status = "Seed"
	rows[1].Status = "Suspicious"
	ranked := Rank(rows, 20, nil)
	if len(ranked) != 20 {
		t.Fatalf("len=%d want 20", len(ranked))
	}
	if ranked[19].Row != rows[0] {
		t.Fatalf("last element should be rank 1, got %+v", ranked[19].Row)
	}
	if ranked[0].Row != rows[19] {
		t.Fatalf("first element should be rank 20, got %+v", ranked[0].Row)
	}
	if ranked[19].Category != types.CategorySeed || ranked[19].Color != ColorSeed {
		t.Fatalf("rank 1 should be a blue seed, got %+v", ranked[19])
	}
	if ranked[18].Category != types.CategorySuspicious {
		t.Fatalf("rank 2 should be suspicious, got %s", ranked[18].Category)
	}
	counts := CountByCategory(ranked)
	if counts[types.CategorySeed] != 1 || counts[types.CategorySuspicious] != 1 || counts[types.CategoryNormal] != 18 {
		t.Fatalf("counts=%v", counts)
	}
}

func TestRank_Deterministic(t *testing.T) {
	rows := makeRows(12)
	rows[4].Status = "Seed"
	a := Rank(rows, 10, nil)
	b := Rank(rows, 10, nil)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("two runs differ (-first +second):\n%s", diff)
	}
}
