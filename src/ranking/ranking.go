// Package ranking turns the loaded result table into the display order and
// colors of the top-suspects chart.
package ranking

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

// Rule assigns Category to every status for which Match is true.
type Rule struct {
	Name     string
	Match    func(status string) bool
	Category types.Category
}

// Contains returns a case-sensitive substring rule.
func Contains(substr string, c types.Category) Rule {
	return Rule{
		Name:     "contains " + substr,
		Match:    func(s string) bool { return strings.Contains(s, substr) },
		Category: c,
	}
}

// DefaultRules lists the status rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		Contains("Seed", types.CategorySeed),
		Contains("Suspicious", types.CategorySuspicious),
	}
}

// Classifier evaluates rules in order; the first match wins and unmatched
// statuses fall back to CategoryNormal.
type Classifier struct {
	rules []Rule
}

// NewClassifier copies rules so later edits by the caller do not change priority.
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Classify never fails: every status maps to exactly one category.
func (c *Classifier) Classify(status string) types.Category {
	for _, r := range c.rules {
		if r.Match != nil && r.Match(status) {
			return r.Category
		}
	}
	return types.CategoryNormal
}

var defaultClassifier = NewClassifier(DefaultRules()...)

// Classify applies DefaultRules.
func Classify(status string) types.Category { return defaultClassifier.Classify(status) }

var (
	ColorSeed       = drawing.ColorFromHex("0000FF")
	ColorSuspicious = drawing.ColorFromHex("FFA500")
	ColorNormal     = drawing.ColorFromHex("808080")
)

// ColorOf returns the fixed fill color of a category.
func ColorOf(c types.Category) drawing.Color {
	switch c {
	case types.CategorySeed:
		return ColorSeed
	case types.CategorySuspicious:
		return ColorSuspicious
	default:
		return ColorNormal
	}
}

// LegendLabel is the legend text of a category; NORMAL has none.
func LegendLabel(c types.Category) string {
	switch c {
	case types.CategorySeed:
		return "Seed (Known Fraudster)"
	case types.CategorySuspicious:
		return "High Risk / Suspicious"
	default:
		return ""
	}
}

// SelectTop returns the first n rows in their original order, or all rows when
// fewer than n exist. The result never shares storage with rows.
func SelectTop(rows []types.SuspectRow, n int) []types.SuspectRow {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]types.SuspectRow, n)
	copy(out, rows[:n])
	return out
}

// ReverseForDisplay returns rows back to front. Horizontal bars are laid out
// bottom-up, so the first input row ends up at the top of the image.
func ReverseForDisplay(rows []types.SuspectRow) []types.SuspectRow {
	out := make([]types.SuspectRow, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}

// Ranked is a display-ready row.
type Ranked struct {
	Row      types.SuspectRow
	Category types.Category
	Color    drawing.Color
}

// Rank selects the top n rows, reverses them for display and classifies each one.
func Rank(rows []types.SuspectRow, n int, c *Classifier) []Ranked {
	if c == nil {
		c = defaultClassifier
	}
	display := ReverseForDisplay(SelectTop(rows, n))
	out := make([]Ranked, len(display))
	for i, r := range display {
		cat := c.Classify(r.Status)
		out[i] = Ranked{Row: r, Category: cat, Color: ColorOf(cat)}
	}
	return out
}

// CountByCategory tallies the categories of ranked rows.
func CountByCategory(ranked []Ranked) map[types.Category]int {
	counts := map[types.Category]int{}
	for _, r := range ranked {
		counts[r.Category]++
	}
	return counts
}
