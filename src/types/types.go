// Package types holds the records shared by the loaders, the ranking step and the renderer.
package types

// MetricSample is one parameter setting of the performance comparison.
// Both times are in the unit named by the enclosing Comparison (microseconds by default).
type MetricSample struct {
	Label        string  `yaml:"label"`
	ExactMicros  float64 `yaml:"exact"`
	ApproxMicros float64 `yaml:"approx"`
}

// Comparison is the full input of the grouped performance chart.
type Comparison struct {
	Title   string         `yaml:"title"`
	Unit    string         `yaml:"unit"`
	SeriesA string         `yaml:"series_a"`
	SeriesB string         `yaml:"series_b"`
	Samples []MetricSample `yaml:"samples"`
}

// DefaultComparison returns the measured PPR timings (Power Iteration vs Monte Carlo)
// for the three teleport probabilities used in the experiments.
func DefaultComparison() Comparison {
	return Comparison{
		Title:   "Performance Comparison: Exact vs. Approximate Methods",
		Unit:    "Execution Time (Microseconds)",
		SeriesA: "Power Iteration (Exact)",
		SeriesB: "Monte Carlo (Approximate)",
		Samples: []MetricSample{
			{Label: "Alpha = 0.15", ExactMicros: 10978, ApproxMicros: 2167591},
			{Label: "Alpha = 0.50", ExactMicros: 7151, ApproxMicros: 1066008},
			{Label: "Alpha = 0.85", ExactMicros: 3431, ApproxMicros: 435158},
		},
	}
}

// SuspectRow is one record of the PPR result file.
type SuspectRow struct {
	NodeID string
	Score  float64
	Status string
}

// Category is the display class of a suspect row.
type Category int

const (
	CategoryNormal Category = iota
	CategorySeed
	CategorySuspicious
)

func (c Category) String() string {
	switch c {
	case CategorySeed:
		return "SEED"
	case CategorySuspicious:
		return "SUSPICIOUS"
	default:
		return "NORMAL"
	}
}
