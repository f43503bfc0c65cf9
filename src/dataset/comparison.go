package dataset

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

// LoadComparison returns the built-in timings when path is empty, otherwise the
// samples of a YAML file such as:
//
//	title: Performance Comparison
//	unit: Execution Time (Microseconds)
//	samples:
//	  - {label: "Alpha = 0.15", exact: 10978, approx: 2167591}
//
// Omitted text fields keep their built-in values.
func LoadComparison(path string) (types.Comparison, error) {
	def := types.DefaultComparison()
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Comparison{}, fmt.Errorf("%w: read %s: %w", ErrMissingInput, path, err)
	}
	var cmp types.Comparison
	if err := yaml.Unmarshal(b, &cmp); err != nil {
		return types.Comparison{}, fmt.Errorf("%w: %s: %w", ErrMalformedInput, path, err)
	}
	if len(cmp.Samples) == 0 {
		return types.Comparison{}, fmt.Errorf("%w: %s: no samples", ErrMalformedInput, path)
	}
	for i, s := range cmp.Samples {
		if math.IsNaN(s.ExactMicros) || math.IsNaN(s.ApproxMicros) || math.IsInf(s.ExactMicros, 0) || math.IsInf(s.ApproxMicros, 0) {
			return types.Comparison{}, fmt.Errorf("%w: %s: sample %d (%q) is not finite", ErrMalformedInput, path, i, s.Label)
		}
	}
	if cmp.Title == "" {
		cmp.Title = def.Title
	}
	if cmp.Unit == "" {
		cmp.Unit = def.Unit
	}
	if cmp.SeriesA == "" {
		cmp.SeriesA = def.SeriesA
	}
	if cmp.SeriesB == "" {
		cmp.SeriesB = def.SeriesB
	}
	return cmp, nil
}
