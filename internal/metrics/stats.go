package metrics

import (
	"slices"

	"github.com/rxtech-lab/argo-montecarlo/internal/types"
)

// Describe reduces per-path values to mean, median, min, max and the fraction
// of values > 0. The reduction runs on a sorted copy, so any permutation of
// values yields the same bits. An empty input gives the zero Distribution.
func Describe(values []float64) types.Distribution {
	if len(values) == 0 {
		return types.Distribution{}
	}

	sorted := sortedCopy(values)
	n := len(sorted)

	positive := 0
	for _, v := range sorted {
		if v > 0 {
			positive++
		}
	}

	return types.Distribution{
		Mean:             mean(sorted),
		Median:           median(sorted),
		Min:              sorted[0],
		Max:              sorted[n-1],
		FractionPositive: float64(positive) / float64(n),
	}
}

// Mean is the order-independent average of values. Empty input gives 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return mean(sortedCopy(values))
}

// Max returns the largest value. Empty input gives 0.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return slices.Max(values)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sortedCopy(values []float64) []float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return sorted
}
