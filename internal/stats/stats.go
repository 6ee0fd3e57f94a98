// Package stats holds the pure numeric utilities behind the expression and
// association reports. Every function is deterministic and stateless; empty
// input yields a zero-valued result rather than an error.
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Summary is the basic descriptive statistics block.
type Summary struct {
	Mean  float64
	Min   float64
	Max   float64
	Count int
}

// ExpressionSummary extends Summary with the median and detection fields
// used for expression reports.
type ExpressionSummary struct {
	Mean           float64
	Median         float64
	Min            float64
	Max            float64
	Count          int
	NonZeroCount   int
	NonZeroPercent float64
}

// Basic computes mean/min/max over xs. Empty input returns all zeros.
func Basic(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sum := 0.0
	min, max := xs[0], xs[0]
	for _, x := range xs {
		sum += x
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return Summary{Mean: sum / float64(len(xs)), Min: min, Max: max, Count: len(xs)}
}

// Expression computes the full expression statistics block. The median is
// the element at index floor(n/2) of the ascending-sorted values, i.e. the
// upper of the two middle values for even-length input. Non-zero counting is
// strict: only values greater than zero count as detected.
func Expression(xs []float64) ExpressionSummary {
	if len(xs) == 0 {
		return ExpressionSummary{}
	}
	basic := Basic(xs)

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]

	nonZero := 0
	for _, x := range xs {
		if x > 0 {
			nonZero++
		}
	}

	return ExpressionSummary{
		Mean:           basic.Mean,
		Median:         median,
		Min:            basic.Min,
		Max:            basic.Max,
		Count:          basic.Count,
		NonZeroCount:   nonZero,
		NonZeroPercent: float64(nonZero) / float64(len(xs)) * 100,
	}
}

// PearsonCorrelation computes the product-moment correlation of x and y over
// their common length. Degenerate input (zero variance in either vector)
// correlates to 0 by convention rather than NaN.
func PearsonCorrelation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	denominator := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denominator
}

// FoldChange is meanA / meanB. A zero meanB produces +Inf or NaN, which
// callers format as-is; the degenerate output is intentional and visible.
func FoldChange(meanA, meanB float64) float64 {
	return meanA / meanB
}

// Log2FoldChange is log2 of the fold change, with the same degenerate
// behavior as FoldChange.
func Log2FoldChange(meanA, meanB float64) float64 {
	return math.Log2(meanA / meanB)
}

// MeanBracketAge averages the midpoints of "min-max" age brackets (e.g.
// "60-69" contributes 64.5). Brackets that fail to parse are excluded from
// the average; if none parse the result is 0.
func MeanBracketAge(brackets []string) float64 {
	sum := 0.0
	n := 0
	for _, bracket := range brackets {
		parts := strings.SplitN(bracket, "-", 2)
		if len(parts) != 2 {
			continue
		}
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLo != nil || errHi != nil {
			continue
		}
		sum += (lo + hi) / 2
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
