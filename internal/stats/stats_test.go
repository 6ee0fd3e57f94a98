package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasic(t *testing.T) {
	t.Run("empty input yields zeros", func(t *testing.T) {
		assert.Equal(t, Summary{}, Basic(nil))
	})

	t.Run("single element", func(t *testing.T) {
		got := Basic([]float64{5})
		assert.Equal(t, Summary{Mean: 5, Min: 5, Max: 5, Count: 1}, got)
	})

	t.Run("mixed values", func(t *testing.T) {
		got := Basic([]float64{2, 8, 4, 6})
		assert.Equal(t, Summary{Mean: 5, Min: 2, Max: 8, Count: 4}, got)
	})
}

func TestExpression(t *testing.T) {
	t.Run("empty input yields zeros", func(t *testing.T) {
		assert.Equal(t, ExpressionSummary{}, Expression(nil))
	})

	t.Run("zeros and nonzeros", func(t *testing.T) {
		got := Expression([]float64{0, 0, 5, 10})

		assert.Equal(t, 3.75, got.Mean)
		assert.Equal(t, 5.0, got.Median)
		assert.Equal(t, 0.0, got.Min)
		assert.Equal(t, 10.0, got.Max)
		assert.Equal(t, 4, got.Count)
		assert.Equal(t, 2, got.NonZeroCount)
		assert.Equal(t, 50.0, got.NonZeroPercent)
	})

	t.Run("even length takes upper of the two middle values", func(t *testing.T) {
		// Ascending sort is [1 2 3 4]; index len/2 = 2 picks 3.
		got := Expression([]float64{4, 1, 3, 2})
		assert.Equal(t, 3.0, got.Median)
	})

	t.Run("odd length takes the middle value", func(t *testing.T) {
		got := Expression([]float64{9, 1, 5})
		assert.Equal(t, 5.0, got.Median)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		xs := []float64{3, 1, 2}
		Expression(xs)
		assert.Equal(t, []float64{3, 1, 2}, xs)
	})

	t.Run("negative values do not count as detected", func(t *testing.T) {
		got := Expression([]float64{-1, 0, 2})
		assert.Equal(t, 1, got.NonZeroCount)
	})
}

func TestPearsonCorrelation(t *testing.T) {
	t.Run("perfect self correlation", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		assert.InDelta(t, 1.0, PearsonCorrelation(x, x), 1e-12)
	})

	t.Run("perfect inverse correlation", func(t *testing.T) {
		x := []float64{1, 2, 3, 4}
		y := []float64{8, 6, 4, 2}
		assert.InDelta(t, -1.0, PearsonCorrelation(x, y), 1e-12)
	})

	t.Run("symmetric", func(t *testing.T) {
		x := []float64{1, 5, 2, 8}
		y := []float64{3, 4, 9, 1}
		assert.Equal(t, PearsonCorrelation(x, y), PearsonCorrelation(y, x))
	})

	t.Run("constant vector correlates to zero", func(t *testing.T) {
		x := []float64{7, 7, 7, 7}
		y := []float64{1, 2, 3, 4}
		assert.Equal(t, 0.0, PearsonCorrelation(x, y))
	})

	t.Run("empty input correlates to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, PearsonCorrelation(nil, nil))
	})

	t.Run("uneven lengths use the common prefix", func(t *testing.T) {
		x := []float64{1, 2, 3}
		y := []float64{1, 2, 3, 100}
		assert.InDelta(t, 1.0, PearsonCorrelation(x, y), 1e-12)
	})
}

func TestFoldChange(t *testing.T) {
	assert.Equal(t, 2.0, FoldChange(10, 5))
	assert.Equal(t, 1.0, Log2FoldChange(10, 5))

	// Degenerate denominators pass through unguarded
	assert.True(t, math.IsInf(FoldChange(10, 0), 1))
	assert.True(t, math.IsNaN(FoldChange(0, 0)))
	assert.True(t, math.IsInf(Log2FoldChange(10, 0), 1))
}

func TestMeanBracketAge(t *testing.T) {
	t.Run("single bracket midpoint", func(t *testing.T) {
		assert.Equal(t, 64.5, MeanBracketAge([]string{"60-69"}))
	})

	t.Run("averages multiple midpoints", func(t *testing.T) {
		// (54.5 + 64.5) / 2
		assert.Equal(t, 59.5, MeanBracketAge([]string{"50-59", "60-69"}))
	})

	t.Run("unparseable brackets are skipped", func(t *testing.T) {
		assert.Equal(t, 64.5, MeanBracketAge([]string{"60-69", "unknown", "70+"}))
	})

	t.Run("no parseable brackets yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, MeanBracketAge([]string{"unknown", ""}))
		assert.Equal(t, 0.0, MeanBracketAge(nil))
	})
}
