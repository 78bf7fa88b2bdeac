package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoftmax(t *testing.T) {
	t.Run("probabilities sum to one", func(t *testing.T) {
		probs := softmax([]float64{0.5, -1.2, 3.3, 2.0})

		sum := 0.0
		for _, p := range probs {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("equal scores yield a uniform distribution", func(t *testing.T) {
		probs := softmax([]float64{1.7, 1.7})

		require.InDelta(t, 0.5, probs[0], 1e-9)
		require.InDelta(t, 0.5, probs[1], 1e-9)
	})

	t.Run("single score yields certainty", func(t *testing.T) {
		probs := softmax([]float64{-42.0})

		require.InDelta(t, 1.0, probs[0], 1e-9)
	})

	t.Run("extreme scores do not overflow", func(t *testing.T) {
		// Without max subtraction exp(1e6) is +Inf
		probs := softmax([]float64{1e6, 1e6 - 1})

		sum := 0.0
		for _, p := range probs {
			require.False(t, math.IsNaN(p))
			require.False(t, math.IsInf(p, 0))
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
		require.InDelta(t, 1/(1+math.Exp(-1)), probs[0], 1e-9,
			"Only score differences should matter")
	})

	t.Run("higher score gets higher probability", func(t *testing.T) {
		probs := softmax([]float64{0.0, 2.5, -1.0})

		require.Greater(t, probs[1], probs[0])
		require.Greater(t, probs[0], probs[2])
	})

	t.Run("panics on empty input", func(t *testing.T) {
		require.Panics(t, func() {
			softmax(nil)
		})
	})
}

func TestSample(t *testing.T) {
	t.Run("zero draw picks the first index", func(t *testing.T) {
		got := sample([]float64{0.25, 0.25, 0.25, 0.25}, 0.0)

		require.Equal(t, 0, got)
	})

	t.Run("draw walks the cumulative distribution", func(t *testing.T) {
		probs := []float64{0.25, 0.25, 0.25, 0.25}

		require.Equal(t, 0, sample(probs, 0.25), "Cumulative sum reaching u should select")
		require.Equal(t, 1, sample(probs, 0.3))
		require.Equal(t, 3, sample(probs, 0.99))
	})

	t.Run("falls back to the last index when rounding leaves a gap", func(t *testing.T) {
		got := sample([]float64{0.3, 0.3, 0.3}, 0.95)

		require.Equal(t, 2, got)
	})

	t.Run("panics on empty input", func(t *testing.T) {
		require.Panics(t, func() {
			sample(nil, 0.5)
		})
	})
}
