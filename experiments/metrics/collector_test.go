package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("tracks evaluations and best score", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddEvaluation(1.5)
		c.AddEvaluation(-0.5)

		metric := c.Complete()

		require.Equal(t, 3, metric.Candidates)
		require.Equal(t, 2, metric.Evaluations)
		require.Equal(t, 1.5, metric.BestScore)
		require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0))
	})

	t.Run("no evaluations yield a zero best score", func(t *testing.T) {
		c := NewCollector()
		c.Start(0)

		metric := c.Complete()

		require.Equal(t, 0, metric.Evaluations)
		require.Equal(t, 0.0, metric.BestScore)
	})

	t.Run("collector resets between selections", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddEvaluation(9.0)
		c.Complete()

		c.Start(1)
		c.AddEvaluation(0.5)
		metric := c.Complete()

		require.Equal(t, 1, metric.Evaluations)
		require.Equal(t, 0.5, metric.BestScore)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(5)
		c.AddEvaluation(3.0)

		require.Equal(t, SelectMetric{}, c.Complete())
	})
}
