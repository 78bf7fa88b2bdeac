package engine

import "gambit/experiments/metrics"

// MaxMoves caps games that never reach a terminal position.
const MaxMoves = 200

type Engine interface {
	// Run starts a game till there is a result or a max number of moves is reached
	Run() (result string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
