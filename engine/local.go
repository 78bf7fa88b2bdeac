package engine

import (
	"time"

	"gambit/agent"
	"gambit/experiments/metrics"
	"gambit/game"

	"github.com/rs/zerolog/log"
)

// Local drives a game between two in-process agents on a shared position.
// The first agent moves first.
type Local struct {
	position game.Position
	agents   [2]agent.Agent
	maxMoves int
}

func NewLocal(position game.Position, first, second agent.Agent) *Local {
	if position == nil {
		panic("need a starting position")
	}
	if first == nil || second == nil {
		panic("need two agents")
	}
	return &Local{
		position: position,
		agents:   [2]agent.Agent{first, second},
		maxMoves: MaxMoves,
	}
}

// Run alternates turns until a side has no legal moves, the position is
// terminal, or the move cap is reached.
func (l *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	sides := [2]game.Side{game.First, game.Second}

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !l.position.GameOver() && step < l.maxMoves {
		turn := step % 2
		move, selectMetric := l.agents[turn].FindMove(l.position)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step + 1,
			Player:       sides[turn].String(),
			SelectMetric: selectMetric,
		})

		if move == game.NoMove {
			log.Info().Msgf("%s has no legal moves after %d moves", sides[turn], step)
			break
		}

		l.position.Apply(move)
		step++
		log.Info().Msgf("move %d: %s plays %s", step, sides[turn], move)
	}

	result := l.position.Result()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Result:     result,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
	}
	log.Info().Msgf("game over after %d moves: %s", step, result)
	return result, gameMetric, moveMetrics
}
