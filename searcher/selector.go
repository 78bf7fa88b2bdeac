package searcher

import (
	"time"

	"gambit/experiments/metrics"
	"gambit/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Selector)

// Selector picks moves stochastically: it scores the position reached by
// each legal move with a static evaluator, converts the scores into a
// softmax distribution, and samples one move from it. There is no tree
// search; every call runs a single scoring pass.
type Selector struct {
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Selector) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithRand sets the random source used for move sampling. Fixing the
// source makes selection reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Selector) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSelector(options ...Option) *Selector {
	evaluator := game.NewEvaluator(game.DefaultWeights())
	s := &Selector{ // Default values
		evaluate: evaluator.Evaluate,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// SelectMove scores every legal move of pos in the order the rules engine
// returns them, then samples one move from the softmax distribution over
// the scores. It returns game.NoMove immediately when the position has no
// legal moves, without evaluating anything.
//
// budget is reserved for repeated-sampling schemes and is accepted for
// interface compatibility; the selector runs exactly one scoring pass per
// call regardless of its value.
func (s *Selector) SelectMove(pos game.Position, budget int) (game.Move, metrics.SelectMetric) {
	moves := pos.LegalMoves()
	s.metrics.Start(len(moves))
	if len(moves) == 0 {
		return game.NoMove, s.metrics.Complete()
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = s.scoreMove(pos, move)
		s.metrics.AddEvaluation(scores[i])
	}

	probs := softmax(scores)
	picked := sample(probs, s.rng.Float64())
	log.Debug().Msgf("picked move %s with probability %.4f out of %d candidates",
		moves[picked], probs[picked], len(moves))
	return moves[picked], s.metrics.Complete()
}

// scoreMove evaluates the position reached by move. The undo is deferred
// so the shared position is restored on every exit path, including an
// evaluator panic.
func (s *Selector) scoreMove(pos game.Position, move game.Move) float64 {
	pos.Apply(move)
	defer pos.Undo()
	return s.evaluate(pos)
}
