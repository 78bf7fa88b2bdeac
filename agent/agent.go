package agent

import (
	"gambit/experiments/metrics"
	"gambit/game"
	"gambit/searcher"

	"golang.org/x/exp/rand"
)

// Agent produces the next move for a position, along with metrics from
// the selection process (if collected). It returns game.NoMove when the
// position offers no legal moves.
type Agent interface {
	FindMove(pos game.Position) (game.Move, metrics.SelectMetric)
}

type softmaxAgent struct {
	selector *searcher.Selector
	budget   int
}

// NewSoftmaxAgent returns an agent that delegates to a softmax selector.
// budget is forwarded to the selector as its sampling budget.
func NewSoftmaxAgent(selector *searcher.Selector, budget int) Agent {
	return softmaxAgent{selector: selector, budget: budget}
}

func (a softmaxAgent) FindMove(pos game.Position) (game.Move, metrics.SelectMetric) {
	return a.selector.SelectMove(pos, a.budget)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks a legal move
// uniformly at random.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(pos game.Position) (game.Move, metrics.SelectMetric) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SelectMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SelectMetric{Candidates: len(moves)}
}
