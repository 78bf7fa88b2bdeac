package engine

import (
	"testing"

	"gambit/agent"
	"gambit/experiments/metrics"
	"gambit/game"

	"github.com/stretchr/testify/require"
)

type scriptedMove int

func (m scriptedMove) String() string { return "scripted" }

// scriptedPosition offers one legal move per remaining turn and becomes
// terminal when the budget runs out.
type scriptedPosition struct {
	remaining int
	result    string
	applied   int
}

func (p *scriptedPosition) PieceAt(game.Square) (game.PieceKind, game.Side) {
	return game.None, game.First
}

func (p *scriptedPosition) LegalMoves() []game.Move {
	if p.remaining <= 0 {
		return nil
	}
	return []game.Move{scriptedMove(p.remaining)}
}

func (p *scriptedPosition) Apply(game.Move) {
	p.remaining--
	p.applied++
}

func (p *scriptedPosition) Undo() { p.remaining++; p.applied-- }

func (p *scriptedPosition) GameOver() bool { return p.remaining <= 0 }

func (p *scriptedPosition) Result() string {
	if p.remaining <= 0 {
		return p.result
	}
	return "*"
}

type firstMoveAgent struct{}

func (firstMoveAgent) FindMove(pos game.Position) (game.Move, metrics.SelectMetric) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SelectMetric{}
	}
	return moves[0], metrics.SelectMetric{Candidates: len(moves), Evaluations: len(moves)}
}

type resigningAgent struct{}

func (resigningAgent) FindMove(game.Position) (game.Move, metrics.SelectMetric) {
	return game.NoMove, metrics.SelectMetric{}
}

func TestLocalRun(t *testing.T) {
	t.Run("plays until the position is terminal", func(t *testing.T) {
		pos := &scriptedPosition{remaining: 3, result: "1-0"}
		local := NewLocal(pos, firstMoveAgent{}, firstMoveAgent{})

		result, gameMetric, moveMetrics := local.Run()

		require.Equal(t, "1-0", result)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Equal(t, 3, pos.applied)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, "White", moveMetrics[0].Player)
		require.Equal(t, "Black", moveMetrics[1].Player)
		require.Equal(t, 1, moveMetrics[0].Step)
	})

	t.Run("stops when an agent returns the sentinel", func(t *testing.T) {
		pos := &scriptedPosition{remaining: 5}
		local := NewLocal(pos, resigningAgent{}, firstMoveAgent{})

		_, gameMetric, moveMetrics := local.Run()

		require.Equal(t, 0, gameMetric.TotalMoves)
		require.Equal(t, 0, pos.applied, "No move should be applied after the sentinel")
		require.Len(t, moveMetrics, 1)
	})

	t.Run("move cap stops runaway games", func(t *testing.T) {
		pos := &scriptedPosition{remaining: MaxMoves * 2}
		local := NewLocal(pos, firstMoveAgent{}, firstMoveAgent{})

		result, gameMetric, _ := local.Run()

		require.Equal(t, "*", result)
		require.Equal(t, MaxMoves, gameMetric.TotalMoves)
	})

	t.Run("panics without a position or agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocal(nil, firstMoveAgent{}, firstMoveAgent{})
		})
		require.Panics(t, func() {
			NewLocal(&scriptedPosition{}, nil, firstMoveAgent{})
		})
	})

	t.Run("full game between random agents terminates", func(t *testing.T) {
		pos := game.NewChessPosition()
		local := NewLocal(pos, agent.NewRandomAgent(1), agent.NewRandomAgent(2))

		result, gameMetric, moveMetrics := local.Run()

		require.NotEmpty(t, result)
		require.Greater(t, gameMetric.TotalMoves, 0)
		require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves)
		require.Len(t, moveMetrics, gameMetric.TotalMoves, "One metric per applied move")
	})
}
