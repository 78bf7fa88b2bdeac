package game

import (
	"fmt"
	"math"
)

// Evaluator computes a static score for a position from fixed weight
// tables: material plus pawn-positional bonus per occupied square, plus a
// weighted cohesion differential between the two sides. It is a pure
// function of the position snapshot and the weights.
type Evaluator struct {
	weights Weights
}

func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Evaluate scores pos from the first side's perspective.
func (e *Evaluator) Evaluate(pos Position) float64 {
	score := 0.0
	var first, second []Square

	for sq := Square(0); sq < NumSquares; sq++ {
		kind, side := pos.PieceAt(sq)
		if kind == None {
			continue
		}
		if kind < None || kind >= numPieceKinds {
			panic(fmt.Sprintf("piece kind %d out of range at square %d", kind, sq))
		}

		bonus := 0.0
		if kind == Pawn {
			bonus = e.weights.PawnTable[sq.Row()][sq.Col()]
		}
		score += side.Sign() * (e.weights.PieceValue[kind] + bonus)

		if side == First {
			first = append(first, sq)
		} else {
			second = append(second, sq)
		}
	}

	return score + e.weights.Cluster*(cohesion(first)-cohesion(second))
}

// cohesion is the negated sum of Euclidean distances from each piece to
// the side's centroid, so tighter clusters score higher. A side with no
// pieces scores exactly 0.
func cohesion(squares []Square) float64 {
	if len(squares) == 0 {
		return 0
	}

	var rowSum, colSum float64
	for _, sq := range squares {
		rowSum += float64(sq.Row())
		colSum += float64(sq.Col())
	}
	n := float64(len(squares))
	centroidRow := rowSum / n
	centroidCol := colSum / n

	spread := 0.0
	for _, sq := range squares {
		spread += math.Hypot(float64(sq.Row())-centroidRow, float64(sq.Col())-centroidCol)
	}
	return -spread
}
