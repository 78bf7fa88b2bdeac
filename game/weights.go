package game

// Weights holds the fixed evaluation tables. A Weights value is built once
// at startup and handed to the evaluator; nothing mutates it afterwards.
type Weights struct {
	// PieceValue is the material value per piece kind. The king carries no
	// material value since it is never captured in this model.
	PieceValue [numPieceKinds]float64
	// PawnTable is an additive bonus or penalty for a pawn by (row, col),
	// with row 0 at the first side's back rank. Both sides look up their
	// pawns by raw board coordinates.
	PawnTable [BoardSize][BoardSize]float64
	// Cluster scales the cohesion differential between the two sides.
	Cluster float64
}

// DefaultWeights returns the standard evaluation tables.
func DefaultWeights() Weights {
	return Weights{
		PieceValue: [numPieceKinds]float64{
			Pawn:   1.0,
			Knight: 3.2,
			Bishop: 3.3,
			Rook:   5.0,
			Queen:  9.5,
			King:   0,
		},
		PawnTable: [BoardSize][BoardSize]float64{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			{0.1, 0.1, 0.2, 0.3, 0.3, 0.2, 0.1, 0.1},
			{0.05, 0.05, 0.1, 0.25, 0.25, 0.1, 0.05, 0.05},
			{0, 0, 0, 0.2, 0.2, 0, 0, 0},
			{0.05, -0.05, -0.1, 0, 0, -0.1, -0.05, 0.05},
			{0.05, 0.1, 0, -0.2, -0.2, 0, 0.1, 0.05},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		Cluster: 0.1,
	}
}
