package game

// Move is an opaque move token produced and consumed by the rules engine.
// The selector never inspects a move beyond carrying it around.
type Move interface {
	String() string
}

// NoMove is the "no legal move" sentinel, distinguishable from every real
// move. A selector returning NoMove signals checkmate, stalemate or any
// other no-moves condition; it makes no judgement about which.
var NoMove Move

// Position is the rules-engine collaborator contract. The decision core
// consumes it and never implements board legality itself.
//
// Apply and Undo form a scoped mutation pair: exactly one Undo per Apply,
// restoring the exact prior state. LegalMoves must return a stable order
// within a single evaluation pass.
type Position interface {
	PieceAt(Square) (PieceKind, Side)
	LegalMoves() []Move
	Apply(Move)
	Undo()
	GameOver() bool
	Result() string
}

// Evaluate scores a position snapshot. Positive scores favor the first
// side.
type Evaluate func(Position) float64
