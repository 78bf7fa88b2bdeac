package game

import (
	"fmt"

	"github.com/notnil/chess"
)

// ChessPosition adapts the notnil/chess rules engine to the Position
// contract. Apply pushes the current snapshot onto a stack and Undo pops
// it, so every Apply is reversible to the exact prior state.
type ChessPosition struct {
	current *chess.Position
	history []*chess.Position
}

// NewChessPosition returns the standard starting position.
func NewChessPosition() *ChessPosition {
	return &ChessPosition{current: chess.StartingPosition()}
}

// NewChessPositionFEN returns the position described by fen.
func NewChessPositionFEN(fen string) (*ChessPosition, error) {
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, fmt.Errorf("failed to parse FEN %q: %w", fen, err)
	}
	return &ChessPosition{current: pos}, nil
}

type chessMove struct {
	inner *chess.Move
}

func (m chessMove) String() string { return m.inner.String() }

func (p *ChessPosition) PieceAt(sq Square) (PieceKind, Side) {
	piece := p.current.Board().Piece(chess.Square(sq))
	if piece == chess.NoPiece {
		return None, First
	}
	return kindOf(piece.Type()), sideOf(piece.Color())
}

func (p *ChessPosition) LegalMoves() []Move {
	valid := p.current.ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = chessMove{inner: m}
	}
	return moves
}

func (p *ChessPosition) Apply(m Move) {
	cm, ok := m.(chessMove)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", m))
	}
	p.history = append(p.history, p.current)
	p.current = p.current.Update(cm.inner)
}

func (p *ChessPosition) Undo() {
	if len(p.history) == 0 {
		panic("no move to undo")
	}
	p.current = p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
}

func (p *ChessPosition) GameOver() bool {
	return p.current.Status() != chess.NoMethod
}

// Result reports the game outcome: "1-0", "0-1", "1/2-1/2", or "*" for a
// game still in progress.
func (p *ChessPosition) Result() string {
	switch p.current.Status() {
	case chess.Checkmate:
		if p.current.Turn() == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Turn returns the side to move.
func (p *ChessPosition) Turn() Side {
	return sideOf(p.current.Turn())
}

// FEN returns the current position in Forsyth-Edwards notation.
func (p *ChessPosition) FEN() string { return p.current.String() }

func kindOf(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		panic(fmt.Sprintf("unexpected piece type %v", t))
	}
}

func sideOf(c chess.Color) Side {
	if c == chess.White {
		return First
	}
	return Second
}
