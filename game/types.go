package game

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// NumSquares is the total number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Square indexes a board square in [0, NumSquares). Square 0 is the corner
// of the first side's back rank; the index grows file-first, rank-second.
type Square int

// Row returns the rank of the square, counted from the first side's back rank.
func (sq Square) Row() int { return int(sq) / BoardSize }

// Col returns the file of the square.
func (sq Square) Col() int { return int(sq) % BoardSize }

// PieceKind identifies the kind of piece on a square. None marks an empty
// square.
type PieceKind int

const (
	None PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	numPieceKinds
)

// Side identifies one of the two players. Evaluation scores are positive
// when they favor First.
type Side int

const (
	First  Side = iota // conventionally "White"
	Second             // conventionally "Black"
)

// Sign is the evaluation sign convention: +1 for First, -1 for Second.
func (s Side) Sign() float64 {
	if s == First {
		return 1
	}
	return -1
}

func (s Side) Other() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	if s == First {
		return "White"
	}
	return "Black"
}
