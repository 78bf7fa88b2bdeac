// Package render draws board snapshots as SVG images.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"gambit/game"
)

const squareSize = 48

// Glyphs by piece kind, indexed by side.
var glyphs = map[game.PieceKind][2]string{
	game.Pawn:   {"♙", "♟"},
	game.Knight: {"♘", "♞"},
	game.Bishop: {"♗", "♝"},
	game.Rook:   {"♖", "♜"},
	game.Queen:  {"♕", "♛"},
	game.King:   {"♔", "♚"},
}

// WriteSVG draws pos as an SVG board with the first side's back rank at
// the bottom.
func WriteSVG(w io.Writer, pos game.Position) {
	size := game.BoardSize * squareSize
	canvas := svg.New(w)
	canvas.Start(size, size)

	for sq := game.Square(0); sq < game.NumSquares; sq++ {
		row, col := sq.Row(), sq.Col()
		x := col * squareSize
		y := (game.BoardSize - 1 - row) * squareSize

		fill := "fill:rgb(240,217,181)"
		if (row+col)%2 == 0 {
			fill = "fill:rgb(181,136,99)"
		}
		canvas.Rect(x, y, squareSize, squareSize, fill)

		kind, side := pos.PieceAt(sq)
		if kind == game.None {
			continue
		}
		canvas.Text(x+squareSize/2, y+squareSize*3/4, glyphs[kind][side],
			fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize*3/4))
	}

	canvas.End()
}
