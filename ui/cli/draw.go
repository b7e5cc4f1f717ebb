package cli

import (
	"fmt"
	"io"

	"visualchess/src/base"
	"visualchess/src/engine"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

func pieceGlyph(p base.Piece) string {
	glyphs := map[base.Piece]string{
		{Kind: base.King, Color: base.White}:   "♔",
		{Kind: base.Queen, Color: base.White}:  "♕",
		{Kind: base.Rook, Color: base.White}:   "♖",
		{Kind: base.Bishop, Color: base.White}: "♗",
		{Kind: base.Knight, Color: base.White}: "♘",
		{Kind: base.Pawn, Color: base.White}:   "♙",
		{Kind: base.King, Color: base.Black}:   "♚",
		{Kind: base.Queen, Color: base.Black}:  "♛",
		{Kind: base.Rook, Color: base.Black}:   "♜",
		{Kind: base.Bishop, Color: base.Black}: "♝",
		{Kind: base.Knight, Color: base.Black}: "♞",
		{Kind: base.Pawn, Color: base.Black}:   "♟",
	}
	if g, ok := glyphs[p]; ok {
		return g
	}
	return " "
}

// PrintBoard paints the position as an ANSI checkerboard, rank 8 on top.
func PrintBoard(w io.Writer, eng engine.Engine) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := base.Square(rank*8 + file)
			p, occupied := eng.PieceAt(sq)
			g := pieceGlyph(p)

			lightSquare := (rank+file)%2 == 0

			var bg, fg string
			if lightSquare {
				bg = lightBg
				fg = blackF
				if !occupied {
					fg = dimF
				}
			} else {
				bg = darkBg
				switch {
				case occupied && p.Color == base.White:
					fg = whiteF
				case occupied:
					fg = blackF
				default:
					fg = dimF
				}
			}

			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
