package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a colored piece on the board.
type Piece struct {
	Kind  Kind
	Color Color
}

var NoPiece = Piece{}

func (p Piece) Valid() bool {
	return p.Kind != NoKind && p.Color != NoColor
}

func (p Piece) String() string {
	if !p.Valid() {
		return "none"
	}
	return p.Color.String() + " " + p.Kind.String()
}

// Square addresses one of the 64 board cells, a1 = 0 .. h8 = 63.
type Square int

const NoSquare Square = -1

func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]rune{rune(s.File() + 'a'), rune(s.Rank() + '1')})
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to file, '1' ~ '8' to rank
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return NoSquare, fmt.Errorf("invalid position %q", pos)
	}
	return Square(int(pos[1]-'1')*8 + int(pos[0]-'a')), nil
}

// ---- screen grid <-> square ----
//
// Screen rows grow downward: row 0 is the top of the board and holds
// rank 8, file 0 is the a-file on the left.

// CoordToSquare converts screen grid coordinates to a square.
func CoordToSquare(file, row int) Square {
	return Square(63 - (row*8 + (7 - file)))
}

// SquareToCoord is the exact inverse of CoordToSquare.
func SquareToCoord(s Square) (file, row int) {
	return int(s) % 8, 7 - int(s)/8
}

// PixelToCell maps a board-relative pixel to a grid cell. ok is false
// when the point lies outside the 8x8 area.
func PixelToCell(x, y, tile float64) (file, row int, ok bool) {
	fx := x / tile
	fy := y / tile
	if fx < 0 || fx >= 8 || fy < 0 || fy >= 8 {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// PixelToSquare maps a board-relative pixel to a square, NoSquare when
// the point is off the board.
func PixelToSquare(x, y, tile float64) Square {
	file, row, ok := PixelToCell(x, y, tile)
	if !ok {
		return NoSquare
	}
	return CoordToSquare(file, row)
}
