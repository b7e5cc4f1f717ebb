package engine

import "visualchess/src/base"

type GameStatus uint8

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	Draw
	InvalidGame
)

func (gs GameStatus) String() string {
	switch gs {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "invalid"
	}
}

// Destination is one legal target for a piece, flagged when reaching it
// requires a promotion choice.
type Destination struct {
	To       base.Square
	Promotes bool
}

// Engine is the boundary to the chess-rules engine. All queries are
// total; TryCommit leaves the position untouched when it fails.
type Engine interface {
	// occupancy
	PieceAt(sq base.Square) (base.Piece, bool)
	ColorAt(sq base.Square) (base.Color, bool)

	// all legal destinations for the piece on from
	LegalDestinations(from base.Square) []Destination

	// TryCommit applies from->to, with promo != base.NoKind carrying the
	// promotion choice. Returns false for anything illegal.
	TryCommit(from, to base.Square, promo base.Kind) bool

	// read-only, informational
	SideToMove() base.Color
	CastleRights(c base.Color) (kingside, queenside bool)
	Status() GameStatus

	// position lifecycle
	Reset()
	LoadFEN(fen string) error
	FEN() string
}
