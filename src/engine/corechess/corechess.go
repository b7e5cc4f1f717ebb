// Package corechess backs the engine boundary with
// github.com/corentings/chess/v2.
package corechess

import (
	"fmt"

	"visualchess/src/base"
	"visualchess/src/engine"
	"visualchess/src/logx"

	nchess "github.com/corentings/chess/v2"
)

type Engine struct {
	game   *nchess.Game
	logger logx.Logger
}

var _ engine.Engine = (*Engine)(nil)

// NewEngine starts from the standard initial position.
func NewEngine(logger logx.Logger) *Engine {
	return &Engine{game: nchess.NewGame(), logger: logger}
}

func (e *Engine) Reset() {
	e.logger.Debug("reset to classic position")
	e.game = nchess.NewGame()
}

func (e *Engine) LoadFEN(fen string) error {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return fmt.Errorf("parse FEN: %w", err)
	}
	e.logger.Debugf("load position: %v", fen)
	e.game = nchess.NewGame(opt)
	return nil
}

func (e *Engine) FEN() string {
	return e.game.Position().String()
}

func (e *Engine) PieceAt(sq base.Square) (base.Piece, bool) {
	if !sq.Valid() {
		return base.NoPiece, false
	}
	p := e.game.Position().Board().Piece(nchess.Square(sq))
	if p == nchess.NoPiece {
		return base.NoPiece, false
	}
	return base.Piece{Kind: kindFrom(p.Type()), Color: colorFrom(p.Color())}, true
}

func (e *Engine) ColorAt(sq base.Square) (base.Color, bool) {
	p, ok := e.PieceAt(sq)
	if !ok {
		return base.NoColor, false
	}
	return p.Color, true
}

func (e *Engine) LegalDestinations(from base.Square) []engine.Destination {
	if !from.Valid() {
		return nil
	}
	var dests []engine.Destination
	seen := make(map[base.Square]int)
	for _, mv := range e.game.ValidMoves() {
		if base.Square(mv.S1()) != from {
			continue
		}
		to := base.Square(mv.S2())
		promotes := mv.Promo() != nchess.NoPieceType
		if i, ok := seen[to]; ok {
			// promotion generates one move per piece choice
			if promotes {
				dests[i].Promotes = true
			}
			continue
		}
		seen[to] = len(dests)
		dests = append(dests, engine.Destination{To: to, Promotes: promotes})
	}
	return dests
}

func (e *Engine) TryCommit(from, to base.Square, promo base.Kind) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	uci := from.String() + to.String() + promoSuffix(promo)
	if err := e.game.PushNotationMove(uci, nchess.UCINotation{}, nil); err != nil {
		e.logger.Debugf("rejected move %v: %v", uci, err)
		return false
	}
	e.logger.Infof("move %v", uci)
	return true
}

func (e *Engine) SideToMove() base.Color {
	return colorFrom(e.game.Position().Turn())
}

func (e *Engine) CastleRights(c base.Color) (kingside, queenside bool) {
	rights := e.game.Position().CastleRights()
	nc := nchess.White
	if c == base.Black {
		nc = nchess.Black
	}
	return rights.CanCastle(nc, nchess.KingSide), rights.CanCastle(nc, nchess.QueenSide)
}

func (e *Engine) Status() engine.GameStatus {
	if e.game.Outcome() == nchess.NoOutcome {
		return engine.Ongoing
	}
	switch e.game.Method() {
	case nchess.Checkmate:
		return engine.Checkmate
	case nchess.Stalemate:
		return engine.Stalemate
	default:
		return engine.Draw
	}
}

func promoSuffix(k base.Kind) string {
	switch k {
	case base.NoKind:
		return ""
	case base.Queen:
		return "q"
	case base.Rook:
		return "r"
	case base.Bishop:
		return "b"
	case base.Knight:
		return "n"
	default:
		// pawn/king promotions cannot come out of the picker
		panic(fmt.Sprintf("bad promotion kind %v", k))
	}
}

func kindFrom(t nchess.PieceType) base.Kind {
	switch t {
	case nchess.Pawn:
		return base.Pawn
	case nchess.Knight:
		return base.Knight
	case nchess.Bishop:
		return base.Bishop
	case nchess.Rook:
		return base.Rook
	case nchess.Queen:
		return base.Queen
	case nchess.King:
		return base.King
	default:
		return base.NoKind
	}
}

func colorFrom(c nchess.Color) base.Color {
	switch c {
	case nchess.White:
		return base.White
	case nchess.Black:
		return base.Black
	default:
		return base.NoColor
	}
}
