package src

import (
	"testing"

	"visualchess/src/base"
	"visualchess/src/engine"
	"visualchess/src/logx"
)

const tile = 64.0

type commit struct {
	from, to base.Square
	promo    base.Kind
}

// fakeEngine scripts the adapter boundary.
type fakeEngine struct {
	pieces   map[base.Square]base.Piece
	dests    map[base.Square][]engine.Destination
	commits  []commit
	commitOK bool
	side     base.Color
}

var _ engine.Engine = (*fakeEngine)(nil)

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		pieces:   map[base.Square]base.Piece{},
		dests:    map[base.Square][]engine.Destination{},
		commitOK: true,
		side:     base.White,
	}
}

func (f *fakeEngine) PieceAt(sq base.Square) (base.Piece, bool) {
	p, ok := f.pieces[sq]
	return p, ok
}

func (f *fakeEngine) ColorAt(sq base.Square) (base.Color, bool) {
	p, ok := f.pieces[sq]
	if !ok {
		return base.NoColor, false
	}
	return p.Color, true
}

func (f *fakeEngine) LegalDestinations(from base.Square) []engine.Destination {
	return f.dests[from]
}

func (f *fakeEngine) TryCommit(from, to base.Square, promo base.Kind) bool {
	f.commits = append(f.commits, commit{from: from, to: to, promo: promo})
	return f.commitOK
}

func (f *fakeEngine) SideToMove() base.Color { return f.side }
func (f *fakeEngine) CastleRights(base.Color) (bool, bool) {
	return true, true
}
func (f *fakeEngine) Status() engine.GameStatus { return engine.Ongoing }
func (f *fakeEngine) Reset()                    {}
func (f *fakeEngine) LoadFEN(string) error      { return nil }
func (f *fakeEngine) FEN() string               { return base.FEN_START_GAME }

func mustSquare(t *testing.T, pos string) base.Square {
	t.Helper()
	s, err := base.SquareFromAlgebraic(pos)
	if err != nil {
		t.Fatalf("square %q: %v", pos, err)
	}
	return s
}

// center pixel of a square
func center(s base.Square) (float64, float64) {
	f, r := base.SquareToCoord(s)
	return (float64(f) + 0.5) * tile, (float64(r) + 0.5) * tile
}

func cellCenter(c Cell) (float64, float64) {
	return (float64(c.File) + 0.5) * tile, (float64(c.Row) + 0.5) * tile
}

func clickSquare(c *Controller, s base.Square) {
	x, y := center(s)
	c.Click(x, y)
}

func TestClickSelectsSquare(t *testing.T) {
	f := newFakeEngine()
	c := NewController(f, tile, logx.Nop{})

	e2 := mustSquare(t, "e2")
	clickSquare(c, e2)
	if c.Selected() != e2 {
		t.Fatalf("selected %v, want %v", c.Selected(), e2)
	}
	if len(f.commits) != 0 {
		t.Fatalf("commit attempted on first click: %v", f.commits)
	}

	// off-board click clears the selection
	c.Click(-5, -5)
	if c.Selected() != base.NoSquare {
		t.Fatalf("selected %v after off-board click", c.Selected())
	}
}

func TestClickChainMove(t *testing.T) {
	f := newFakeEngine()
	e2 := mustSquare(t, "e2")
	e4 := mustSquare(t, "e4")
	f.pieces[e2] = base.Piece{Kind: base.Pawn, Color: base.White}
	f.dests[e2] = []engine.Destination{
		{To: mustSquare(t, "e3")}, {To: e4},
	}
	c := NewController(f, tile, logx.Nop{})

	clickSquare(c, e2)
	clickSquare(c, e4)

	if len(f.commits) != 1 {
		t.Fatalf("commits: %v", f.commits)
	}
	got := f.commits[0]
	if got.from != e2 || got.to != e4 || got.promo != base.NoKind {
		t.Fatalf("commit %+v", got)
	}
	// the destination becomes the new selection
	if c.Selected() != e4 {
		t.Fatalf("selected %v after commit, want %v", c.Selected(), e4)
	}
	if c.State() != StatePlaying {
		t.Fatalf("state %v", c.State())
	}
}

func TestIllegalMoveIsSilent(t *testing.T) {
	f := newFakeEngine()
	f.commitOK = false
	a1 := mustSquare(t, "a1")
	h5 := mustSquare(t, "h5")
	f.pieces[a1] = base.Piece{Kind: base.Rook, Color: base.White}
	c := NewController(f, tile, logx.Nop{})

	clickSquare(c, a1)
	clickSquare(c, h5)

	if len(f.commits) != 1 {
		t.Fatalf("commits: %v", f.commits)
	}
	// selection still follows the click
	if c.Selected() != h5 {
		t.Fatalf("selected %v, want %v", c.Selected(), h5)
	}
	if c.State() != StatePlaying {
		t.Fatalf("state %v", c.State())
	}
}

func promoSetup(t *testing.T, f *fakeEngine) (from, to base.Square) {
	t.Helper()
	from = mustSquare(t, "e7")
	to = mustSquare(t, "e8")
	f.pieces[from] = base.Piece{Kind: base.Pawn, Color: base.White}
	f.dests[from] = []engine.Destination{{To: to, Promotes: true}}
	return from, to
}

func TestPromotionDetection(t *testing.T) {
	f := newFakeEngine()
	from, to := promoSetup(t, f)
	c := NewController(f, tile, logx.Nop{})

	clickSquare(c, from)
	clickSquare(c, to)

	if c.State() != StatePromoting {
		t.Fatalf("state %v, want promoting", c.State())
	}
	if c.Promoting() != to {
		t.Fatalf("pending promotion %v, want %v", c.Promoting(), to)
	}
	// selection preserved for the eventual commit, nothing committed yet
	if c.Selected() != from {
		t.Fatalf("selected %v, want %v", c.Selected(), from)
	}
	if len(f.commits) != 0 {
		t.Fatalf("commit before the piece choice: %v", f.commits)
	}
}

func TestPromotionResolution(t *testing.T) {
	f := newFakeEngine()
	from, to := promoSetup(t, f)
	c := NewController(f, tile, logx.Nop{})
	clickSquare(c, from)
	clickSquare(c, to)

	// (file=4, row=4) is the bishop cell
	x, y := cellCenter(Cell{File: 4, Row: 4})
	c.CursorMoved(x, y)
	c.Click(x, y)

	if len(f.commits) != 1 {
		t.Fatalf("commits: %v", f.commits)
	}
	got := f.commits[0]
	if got.from != from || got.to != to || got.promo != base.Bishop {
		t.Fatalf("commit %+v", got)
	}
	if c.State() != StatePlaying {
		t.Fatalf("state %v after resolution", c.State())
	}
	if c.Promoting() != base.NoSquare {
		t.Fatalf("pending promotion not cleared: %v", c.Promoting())
	}
}

func TestPromotionPickerKinds(t *testing.T) {
	want := map[int]base.Kind{
		2: base.Rook,
		3: base.Knight,
		4: base.Bishop,
		5: base.Queen,
	}
	for file, kind := range want {
		f := newFakeEngine()
		from, to := promoSetup(t, f)
		c := NewController(f, tile, logx.Nop{})
		clickSquare(c, from)
		clickSquare(c, to)

		x, y := cellCenter(Cell{File: file, Row: 4})
		c.CursorMoved(x, y)
		c.Click(x, y)

		if len(f.commits) != 1 || f.commits[0].promo != kind {
			t.Fatalf("file %d: commits %v, want promo %v", file, f.commits, kind)
		}
	}
}

func TestPromotionClickOutsidePickerIgnored(t *testing.T) {
	f := newFakeEngine()
	_, to := promoSetup(t, f)
	c := NewController(f, tile, logx.Nop{})
	clickSquare(c, mustSquare(t, "e7"))
	clickSquare(c, to)

	// hover a non-picker cell and click
	x, y := cellCenter(Cell{File: 0, Row: 0})
	c.CursorMoved(x, y)
	c.Click(x, y)

	if c.State() != StatePromoting {
		t.Fatalf("state %v, want still promoting", c.State())
	}
	if len(f.commits) != 0 {
		t.Fatalf("commits: %v", f.commits)
	}

	// no hover at all: also ignored
	c2 := NewController(newFakeEngine(), tile, logx.Nop{})
	c2.state = StatePromoting
	c2.Click(x, y)
	if c2.State() != StatePromoting {
		t.Fatalf("state %v without hover", c2.State())
	}
}

func TestCursorMovedIdempotent(t *testing.T) {
	f := newFakeEngine()
	_, to := promoSetup(t, f)
	c := NewController(f, tile, logx.Nop{})
	clickSquare(c, mustSquare(t, "e7"))
	clickSquare(c, to)

	x, y := cellCenter(Cell{File: 3, Row: 4})
	for i := 0; i < 5; i++ {
		c.CursorMoved(x, y)
		cell, ok := c.HoveredCell()
		if !ok || cell != (Cell{File: 3, Row: 4}) {
			t.Fatalf("iteration %d: hovered %v ok=%v", i, cell, ok)
		}
	}

	// outside the board: hover reads as none
	c.CursorMoved(-1, -1)
	if _, ok := c.HoveredCell(); ok {
		t.Fatal("hover valid for off-board point")
	}
}

func TestCursorMovedIgnoredWhilePlaying(t *testing.T) {
	c := NewController(newFakeEngine(), tile, logx.Nop{})
	c.CursorMoved(100, 100)
	if _, ok := c.HoveredCell(); ok {
		t.Fatal("hover tracked outside the promoting state")
	}
}

func TestWaitingIgnoresInput(t *testing.T) {
	f := newFakeEngine()
	c := NewController(f, tile, logx.Nop{})
	c.state = StateWaiting

	clickSquare(c, mustSquare(t, "e2"))
	c.CursorMoved(10, 10)

	if c.Selected() != base.NoSquare || len(f.commits) != 0 {
		t.Fatalf("waiting state reacted: selected=%v commits=%v", c.Selected(), f.commits)
	}
}

func TestModelHighlightsSelection(t *testing.T) {
	f := newFakeEngine()
	e2 := mustSquare(t, "e2")
	e3 := mustSquare(t, "e3")
	e4 := mustSquare(t, "e4")
	f.pieces[e2] = base.Piece{Kind: base.Pawn, Color: base.White}
	f.dests[e2] = []engine.Destination{{To: e3}, {To: e4}}
	c := NewController(f, tile, logx.Nop{})

	m := c.Model()
	if len(m.Highlighted) != 0 {
		t.Fatalf("highlights with no selection: %v", m.Highlighted)
	}
	if len(m.Pieces) != 1 || m.Pieces[0].Square != e2 {
		t.Fatalf("pieces: %v", m.Pieces)
	}

	clickSquare(c, e2)
	m = c.Model()
	if len(m.Highlighted) != 2 {
		t.Fatalf("highlights: %v", m.Highlighted)
	}
	if m.Promoting {
		t.Fatal("promotion overlay while playing")
	}
}

func TestModelPromotionOverlay(t *testing.T) {
	f := newFakeEngine()
	_, to := promoSetup(t, f)
	c := NewController(f, tile, logx.Nop{})
	clickSquare(c, mustSquare(t, "e7"))
	clickSquare(c, to)

	m := c.Model()
	if !m.Promoting {
		t.Fatal("promotion overlay missing")
	}
	if m.HoverValid {
		t.Fatal("picker hover set before any cursor event")
	}

	x, y := cellCenter(Cell{File: 5, Row: 4})
	c.CursorMoved(x, y)
	m = c.Model()
	if !m.HoverValid || m.PickerHover != (Cell{File: 5, Row: 4}) {
		t.Fatalf("picker hover %v valid=%v", m.PickerHover, m.HoverValid)
	}

	// hovering a non-picker cell shows no highlight
	x, y = cellCenter(Cell{File: 0, Row: 0})
	c.CursorMoved(x, y)
	if m = c.Model(); m.HoverValid {
		t.Fatal("non-picker cell highlighted")
	}
}

func TestModelCaching(t *testing.T) {
	f := newFakeEngine()
	c := NewController(f, tile, logx.Nop{})

	if m := c.Model(); len(m.Pieces) != 0 {
		t.Fatalf("pieces on an empty board: %v", m.Pieces)
	}

	// mutate the position without an invalidation signal, the cached
	// frame stays stale
	e2 := mustSquare(t, "e2")
	f.pieces[e2] = base.Piece{Kind: base.Pawn, Color: base.White}
	f.dests[e2] = []engine.Destination{{To: mustSquare(t, "e3")}}
	if m := c.Model(); len(m.Pieces) != 0 {
		t.Fatal("model rebuilt without a state change")
	}

	// any pointer event invalidates and the model catches up
	clickSquare(c, e2)
	m := c.Model()
	if len(m.Pieces) != 1 || len(m.Highlighted) != 1 {
		t.Fatalf("model stale after click: %+v", m)
	}
}

func TestLightSquareParity(t *testing.T) {
	if !LightSquare(0, 0) {
		t.Fatal("(0,0) should be light")
	}
	if LightSquare(1, 0) {
		t.Fatal("(1,0) should be dark")
	}
	if !LightSquare(1, 1) {
		t.Fatal("(1,1) should be light")
	}
}

func TestPickerCells(t *testing.T) {
	for i, kind := range PickerKinds {
		cell := PickerCell(i)
		if !isPickerCell(cell) {
			t.Fatalf("picker cell %d = %v rejected", i, cell)
		}
		if got := pickerKindAt(cell); got != kind {
			t.Fatalf("picker cell %v: kind %v, want %v", cell, got, kind)
		}
	}
	for _, c := range []Cell{{1, 4}, {6, 4}, {2, 3}, {5, 5}, {0, 0}} {
		if isPickerCell(c) {
			t.Fatalf("cell %v accepted as picker cell", c)
		}
	}
}
