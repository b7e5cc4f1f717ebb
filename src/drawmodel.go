package src

import "visualchess/src/base"

// SquarePiece pairs an occupied square with its piece for sprite lookup.
type SquarePiece struct {
	Square base.Square
	Piece  base.Piece
}

// DrawModel is the fully resolved description of one frame. The
// renderer projects it without any decision logic; base checkerboard
// colors come from (file+row) parity and need no state.
type DrawModel struct {
	// legal destinations of the current selection, translucent overlay
	Highlighted []base.Square

	// every occupied square
	Pieces []SquarePiece

	// promotion overlay: full-board dim, optional picker-cell
	// highlight, 4 piece icons at the fixed picker cells
	Promoting   bool
	PickerHover Cell
	HoverValid  bool
}

// LightSquare reports the checkerboard parity for a grid cell.
func LightSquare(file, row int) bool {
	return (file+row)%2 == 0
}

// Model returns the draw model for the current frame. It is rebuilt
// only after a state mutation; a stale model can at worst paint an old
// frame, every decision path queries the engine directly.
func (c *Controller) Model() *DrawModel {
	if c.dirty {
		c.rebuildModel()
		c.dirty = false
	}
	return &c.model
}

func (c *Controller) rebuildModel() {
	m := &c.model
	m.Highlighted = m.Highlighted[:0]
	m.Pieces = m.Pieces[:0]

	if c.selected.Valid() {
		for _, d := range c.eng.LegalDestinations(c.selected) {
			m.Highlighted = append(m.Highlighted, d.To)
		}
	}

	for sq := base.Square(0); sq < 64; sq++ {
		if p, ok := c.eng.PieceAt(sq); ok {
			m.Pieces = append(m.Pieces, SquarePiece{Square: sq, Piece: p})
		}
	}

	m.Promoting = c.state == StatePromoting
	m.HoverValid = false
	if m.Promoting && c.hoverValid && isPickerCell(c.hovered) {
		m.PickerHover = c.hovered
		m.HoverValid = true
	}
}
