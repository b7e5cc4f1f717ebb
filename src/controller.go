package src

import (
	"fmt"

	"visualchess/src/base"
	"visualchess/src/engine"
	"visualchess/src/logx"
)

type InteractionState uint8

const (
	StatePlaying InteractionState = iota
	StateWaiting // reserved, nothing transitions into it yet
	StatePromoting
)

func (s InteractionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWaiting:
		return "waiting"
	case StatePromoting:
		return "promoting"
	default:
		return "invalid"
	}
}

// Cell is a screen grid coordinate, row 0 at the top.
type Cell struct {
	File int
	Row  int
}

// promotion picker: row 4, files 2..5
const (
	PickerRow       = 4
	PickerFirstFile = 2
	PickerLastFile  = 5
)

// PickerKinds lists the promotion choices in ascending file order.
var PickerKinds = [4]base.Kind{base.Rook, base.Knight, base.Bishop, base.Queen}

// PickerCell returns the grid cell of the i-th promotion choice.
func PickerCell(i int) Cell {
	return Cell{File: PickerFirstFile + i, Row: PickerRow}
}

func isPickerCell(c Cell) bool {
	return c.Row == PickerRow && c.File >= PickerFirstFile && c.File <= PickerLastFile
}

func pickerKindAt(c Cell) base.Kind {
	switch c.File {
	case 2:
		return base.Rook
	case 3:
		return base.Knight
	case 4:
		return base.Bishop
	case 5:
		return base.Queen
	default:
		// isPickerCell guards every caller
		panic(fmt.Sprintf("cell (%d,%d) is not a picker cell", c.File, c.Row))
	}
}

// Controller owns the interaction state: selection, hover and the
// pending promotion. It consumes board-relative pointer events and
// keeps a cached draw model for the renderer. Single writer, one
// event at a time.
type Controller struct {
	eng    engine.Engine
	logger logx.Logger
	tile   float64

	state       InteractionState
	selected    base.Square // NoSquare when nothing is selected
	promoSquare base.Square // destination awaiting the promotion choice
	hovered     Cell
	hoverValid  bool // only meaningful while StatePromoting

	dirty bool
	model DrawModel
}

func NewController(eng engine.Engine, tile float64, logger logx.Logger) *Controller {
	return &Controller{
		eng:         eng,
		logger:      logger,
		tile:        tile,
		state:       StatePlaying,
		selected:    base.NoSquare,
		promoSquare: base.NoSquare,
		dirty:       true,
	}
}

func (c *Controller) State() InteractionState { return c.state }
func (c *Controller) Selected() base.Square   { return c.selected }
func (c *Controller) Promoting() base.Square  { return c.promoSquare }
func (c *Controller) Engine() engine.Engine   { return c.eng }
func (c *Controller) TileSize() float64       { return c.tile }

// HoveredCell reports the tracked cell; ok is false outside the board
// or outside the Promoting state.
func (c *Controller) HoveredCell() (Cell, bool) {
	if c.state != StatePromoting {
		return Cell{}, false
	}
	return c.hovered, c.hoverValid
}

// Click handles a left-button press at a board-relative pixel.
func (c *Controller) Click(x, y float64) {
	c.invalidate()

	switch c.state {
	case StatePlaying:
		c.clickPlaying(x, y)
	case StateWaiting:
		// paused, pointer input ignored
	case StatePromoting:
		c.clickPromoting(x, y)
	}
}

func (c *Controller) clickPlaying(x, y float64) {
	target := base.PixelToSquare(x, y, c.tile)

	if c.selected.Valid() && target.Valid() {
		// a pawn reaching the far rank must pause for the piece choice
		if p, ok := c.eng.PieceAt(c.selected); ok && p.Kind == base.Pawn {
			for _, d := range c.eng.LegalDestinations(c.selected) {
				if d.To == target && d.Promotes {
					c.logger.Debugf("promotion pending on %v", target)
					c.promoSquare = target
					c.state = StatePromoting
					// selection stays put for the eventual commit
					return
				}
			}
		}
		// failed commits are silent no-ops
		c.eng.TryCommit(c.selected, target, base.NoKind)
	}

	// the clicked square always becomes the new selection candidate,
	// even right after serving as a move destination
	c.selected = target
}

func (c *Controller) clickPromoting(x, y float64) {
	if !c.hoverValid || !isPickerCell(c.hovered) {
		return
	}
	kind := pickerKindAt(c.hovered)
	c.eng.TryCommit(c.selected, c.promoSquare, kind)
	c.state = StatePlaying
	c.selected = base.PixelToSquare(x, y, c.tile)
	c.promoSquare = base.NoSquare
}

// CursorMoved tracks the hovered cell. Pointer motion only matters to
// the promotion picker, every other state ignores it.
func (c *Controller) CursorMoved(x, y float64) {
	if c.state != StatePromoting {
		return
	}
	c.invalidate()
	file, row, ok := base.PixelToCell(x, y, c.tile)
	if !ok {
		c.hoverValid = false
		return
	}
	c.hovered = Cell{File: file, Row: row}
	c.hoverValid = true
}

// Reset returns to the initial position and the Playing state.
func (c *Controller) Reset() {
	c.invalidate()
	c.eng.Reset()
	c.state = StatePlaying
	c.selected = base.NoSquare
	c.promoSquare = base.NoSquare
	c.hoverValid = false
}

// LoadFEN replaces the position, leaving everything untouched on error.
func (c *Controller) LoadFEN(fen string) error {
	if err := c.eng.LoadFEN(fen); err != nil {
		return err
	}
	c.invalidate()
	c.state = StatePlaying
	c.selected = base.NoSquare
	c.promoSquare = base.NoSquare
	c.hoverValid = false
	return nil
}

func (c *Controller) invalidate() {
	c.dirty = true
}
