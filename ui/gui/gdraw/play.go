package gdraw

import (
	"fmt"
	"strings"
	"time"

	"visualchess/src"
	"visualchess/src/base"
	"visualchess/ui/gui/gbase"
	"visualchess/ui/gui/gctx"
	"visualchess/ui/gui/ghelper"
	"visualchess/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPlayDrawer projects the controller's draw model onto the screen
// and feeds pointer events back into it.
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int // top-left pixel
	boardSize      int // pixel size (tile*8)
	tile           int

	// pre-rendered tiles
	lightTile *ebiten.Image
	darkTile  *ebiten.Image

	// buttons
	buttons    []*ghelper.Button
	idxNewGame int
	idxLoadFEN int
	idxQuit    int

	msg      *ghelper.MessageBox
	lastTick time.Time

	prevMouseDown bool
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		tile:     ctx.Config.TileSize,
		lastTick: time.Now(),
	}
	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	pd.makeTiles(ctx)
	pd.msg = &ghelper.MessageBox{}
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	pd.boardSize = pd.tile * 8
	pd.boardX = 40
	pd.boardY = (ctx.Config.WindowH - pd.boardSize) / 2
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, OffsetY: 0, TargetOffsetY: 0, AnimSpeed: 10.0,
		}
		idx := len(pd.buttons)
		pd.buttons = append(pd.buttons, b)
		return idx
	}

	x := pd.boardX + pd.boardSize + 40
	y := pd.boardY + pd.boardSize - 3*48 - 2*14
	w, h := 160, 48
	pd.idxNewGame = addBtn("New game", x, y, w, h)
	y += h + 14
	pd.idxLoadFEN = addBtn("Load FEN", x, y, w, h)
	y += h + 14
	pd.idxQuit = addBtn("Quit", x, y, w, h)
}

func (pd *GUIPlayDrawer) makeTiles(ctx *gctx.GUIGameContext) {
	pd.lightTile = ebiten.NewImage(pd.tile, pd.tile)
	pd.lightTile.Fill(ctx.Theme.LightSquare)
	pd.darkTile = ebiten.NewImage(pd.tile, pd.tile)
	pd.darkTile.Fill(ctx.Theme.DarkSquare)
}

// Update
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	// if message box open -> handle clicks on it
	if pd.msg.Open {
		if justPressed {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, pd.msg.Text)
			pd.msg.CollapseMessageInRect(ctx.Config.WindowW, ctx.Config.WindowH, bounds.Dx(), bounds.Dy())
		}
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	// buttons handling
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased && b.Pressed)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case pd.idxNewGame:
				ctx.Controller.Reset()
			case pd.idxLoadFEN:
				pd.loadPositionFromFile(ctx)
			case pd.idxQuit:
				return SceneNotChanged, gbase.ErrExit
			}
			return SceneNotChanged, nil
		}
	}

	// board interaction: cursor position is delivered to the controller
	// before the press for the same frame, the promotion picker depends
	// on that order
	bx := float64(mx - pd.boardX)
	by := float64(my - pd.boardY)
	ctx.Controller.CursorMoved(bx, by)
	if justPressed {
		ctx.Controller.Click(bx, by)
	}

	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) loadPositionFromFile(ctx *gctx.GUIGameContext) {
	res, err := gdialog.OpenFile("Open FEN position")
	if err != nil {
		// dialog closed
		return
	}
	fen := strings.TrimSpace(string(res.Data))
	if err := ctx.Controller.LoadFEN(fen); err != nil {
		ctx.Logx.Errorf("load position %v: %v", res.Name, err)
		pd.msg.ShowMessage("Not a valid FEN position", nil)
	}
}

// Draw
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	// board border
	borderImg := ghelper.RenderRoundedRect(pd.boardSize+8, pd.boardSize+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardX-4), float64(pd.boardY-4))
	screen.DrawImage(borderImg, op)

	model := ctx.Controller.Model()

	// checkerboard
	for row := 0; row < 8; row++ {
		for file := 0; file < 8; file++ {
			img := pd.darkTile
			if src.LightSquare(file, row) {
				img = pd.lightTile
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(pd.cellOrigin(file, row))
			screen.DrawImage(img, op)
		}
	}

	// legal destinations of the selection
	for _, sq := range model.Highlighted {
		file, row := base.SquareToCoord(sq)
		x, y := pd.cellOrigin(file, row)
		ghelper.DrawRect(screen, x, y, float64(pd.tile), float64(pd.tile), ctx.Theme.MoveTint)
	}

	// selection outline
	if sel := ctx.Controller.Selected(); sel.Valid() && !model.Promoting {
		file, row := base.SquareToCoord(sel)
		x, y := pd.cellOrigin(file, row)
		ghelper.DrawRectStroke(screen, x, y, float64(pd.tile), float64(pd.tile), 3, ctx.Theme.Accent)
	}

	// pieces
	for _, sp := range model.Pieces {
		img := ctx.AssetsWorker.Piece(sp.Piece)
		if img == nil {
			continue
		}
		file, row := base.SquareToCoord(sp.Square)
		x, y := pd.cellOrigin(file, row)
		iw := img.Bounds().Dx()
		scale := float64(pd.tile) / float64(iw)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	// promotion picker overlay
	if model.Promoting {
		ghelper.DrawRect(screen, float64(pd.boardX), float64(pd.boardY),
			float64(pd.boardSize), float64(pd.boardSize), ctx.Theme.PromoDim)

		if model.HoverValid {
			x, y := pd.cellOrigin(model.PickerHover.File, model.PickerHover.Row)
			ghelper.DrawRect(screen, x, y, float64(pd.tile), float64(pd.tile), ctx.Theme.PromoHover)
		}

		for i, kind := range src.PickerKinds {
			img := ctx.AssetsWorker.PromoIcon(kind)
			if img == nil {
				continue
			}
			cell := src.PickerCell(i)
			x, y := pd.cellOrigin(cell.File, cell.Row)
			iw := img.Bounds().Dx()
			scale := float64(pd.tile) / float64(iw)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, y)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
	}

	pd.drawInfoPanel(ctx, screen)

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if pd.msg.Open || pd.msg.Animating {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (pd *GUIPlayDrawer) cellOrigin(file, row int) (float64, float64) {
	return float64(pd.boardX + file*pd.tile), float64(pd.boardY + row*pd.tile)
}

// side panel: position facts straight from the engine boundary
func (pd *GUIPlayDrawer) drawInfoPanel(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	eng := ctx.Controller.Engine()
	wk, wq := eng.CastleRights(base.White)
	bk, bq := eng.CastleRights(base.Black)

	lines := []string{
		fmt.Sprintf("selected: %v", ctx.Controller.Selected()),
		fmt.Sprintf("status: %v", eng.Status()),
		fmt.Sprintf("to play: %v", eng.SideToMove()),
		fmt.Sprintf("white castle: O-O %v, O-O-O %v", wk, wq),
		fmt.Sprintf("black castle: O-O %v, O-O-O %v", bk, bq),
		fmt.Sprintf("state: %v", ctx.Controller.State()),
	}

	px := pd.boardX + pd.boardSize + 40
	py := pd.boardY
	w, h := 280, 28*len(lines)+24

	panelImg := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(panelImg, op)

	for i, line := range lines {
		text.Draw(screen, line, ctx.AssetsWorker.Fonts().Normal, px+16, py+32+i*28, ctx.Theme.PanelText)
	}
}
