package gui

import (
	"errors"

	"visualchess/src"
	"visualchess/src/logx"
	"visualchess/ui/gui/gbase"
	"visualchess/ui/gui/gbase/gconf"
	"visualchess/ui/gui/gctx"
	"visualchess/ui/gui/gdraw"
	"visualchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(c *src.Controller, cfg *gconf.Config, logger logx.Logger) (*GUIProcessing, error) {
	aw, err := ghelper.NewGUIAssetsWorker(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(c, aw, cfg, logger)
	return &GUIProcessing{
		current: gdraw.NewGUIPlayDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("VisualChess")
	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if s := next.ToScene(gp.current, gp.ctx); s != nil {
		gp.current = s
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
