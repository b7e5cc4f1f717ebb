package gctx

import (
	"visualchess/src"
	"visualchess/src/logx"
	"visualchess/ui/gui/gbase"
	"visualchess/ui/gui/gbase/gconf"
	"visualchess/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Controller   *src.Controller
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(c *src.Controller, a *ghelper.GUIAssetsWorker, cfg *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Controller:   c,
		AssetsWorker: a,
		Config:       cfg,
		Theme:        gbase.DefaultPalette,
		Logx:         l,
	}
}
