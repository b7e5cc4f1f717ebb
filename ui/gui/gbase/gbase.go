package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW  int = 1280
	WindowH  int = 720
	TileSize int = 64
)

// ---- Style ----

type Palette struct {
	Bg           color.RGBA
	LightSquare  color.RGBA
	DarkSquare   color.RGBA
	MoveTint     color.RGBA // translucent blue over legal destinations
	PromoDim     color.RGBA // full-board overlay while promoting
	PromoHover   color.RGBA // picker cell under the cursor
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	PanelText    color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

var DefaultPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	LightSquare:  color.RGBA{250, 207, 207, 0xff},
	DarkSquare:   color.RGBA{154, 122, 161, 0xff},
	MoveTint:     color.RGBA{0x00, 0x00, 0xff, 0x80},
	PromoDim:     color.RGBA{0x00, 0x00, 0x00, 0xe6},
	PromoHover:   color.RGBA{0x00, 0xff, 0x00, 0x80},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	PanelText:    color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}
