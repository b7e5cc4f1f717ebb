package ghelper

import (
	"path/filepath"

	"visualchess/src/base"
	"visualchess/ui/gui/ghelper/gfont"
	"visualchess/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[base.Piece]*ebiten.Image
	promoImages map[base.Kind]*ebiten.Image
	fonts       *gfont.Fonts
}

func NewGUIAssetsWorker(rootDirAssets string) (*GUIAssetsWorker, error) {
	imgs, err := gimages.LoadPieceImages(rootDirAssets)
	if err != nil {
		return nil, err
	}
	promo, err := gimages.LoadPromoImages(rootDirAssets)
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts(filepath.Join(rootDirAssets, "fonts"))
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{pieceImages: imgs, promoImages: promo, fonts: fonts}, nil
}

func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}

// PromoIcon returns the neutral picker icon for a promotion choice.
func (aw *GUIAssetsWorker) PromoIcon(k base.Kind) *ebiten.Image {
	return aw.promoImages[k]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
