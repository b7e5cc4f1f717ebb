package gimages

import (
	"path/filepath"

	"visualchess/src/base"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var kinds = []base.Kind{base.Pawn, base.Knight, base.Bishop, base.Rook, base.Queen, base.King}

// LoadPieceImages reads the board sprites from the monochrome tree:
// <workdir>/monochrome/<color>/<piece>.png
func LoadPieceImages(workdir string) (map[base.Piece]*ebiten.Image, error) {
	pieceImages := make(map[base.Piece]*ebiten.Image)
	for _, c := range []base.Color{base.White, base.Black} {
		for _, k := range kinds {
			file := filepath.Join(workdir, "monochrome", c.String(), k.String()+".png")
			img, _, err := ebitenutil.NewImageFromFile(file)
			if err != nil {
				return nil, err
			}
			pieceImages[base.Piece{Kind: k, Color: c}] = img
		}
	}
	return pieceImages, nil
}

// LoadPromoImages reads the 4 promotion picker icons from the color
// tree: <workdir>/color/neutral/<piece>.png
func LoadPromoImages(workdir string) (map[base.Kind]*ebiten.Image, error) {
	promoImages := make(map[base.Kind]*ebiten.Image)
	for _, k := range []base.Kind{base.Rook, base.Knight, base.Bishop, base.Queen} {
		file := filepath.Join(workdir, "color", "neutral", k.String()+".png")
		img, _, err := ebitenutil.NewImageFromFile(file)
		if err != nil {
			return nil, err
		}
		promoImages[k] = img
	}
	return promoImages, nil
}
