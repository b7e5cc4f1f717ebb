package gfont

import (
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

func LoadFonts(workdir string) (*Fonts, error) {
	data, err := os.ReadFile(filepath.Join(workdir, "NotoSansDisplay-Regular.ttf"))
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Normal, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    15,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fonts.Small, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return fonts, nil
}
