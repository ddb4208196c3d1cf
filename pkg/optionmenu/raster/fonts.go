package raster

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the two faces the popup uses and measures text with them.
// It satisfies optionmenu.TextMeasurer.
type Fonts struct {
	Regular font.Face
	Bold    font.Face
}

// LoadFonts opens the given TTF/OTF files at size points. Empty paths fall
// back to the embedded Go fonts.
func LoadFonts(size float64, regularPath, boldPath string) (*Fonts, error) {
	regular, err := loadFace(regularPath, goregular.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("regular face: %w", err)
	}

	bold, err := loadFace(boldPath, gobold.TTF, size)
	if err != nil {
		regular.Close()
		return nil, fmt.Errorf("bold face: %w", err)
	}

	return &Fonts{Regular: regular, Bold: bold}, nil
}

func loadFace(path string, fallback []byte, size float64) (font.Face, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (f *Fonts) face(bold bool) font.Face {
	if bold {
		return f.Bold
	}
	return f.Regular
}

// MeasureText returns the advance width of text in whole pixels.
func (f *Fonts) MeasureText(text string, bold bool) int32 {
	return int32(font.MeasureString(f.face(bold), text).Ceil())
}

func (f *Fonts) Close() {
	f.Regular.Close()
	f.Bold.Close()
}
