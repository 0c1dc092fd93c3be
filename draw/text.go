package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// TextDPI is the resolution used to scale font sizes to pixels. At 72 DPI one point is one pixel.
const TextDPI = 72

// DefaultFont returns the parsed Go Regular TrueType font.
var DefaultFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// Text draws s in the default font at size points, with the baseline of the first glyph at pt.
//
// It returns the position of the pen after the last glyph.
func Text(dst Image, pt image.Point, size float64, s string, c color.Color) (image.Point, error) {
	f, err := DefaultFont()
	if err != nil {
		return pt, err
	}
	return TextFont(dst, f, pt, size, s, c)
}

// TextFont is like [Text] with an explicit font.
func TextFont(dst Image, f *truetype.Font, pt image.Point, size float64, s string, c color.Color) (image.Point, error) {
	ctx := freetype.NewContext()
	ctx.SetDPI(TextDPI)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	end, err := ctx.DrawString(s, freetype.Pt(pt.X, pt.Y))
	if err != nil {
		return pt, err
	}
	return image.Pt(end.X.Round(), end.Y.Round()), nil
}

// MeasureText returns the advance width and the ascent, in pixels, of s in the default font.
func MeasureText(size float64, s string) (width, ascent int, err error) {
	f, err := DefaultFont()
	if err != nil {
		return 0, 0, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     TextDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	return font.MeasureString(face, s).Round(), face.Metrics().Ascent.Round(), nil
}
