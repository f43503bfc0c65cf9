package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// stampFootnote draws a small grey note near the bottom-left corner of img.
func stampFootnote(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.RGBA{R: 110, G: 110, B: 110, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 8), Y: fixed.I(b.Max.Y - 4)},
	}
	// Clear a strip behind the text so axis ticks do not bleed through.
	tw := dr.MeasureString(text).Ceil()
	strip := image.Rect(b.Min.X+4, b.Max.Y-4-face.Metrics().Ascent.Ceil()-2, b.Min.X+12+tw, b.Max.Y)
	draw.Draw(rgba, strip, image.NewUniform(color.White), image.Point{}, draw.Src)
	dr.DrawString(text)
	return rgba
}
