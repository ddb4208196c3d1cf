// Package raster draws the popup into an in-memory RGBA image. It backs the
// snapshot command and the pixel-level tests, and can serve any host that
// composites its own buffers.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
)

// Canvas implements optionmenu.Surface on an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	clip  image.Rectangle
	fonts *Fonts
}

// NewCanvas creates a transparent canvas of w x h pixels.
func NewCanvas(w, h int, fonts *Fonts) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Canvas{img: img, clip: img.Bounds(), fonts: fonts}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col, ignoring the clip.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// WritePNG encodes the canvas.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) SetClip(r optionmenu.Rect) {
	c.clip = toRect(r).Intersect(c.img.Bounds())
}

func (c *Canvas) ResetClip() {
	c.clip = c.img.Bounds()
}

func (c *Canvas) FillRect(r optionmenu.Rect, col color.NRGBA) {
	area := toRect(r).Intersect(c.clip)
	if area.Empty() {
		return
	}
	draw.Draw(c.img, area, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) FillRoundedRect(r optionmenu.Rect, radius float64, col color.NRGBA) {
	filler := c.filler()
	filler.SetColor(col)
	rasterx.AddRoundRect(
		float64(r.X), float64(r.Y), float64(r.Right()), float64(r.Bottom()),
		radius, radius, 0, rasterx.RoundGap, filler)
	filler.Draw()
}

func (c *Canvas) StrokeRoundedRect(r optionmenu.Rect, radius, width float64, col color.NRGBA) {
	w, h := c.size()
	stroker := rasterx.NewStroker(w, h, c.scanner())
	stroker.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.ButtCap, nil, rasterx.RoundGap, rasterx.ArcClip)
	stroker.SetColor(col)

	// Inset by half the line so the stroke stays inside r.
	half := width / 2
	rasterx.AddRoundRect(
		float64(r.X)+half, float64(r.Y)+half, float64(r.Right())-half, float64(r.Bottom())-half,
		radius, radius, 0, rasterx.RoundGap, stroker)
	stroker.Draw()
}

func (c *Canvas) FillTriangle(a, b, p optionmenu.Point, col color.NRGBA) {
	filler := c.filler()
	filler.SetColor(col)
	filler.Start(toFixed(a))
	filler.Line(toFixed(b))
	filler.Line(toFixed(p))
	filler.Stop(true)
	filler.Draw()
}

func (c *Canvas) DrawText(text string, bounds optionmenu.Rect, style optionmenu.TextStyle) {
	if text == "" || c.fonts == nil {
		return
	}

	area := toRect(bounds).Intersect(c.clip)
	if area.Empty() {
		return
	}

	face := c.fonts.face(style.Bold)
	m := face.Metrics()
	textHeight := m.Ascent + m.Descent
	baseline := fixed.I(int(bounds.Y)) + (fixed.I(int(bounds.H))-textHeight)/2 + m.Ascent

	d := font.Drawer{
		Dst:  c.img.SubImage(area).(*image.RGBA),
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(bounds.X)), Y: baseline},
	}
	d.DrawString(text)
}

func (c *Canvas) size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) scanner() *rasterx.ScannerGV {
	w, h := c.size()
	scanner := rasterx.NewScannerGV(w, h, c.img, c.img.Bounds())
	scanner.SetClip(c.clip)
	return scanner
}

func (c *Canvas) filler() *rasterx.Filler {
	w, h := c.size()
	return rasterx.NewFiller(w, h, c.scanner())
}

func toRect(r optionmenu.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

func toFixed(p optionmenu.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(int(p.X)), Y: fixed.I(int(p.Y))}
}
