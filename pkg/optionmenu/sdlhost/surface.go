package sdlhost

import (
	"image/color"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

func toSDLColor(c color.NRGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toSDLRect(r optionmenu.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (w *PopupWindow) setColor(c color.NRGBA) {
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (w *PopupWindow) SetClip(r optionmenu.Rect) {
	rect := toSDLRect(r)
	w.clip = &rect
	w.Renderer.SetClipRect(w.clip)
}

func (w *PopupWindow) ResetClip() {
	w.clip = nil
	w.Renderer.SetClipRect(nil)
}

func (w *PopupWindow) FillRect(r optionmenu.Rect, c color.NRGBA) {
	rect := toSDLRect(r)
	w.setColor(c)
	w.Renderer.FillRect(&rect)
}

// cornerInset returns how far the edge of a rounded corner is pulled in on
// scanline row (0-based from the top or bottom edge).
func cornerInset(row int32, radius float64) int32 {
	if radius <= 0 || float64(row) >= radius {
		return 0
	}
	dy := radius - float64(row) - 0.5
	return int32(math.Round(radius - math.Sqrt(radius*radius-dy*dy)))
}

// roundedSpans returns one horizontal span per scanline of r.
func roundedSpans(r optionmenu.Rect, radius float64) []sdl.Rect {
	radius = math.Min(radius, float64(internal.Min32(r.W, r.H))/2)

	spans := make([]sdl.Rect, 0, r.H)
	for row := int32(0); row < r.H; row++ {
		edge := internal.Min32(row, r.H-1-row)
		inset := cornerInset(edge, radius)
		spans = append(spans, sdl.Rect{X: r.X + inset, Y: r.Y + row, W: r.W - 2*inset, H: 1})
	}
	return spans
}

func (w *PopupWindow) FillRoundedRect(r optionmenu.Rect, radius float64, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	w.setColor(c)
	w.Renderer.FillRects(roundedSpans(r, radius))
}

func (w *PopupWindow) StrokeRoundedRect(r optionmenu.Rect, radius, width float64, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	bw := internal.Max32(1, int32(math.Round(width)))
	outer := roundedSpans(r, radius)
	inner := optionmenu.Rect{X: r.X + bw, Y: r.Y + bw, W: r.W - 2*bw, H: r.H - 2*bw}

	var innerSpans []sdl.Rect
	if inner.W > 0 && inner.H > 0 {
		innerSpans = roundedSpans(inner, math.Max(0, radius-float64(bw)))
	}

	rects := make([]sdl.Rect, 0, 2*len(outer))
	for i, o := range outer {
		j := int32(i) - bw
		if j < 0 || int(j) >= len(innerSpans) {
			rects = append(rects, o)
			continue
		}
		in := innerSpans[j]
		if left := in.X - o.X; left > 0 {
			rects = append(rects, sdl.Rect{X: o.X, Y: o.Y, W: left, H: 1})
		}
		if right := (o.X + o.W) - (in.X + in.W); right > 0 {
			rects = append(rects, sdl.Rect{X: in.X + in.W, Y: o.Y, W: right, H: 1})
		}
	}

	w.setColor(c)
	w.Renderer.FillRects(rects)
}

func (w *PopupWindow) FillTriangle(a, b, p optionmenu.Point, col color.NRGBA) {
	sc := toSDLColor(col)
	vertex := func(pt optionmenu.Point) sdl.Vertex {
		return sdl.Vertex{Position: sdl.FPoint{X: float32(pt.X), Y: float32(pt.Y)}, Color: sc}
	}
	vertices := []sdl.Vertex{vertex(a), vertex(b), vertex(p)}
	if err := w.Renderer.RenderGeometry(nil, vertices, nil); err != nil {
		internal.GetInternalLogger().Debug("Failed to render triangle", "error", err)
	}
}

func (w *PopupWindow) DrawText(text string, bounds optionmenu.Rect, style optionmenu.TextStyle) {
	if text == "" || bounds.W <= 0 || bounds.H <= 0 {
		return
	}

	t, ok := w.textTexture(text, style)
	if !ok {
		return
	}

	target := toSDLRect(bounds)
	if w.clip != nil {
		clipped, ok := target.Intersect(w.clip)
		if !ok {
			return
		}
		target = clipped
	}

	w.Renderer.SetClipRect(&target)
	dst := sdl.Rect{X: bounds.X, Y: bounds.Y + (bounds.H-t.h)/2, W: t.w, H: t.h}
	w.Renderer.Copy(t.texture, nil, &dst)
	w.Renderer.SetClipRect(w.clip)
}

func (w *PopupWindow) textTexture(text string, style optionmenu.TextStyle) (textTexture, bool) {
	key := textKey{text: text, bold: style.Bold, color: style.Color}
	if t, ok := w.cache.get(key); ok {
		return t, true
	}

	font := w.regular
	if style.Bold {
		font = w.bold
	}

	surface, err := font.RenderUTF8Blended(text, toSDLColor(style.Color))
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return textTexture{}, false
	}
	defer surface.Free()

	texture, err := w.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to create text texture", "error", err)
		return textTexture{}, false
	}

	t := textTexture{texture: texture, w: surface.W, h: surface.H}
	w.cache.set(key, t)
	return t, true
}
