package raster

import (
	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Offscreen is a host with no real window: it tracks the geometry the popup
// asks for and renders frames into a Canvas on demand.
type Offscreen struct {
	Fonts  *Fonts
	Screen optionmenu.Rect

	origin optionmenu.Point
	size   optionmenu.Size
	shown  bool
	dirty  bool

	focusOut  internal.Handlers[struct{}]
	unrealize internal.Handlers[struct{}]
}

// NewOffscreen returns a hidden offscreen window on a monitor of the given
// work area.
func NewOffscreen(fonts *Fonts, screen optionmenu.Rect) *Offscreen {
	return &Offscreen{Fonts: fonts, Screen: screen}
}

// Host returns the collaborators to pass to optionmenu.New.
func (o *Offscreen) Host() optionmenu.Host {
	return optionmenu.Host{Window: o, Display: o, Text: o.Fonts}
}

func (o *Offscreen) Move(x, y int32)   { o.origin = optionmenu.Point{X: x, Y: y} }
func (o *Offscreen) Resize(w, h int32) { o.size = optionmenu.Size{W: w, H: h} }
func (o *Offscreen) Show()             { o.shown = true }
func (o *Offscreen) Hide()             { o.shown = false }
func (o *Offscreen) GrabFocus()        {}
func (o *Offscreen) QueueRedraw()      { o.dirty = true }

func (o *Offscreen) OnFocusOut(fn func()) func() {
	return o.focusOut.Add(func(struct{}) { fn() })
}

func (o *Offscreen) OnUnrealize(fn func()) func() {
	return o.unrealize.Add(func(struct{}) { fn() })
}

func (o *Offscreen) UsableBounds(optionmenu.Point) optionmenu.Rect {
	return o.Screen
}

// Bounds returns where the window was last placed, in screen coordinates.
func (o *Offscreen) Bounds() optionmenu.Rect {
	return optionmenu.Rect{X: o.origin.X, Y: o.origin.Y, W: o.size.W, H: o.size.H}
}

func (o *Offscreen) Shown() bool { return o.shown }

// LoseFocus simulates the window manager taking focus away.
func (o *Offscreen) LoseFocus() { o.focusOut.Fire(struct{}{}) }

// Unrealize simulates the window being torn down underneath the popup.
func (o *Offscreen) Unrealize() { o.unrealize.Fire(struct{}{}) }

// Render paints p into a fresh canvas the size of the window. It returns nil
// when the window is hidden.
func (o *Offscreen) Render(p *optionmenu.Popup) *Canvas {
	if !o.shown || o.size.W <= 0 || o.size.H <= 0 {
		return nil
	}
	c := NewCanvas(int(o.size.W), int(o.size.H), o.Fonts)
	p.Paint(c)
	o.dirty = false
	return c
}

// NeedsRedraw reports whether the popup queued a redraw since the last Render.
func (o *Offscreen) NeedsRedraw() bool { return o.dirty }
