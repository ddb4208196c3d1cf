package optionmenu

import (
	"image/color"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

// Point is a pixel position. Whether it is screen or window-local depends on
// where it is used.
type Point struct {
	X, Y int32
}

// Size is a pixel extent.
type Size struct {
	W, H int32
}

// Rect is a pixel rectangle; the right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int32
}

func (r Rect) Right() int32  { return r.X + r.W }
func (r Rect) Bottom() int32 { return r.Y + r.H }

// Contains reports whether p lies in [X, X+W) x [Y, Y+H).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ButtonEvent is a pointer button press or release delivered to the popup or
// to the anchor window.
type ButtonEvent struct {
	Button constants.MouseButton
	Local  Point // relative to the window that received the event
	Root   Point // screen coordinates
}

// ScrollEvent is a wheel or touchpad scroll.
type ScrollEvent struct {
	Direction constants.ScrollDirection
	DeltaY    float64 // only for ScrollSmooth; positive scrolls toward the end of the list
}

// Window is the popup's own top-level surface. Implementations are expected
// to be transient-for the anchor window and undecorated.
type Window interface {
	Move(x, y int32)
	Resize(w, h int32)
	Show()
	Hide()
	GrabFocus()
	// QueueRedraw asks the host to call Popup.Paint on its next frame.
	QueueRedraw()
	// OnFocusOut and OnUnrealize register handlers and return a function
	// that removes them.
	OnFocusOut(fn func()) (unsubscribe func())
	OnUnrealize(fn func()) (unsubscribe func())
}

// AnchorWindow is the window that owns the <select> control.
type AnchorWindow interface {
	OnButtonPress(fn func(ButtonEvent)) (unsubscribe func())
}

// DisplayGeometry answers which part of the screen the popup may occupy.
type DisplayGeometry interface {
	// UsableBounds returns the rectangle of the monitor under p, in screen
	// coordinates. Hosts fall back to the primary monitor when p is off-screen.
	UsableBounds(p Point) Rect
}

// TextMeasurer returns label widths at the popup's fixed font and size.
type TextMeasurer interface {
	MeasureText(text string, bold bool) int32
}

// TextStyle selects the face and color of a text run.
type TextStyle struct {
	Color color.NRGBA
	Bold  bool
}

// Surface is the immediate-mode drawing target handed to Popup.Paint.
// All coordinates are popup-local.
type Surface interface {
	FillRoundedRect(r Rect, radius float64, c color.NRGBA)
	StrokeRoundedRect(r Rect, radius, width float64, c color.NRGBA)
	FillRect(r Rect, c color.NRGBA)
	FillTriangle(a, b, c Point, col color.NRGBA)
	// DrawText draws text starting at bounds.X, vertically centered in bounds
	// and clipped to it.
	DrawText(text string, bounds Rect, style TextStyle)
	SetClip(r Rect)
	ResetClip()
}

// Host bundles the collaborators a Popup needs. A single toolkit adapter
// usually implements all of them.
type Host struct {
	Window  Window
	Anchor  AnchorWindow // optional
	Display DisplayGeometry
	Text    TextMeasurer
}
