package optionmenu

import (
	"fmt"
	"image/color"
	"unicode/utf8"
)

// fakeWindow records what the popup asks of its window and lets tests
// trigger focus-out and unrealize.
type fakeWindow struct {
	origin  Point
	size    Size
	shown   bool
	focused int
	redraws int
	ops     []string

	focusOut      map[int]func()
	unrealize     map[int]func()
	nextID        int
	unsubscribed  int
	destroyCalled int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{focusOut: map[int]func(){}, unrealize: map[int]func(){}}
}

func (w *fakeWindow) Move(x, y int32) {
	w.origin = Point{X: x, Y: y}
	w.ops = append(w.ops, fmt.Sprintf("move %d,%d", x, y))
}

func (w *fakeWindow) Resize(width, height int32) {
	w.size = Size{W: width, H: height}
	w.ops = append(w.ops, fmt.Sprintf("resize %dx%d", width, height))
}

func (w *fakeWindow) Show() {
	w.shown = true
	w.ops = append(w.ops, "show")
}

func (w *fakeWindow) Hide() {
	w.shown = false
	w.ops = append(w.ops, "hide")
}

func (w *fakeWindow) GrabFocus()   { w.focused++ }
func (w *fakeWindow) QueueRedraw() { w.redraws++ }
func (w *fakeWindow) Destroy()     { w.destroyCalled++ }

func (w *fakeWindow) subscribe(m map[int]func(), fn func()) func() {
	id := w.nextID
	w.nextID++
	m[id] = fn
	return func() {
		w.unsubscribed++
		delete(m, id)
	}
}

func (w *fakeWindow) OnFocusOut(fn func()) func()  { return w.subscribe(w.focusOut, fn) }
func (w *fakeWindow) OnUnrealize(fn func()) func() { return w.subscribe(w.unrealize, fn) }

func (w *fakeWindow) subscriptions() int {
	return len(w.focusOut) + len(w.unrealize)
}

func fire(m map[int]func()) {
	fns := make([]func(), 0, len(m))
	for _, fn := range m {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

func (w *fakeWindow) loseFocus()  { fire(w.focusOut) }
func (w *fakeWindow) unrealized() { fire(w.unrealize) }

type fakeAnchor struct {
	handlers     map[int]func(ButtonEvent)
	nextID       int
	unsubscribed int
}

func newFakeAnchor() *fakeAnchor {
	return &fakeAnchor{handlers: map[int]func(ButtonEvent){}}
}

func (a *fakeAnchor) OnButtonPress(fn func(ButtonEvent)) func() {
	id := a.nextID
	a.nextID++
	a.handlers[id] = fn
	return func() {
		a.unsubscribed++
		delete(a.handlers, id)
	}
}

func (a *fakeAnchor) press(ev ButtonEvent) {
	fns := make([]func(ButtonEvent), 0, len(a.handlers))
	for _, fn := range a.handlers {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(ev)
	}
}

type fakeDisplay struct {
	bounds Rect
}

func (d fakeDisplay) UsableBounds(Point) Rect { return d.bounds }

// fakeText measures 7px per rune, 8px when bold.
type fakeText struct{}

func (fakeText) MeasureText(text string, bold bool) int32 {
	n := int32(utf8.RuneCountInString(text))
	if bold {
		return n * 8
	}
	return n * 7
}

// recordingSurface logs every draw call in order.
type recordingSurface struct {
	calls []string
	texts []drawnText
	fills []filledRect
}

type drawnText struct {
	text   string
	bounds Rect
	style  TextStyle
}

type filledRect struct {
	rect  Rect
	color color.NRGBA
}

func (s *recordingSurface) FillRoundedRect(r Rect, radius float64, c color.NRGBA) {
	s.calls = append(s.calls, "fill_rounded")
}

func (s *recordingSurface) StrokeRoundedRect(r Rect, radius, width float64, c color.NRGBA) {
	s.calls = append(s.calls, "stroke_rounded")
}

func (s *recordingSurface) FillRect(r Rect, c color.NRGBA) {
	s.calls = append(s.calls, "fill_rect")
	s.fills = append(s.fills, filledRect{rect: r, color: c})
}

func (s *recordingSurface) FillTriangle(a, b, c Point, col color.NRGBA) {
	s.calls = append(s.calls, fmt.Sprintf("triangle %d", a.Y))
}

func (s *recordingSurface) DrawText(text string, bounds Rect, style TextStyle) {
	s.calls = append(s.calls, "text "+text)
	s.texts = append(s.texts, drawnText{text: text, bounds: bounds, style: style})
}

func (s *recordingSurface) SetClip(r Rect) {
	s.calls = append(s.calls, fmt.Sprintf("clip %d,%d %dx%d", r.X, r.Y, r.W, r.H))
}

func (s *recordingSurface) ResetClip() {
	s.calls = append(s.calls, "reset_clip")
}

// harness wires a popup to fakes and counts callbacks.
type harness struct {
	popup   *Popup
	window  *fakeWindow
	anchor  *fakeAnchor
	display fakeDisplay

	selected  []int
	dismissed int
}

func newHarness(items []MenuItem) *harness {
	h := &harness{
		window:  newFakeWindow(),
		anchor:  newFakeAnchor(),
		display: fakeDisplay{bounds: Rect{W: 1920, H: 1080}},
	}
	h.popup = New(Host{
		Window:  h.window,
		Anchor:  h.anchor,
		Display: h.display,
		Text:    fakeText{},
	}, Options{})
	h.popup.SetItemSource(items)
	h.popup.SetItemSelectedCallback(func(index int) { h.selected = append(h.selected, index) })
	h.popup.SetDismissedCallback(func() { h.dismissed++ })
	return h
}

func items(labels ...string) []MenuItem {
	out := make([]MenuItem, len(labels))
	for i, l := range labels {
		out[i] = MenuItem{Label: l, Enabled: true}
	}
	return out
}

func numbered(n int) []MenuItem {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Item %d", i)
	}
	return items(labels...)
}

// rowCenter returns the popup-local point in the middle of row index,
// assuming the default metrics and no scrolling.
func rowCenter(list []MenuItem, index int) Point {
	m := DefaultMetrics()
	y := m.VerticalPadding + rowTop(list, m, index) + m.rowHeight(list[index])/2
	return Point{X: 20, Y: y}
}
