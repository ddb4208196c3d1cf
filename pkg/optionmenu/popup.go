// Package optionmenu implements the dropdown popup used to present HTML
// <select> choices outside the web engine's own surface.
//
// The popup is toolkit-agnostic: a host adapter (see the sdlhost package)
// supplies the window, display geometry, text measurement and drawing
// surface, and forwards device events to the Popup's input methods. Every
// method must be called from the thread that owns the host's event loop;
// IsVisible is the only exception.
package optionmenu

import (
	"go.uber.org/atomic"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/platform/adwaita"
)

// fallbackScreen is used when the host cannot report monitor geometry.
var fallbackScreen = Rect{W: 1920, H: 1080}

// Options configures a Popup.
type Options struct {
	Metrics Metrics        // zero fields take DefaultMetrics values
	Theme   internal.Theme // zero value uses adwaita.Light
}

// Popup is the option menu. Create it with New.
type Popup struct {
	host    Host
	metrics Metrics
	theme   internal.Theme

	items     itemModel
	state     PopupState
	visible   *atomic.Bool
	router    *inputRouter
	dismissal *dismissalCoordinator

	onItemSelected func(index int)
	onDismissed    func()

	// cycleDismissed is the dismissed callback armed for the current Show.
	// A commit clears it before tearing down so the teardown stays silent.
	cycleDismissed func()

	requestAnchor   Point
	requestMinWidth int32
}

// New creates a hidden popup bound to host.
func New(host Host, opts Options) *Popup {
	theme := opts.Theme
	if theme == (internal.Theme{}) {
		theme = adwaita.Light()
	}

	p := &Popup{
		host:    host,
		metrics: opts.Metrics.withDefaults(),
		theme:   theme,
		items:   newItemModel(),
		visible: atomic.NewBool(false),
	}
	p.state = PopupState{
		HoveredIndex: constants.NoIndex,
		PressedIndex: constants.NoIndex,
	}

	p.router = &inputRouter{
		items:   &p.items,
		state:   &p.state,
		metrics: &p.metrics,
		actions: p,
	}
	p.dismissal = &dismissalCoordinator{
		window:    host.Window,
		anchor:    host.Anchor,
		onDismiss: p.hide,
	}

	return p
}

// SetItemSource replaces the items. When the popup is already showing it is
// laid out again at the same anchor, keeping hover and scroll where they
// still make sense.
func (p *Popup) SetItemSource(items []MenuItem) {
	p.items.load(items)

	if !p.IsVisible() {
		return
	}

	if p.items.empty() {
		p.hide(DismissProgrammatic)
		return
	}

	p.layout()
	p.place()
	if !p.items.selectable(p.state.HoveredIndex) {
		p.state.HoveredIndex = constants.NoIndex
	}
	if !p.items.selectable(p.state.PressedIndex) {
		p.state.PressedIndex = constants.NoIndex
	}
	p.router.setScroll(p.state.ScrollOffset)
	p.dismissal.arm(p.state.Bounds())
	p.repaint()
}

// SetItemSelectedCallback registers fn to run once per committed selection.
func (p *Popup) SetItemSelectedCallback(fn func(index int)) {
	p.onItemSelected = fn
}

// SetDismissedCallback registers fn to run once per dismissal that is not a
// selection.
func (p *Popup) SetDismissedCallback(fn func()) {
	p.onDismissed = fn
	if p.IsVisible() {
		p.cycleDismissed = fn
	}
}

// IsVisible reports whether the popup is on screen. Safe from any goroutine.
func (p *Popup) IsVisible() bool {
	return p.visible.Load()
}

// State returns a copy of the current presentation state.
func (p *Popup) State() PopupState {
	st := p.state
	st.Visible = p.IsVisible()
	return st
}

// Items returns a copy of the loaded items.
func (p *Popup) Items() []MenuItem {
	out := make([]MenuItem, p.items.len())
	copy(out, p.items.items)
	return out
}

// Show presents the popup with its top-left corner at the screen point
// (anchorX, anchorY), moved as needed to stay on the monitor. minWidth is the
// width of the originating control, or 0. Showing an empty popup does nothing.
func (p *Popup) Show(anchorX, anchorY, minWidth int32) {
	if p.items.empty() {
		return
	}

	// A second Show re-presents without reporting a dismissal in between.
	p.dismissal.disarm()

	p.requestAnchor = Point{X: anchorX, Y: anchorY}
	p.requestMinWidth = minWidth

	p.layout()
	p.router.reset()
	p.cycleDismissed = p.onDismissed

	p.place()
	if w := p.host.Window; w != nil {
		w.Show()
		w.GrabFocus()
	}

	p.state.Visible = true
	p.visible.Store(true)

	if initial := p.items.initialSelected; initial != constants.NoIndex {
		p.router.setHover(initial)
		p.router.scrollIntoView(initial)
	}

	p.dismissal.arm(p.state.Bounds())

	internal.GetInternalLogger().Debug("option menu shown",
		"items", p.items.len(),
		"x", p.state.AnchorX,
		"y", p.state.AnchorY,
		"width", p.state.Width,
		"height", p.state.Height,
		"initial", p.items.initialSelected)

	p.repaint()
}

// place moves the host window onto the laid out rectangle.
func (p *Popup) place() {
	if w := p.host.Window; w != nil {
		w.Resize(p.state.Width, p.state.Height)
		w.Move(p.state.AnchorX, p.state.AnchorY)
	}
}

// layout sizes and positions the popup for the last requested anchor.
func (p *Popup) layout() {
	size, content := computeSize(p.items.items, p.metrics, p.host.Text, p.requestMinWidth)

	screen := fallbackScreen
	if p.host.Display != nil {
		if bounds := p.host.Display.UsableBounds(p.requestAnchor); bounds.W > 0 && bounds.H > 0 {
			screen = bounds
		}
	}
	origin := computePosition(p.requestAnchor, screen, size)

	p.state.Width = size.W
	p.state.Height = size.H
	p.state.ContentHeight = content
	p.state.AnchorX = origin.X
	p.state.AnchorY = origin.Y
}

// Hide dismisses the popup. It is a no-op when already hidden, so it can be
// called from within the dismissed callback.
func (p *Popup) Hide() {
	p.hide(DismissProgrammatic)
}

func (p *Popup) hide(reason DismissReason) {
	if !p.visible.Load() {
		return
	}

	p.visible.Store(false)
	p.state.Visible = false
	p.state.HoveredIndex = constants.NoIndex
	p.state.PressedIndex = constants.NoIndex
	p.router.pointerKnown = false

	p.dismissal.disarm()

	if w := p.host.Window; w != nil {
		w.Hide()
	}

	dismissed := p.cycleDismissed
	p.cycleDismissed = nil

	internal.GetInternalLogger().Debug("option menu hidden", "reason", reason.String())

	if dismissed != nil {
		dismissed()
	}
}

// Destroy hides the popup and releases the host window if it supports it.
func (p *Popup) Destroy() {
	p.hide(DismissDestroyed)

	if d, ok := p.host.Window.(interface{ Destroy() }); ok {
		d.Destroy()
	}
}

// Paint draws the current frame onto s. Hosts call it in response to
// Window.QueueRedraw or an expose event.
func (p *Popup) Paint(s Surface) {
	if !p.IsVisible() {
		return
	}
	paint(s, p.state, p.items.items, p.metrics, p.theme)
}

// PointerMotion handles pointer movement at popup-local (x, y).
func (p *Popup) PointerMotion(x, y int32) {
	if !p.IsVisible() {
		return
	}
	p.router.pointerMotion(Point{X: x, Y: y})
}

// PointerLeave handles the pointer leaving the popup surface.
func (p *Popup) PointerLeave() {
	if !p.IsVisible() {
		return
	}
	p.router.pointerLeave()
}

// ButtonPress handles a button press delivered to the popup surface. It
// returns false when the press landed outside the popup and should propagate
// to whatever is underneath.
func (p *Popup) ButtonPress(ev ButtonEvent) bool {
	if !p.IsVisible() {
		return false
	}
	if p.dismissal.pointerPress(ev.Root) {
		return false
	}
	p.router.buttonPress(ev)
	return true
}

// ButtonRelease handles a button release on the popup surface.
func (p *Popup) ButtonRelease(ev ButtonEvent) {
	if !p.IsVisible() {
		return
	}
	p.router.buttonRelease(ev)
}

// Scroll handles wheel and touchpad scrolling.
func (p *Popup) Scroll(ev ScrollEvent) {
	if !p.IsVisible() {
		return
	}
	p.router.scroll(ev)
}

// KeyPress handles a key press and reports whether it was consumed.
func (p *Popup) KeyPress(key constants.Key) bool {
	if !p.IsVisible() {
		return false
	}
	return p.router.keyPress(key)
}

func (p *Popup) repaint() {
	if w := p.host.Window; w != nil {
		w.QueueRedraw()
	}
}

func (p *Popup) commit(index int) {
	selected := p.onItemSelected
	p.cycleDismissed = nil

	internal.GetInternalLogger().Debug("option menu item committed", "index", index)

	p.hide(dismissCommit)

	if selected != nil {
		selected(index)
	}
}

func (p *Popup) dismiss(reason DismissReason) {
	p.hide(reason)
}
