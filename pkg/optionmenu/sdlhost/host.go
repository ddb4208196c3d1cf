// Package sdlhost runs the option menu popup in its own SDL window.
//
// A typical event loop:
//
//	host, err := sdlhost.New(parent, sdlhost.Options{})
//	popup := optionmenu.New(host.Host(), opts)
//	host.Attach(popup)
//	for running {
//		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
//			host.Dispatch(ev)
//		}
//		host.Tick()
//		host.Render()
//	}
package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Options configures the popup window.
type Options struct {
	Title            string
	Window           WindowOptions // zero value uses DefaultWindowOptions
	FontPath         string        // empty uses the embedded Go Regular font
	BoldFontPath     string        // empty uses the embedded Go Bold font
	FontSize         int           // points; 0 uses constants.DefaultFontSize
	TextureCacheSize int
}

// Host adapts SDL to optionmenu.Host and routes SDL events to a Popup.
type Host struct {
	window  *PopupWindow
	anchor  *Anchor
	display Display
	popup   *optionmenu.Popup
	repeat  *internal.KeyRepeat
	closed  bool
}

// New creates the hidden popup window. parent is the window showing the
// <select>; it may be nil.
func New(parent *sdl.Window, opts Options) (*Host, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = int(constants.DefaultFontSize)
	}

	window, err := newPopupWindow(opts)
	if err != nil {
		return nil, err
	}

	h := &Host{
		window: window,
		repeat: internal.NewKeyRepeat(),
	}
	if parent != nil {
		h.anchor = &Anchor{Window: parent}
	}

	internal.GetInternalLogger().Debug("SDL popup host created", "window_id", window.ID(), "has_anchor", parent != nil)

	return h, nil
}

func openFont(path string, embedded []byte, size int) (*ttf.Font, error) {
	if path != "" {
		return ttf.OpenFont(path, size)
	}
	rw, err := sdl.RWFromMem(embedded)
	if err != nil {
		return nil, err
	}
	return ttf.OpenFontRW(rw, 1, size)
}

// Host returns the collaborators to pass to optionmenu.New.
func (h *Host) Host() optionmenu.Host {
	host := optionmenu.Host{
		Window:  h.window,
		Display: h.display,
		Text:    h.window,
	}
	if h.anchor != nil {
		host.Anchor = h.anchor
	}
	return host
}

// Window returns the popup window.
func (h *Host) Window() *PopupWindow {
	return h.window
}

// Attach sets the popup that receives dispatched events and draws on Render.
func (h *Host) Attach(p *optionmenu.Popup) error {
	if h.closed {
		return optionmenu.ErrHostClosed
	}
	h.popup = p
	return nil
}

// Dispatch routes one SDL event. It returns true when the event belonged to
// the popup and should not be handled further.
func (h *Host) Dispatch(event sdl.Event) bool {
	if h.closed || h.popup == nil {
		return false
	}

	popupID := h.window.ID()

	switch ev := event.(type) {
	case *sdl.MouseMotionEvent:
		if ev.WindowID != popupID {
			return false
		}
		h.popup.PointerMotion(ev.X, ev.Y)
		return true

	case *sdl.MouseButtonEvent:
		return h.dispatchButton(ev, popupID)

	case *sdl.MouseWheelEvent:
		if ev.WindowID != popupID {
			return false
		}
		if scroll, ok := toScrollEvent(ev); ok {
			h.popup.Scroll(scroll)
		}
		return true

	case *sdl.KeyboardEvent:
		if ev.WindowID != popupID {
			return false
		}
		return h.dispatchKey(ev)

	case *sdl.WindowEvent:
		if ev.WindowID != popupID {
			return false
		}
		switch ev.Event {
		case sdl.WINDOWEVENT_FOCUS_LOST:
			h.repeat.Reset()
			h.window.focusOut.Fire(struct{}{})
		case sdl.WINDOWEVENT_LEAVE:
			h.popup.PointerLeave()
		case sdl.WINDOWEVENT_EXPOSED:
			h.window.QueueRedraw()
		case sdl.WINDOWEVENT_CLOSE:
			h.window.unrealize.Fire(struct{}{})
		}
		return true
	}

	return false
}

func (h *Host) dispatchButton(ev *sdl.MouseButtonEvent, popupID uint32) bool {
	button := toMouseButton(ev.Button)

	if ev.WindowID == popupID {
		origin := h.window.Origin()
		be := optionmenu.ButtonEvent{
			Button: button,
			Local:  optionmenu.Point{X: ev.X, Y: ev.Y},
			Root:   optionmenu.Point{X: origin.X + ev.X, Y: origin.Y + ev.Y},
		}
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return h.popup.ButtonPress(be)
		}
		h.popup.ButtonRelease(be)
		return true
	}

	if h.anchor != nil && ev.Type == sdl.MOUSEBUTTONDOWN && ev.WindowID == h.anchor.id() {
		origin := h.anchor.origin()
		h.anchor.press.Fire(optionmenu.ButtonEvent{
			Button: button,
			Local:  optionmenu.Point{X: ev.X, Y: ev.Y},
			Root:   optionmenu.Point{X: origin.X + ev.X, Y: origin.Y + ev.Y},
		})
	}

	return false
}

func (h *Host) dispatchKey(ev *sdl.KeyboardEvent) bool {
	key := toKey(ev.Keysym.Sym)
	if key == constants.KeyUnassigned {
		return false
	}

	if ev.Type == sdl.KEYUP {
		h.repeat.Release(key)
		return true
	}

	// Held keys repeat through Tick.
	if ev.Repeat != 0 && internal.Repeats(key) {
		return true
	}

	h.repeat.Press(key)
	consumed := h.popup.KeyPress(key)
	if !h.popup.IsVisible() {
		h.repeat.Reset()
	}
	return consumed
}

// Tick advances key repeat. Call it once per frame.
func (h *Host) Tick() {
	if h.closed || h.popup == nil || !h.popup.IsVisible() {
		h.repeat.Reset()
		return
	}
	if key := h.repeat.Update(); key != constants.KeyUnassigned {
		h.popup.KeyPress(key)
	}
}

// Render draws and presents a frame if one was requested.
func (h *Host) Render() {
	if h.closed || h.popup == nil || !h.window.NeedsRedraw() || !h.popup.IsVisible() {
		return
	}
	h.window.Begin()
	h.popup.Paint(h.window)
	h.window.Present()
}

// Close destroys the popup window. Any attached popup that is still showing
// observes it as an unrealize.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.window.Destroy()
	h.closed = true
}

func toMouseButton(b uint8) constants.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return constants.MouseButtonPrimary
	case sdl.BUTTON_MIDDLE:
		return constants.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return constants.MouseButtonSecondary
	}
	return constants.MouseButtonNone
}

func toScrollEvent(ev *sdl.MouseWheelEvent) (optionmenu.ScrollEvent, bool) {
	y := ev.Y
	precise := float64(ev.PreciseY)
	if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
		y, precise = -y, -precise
	}

	switch {
	case y > 0:
		return optionmenu.ScrollEvent{Direction: constants.ScrollUp}, true
	case y < 0:
		return optionmenu.ScrollEvent{Direction: constants.ScrollDown}, true
	case precise != 0:
		// SDL reports positive y away from the user, which is up the list.
		return optionmenu.ScrollEvent{Direction: constants.ScrollSmooth, DeltaY: -precise}, true
	}
	return optionmenu.ScrollEvent{}, false
}

func toKey(code sdl.Keycode) constants.Key {
	switch code {
	case sdl.K_ESCAPE:
		return constants.KeyEscape
	case sdl.K_RETURN:
		return constants.KeyEnter
	case sdl.K_KP_ENTER:
		return constants.KeyKeypadEnter
	case sdl.K_UP:
		return constants.KeyUp
	case sdl.K_DOWN:
		return constants.KeyDown
	case sdl.K_KP_8:
		return constants.KeyKeypadUp
	case sdl.K_KP_2:
		return constants.KeyKeypadDown
	case sdl.K_HOME:
		return constants.KeyHome
	case sdl.K_END:
		return constants.KeyEnd
	case sdl.K_PAGEUP:
		return constants.KeyPageUp
	case sdl.K_PAGEDOWN:
		return constants.KeyPageDown
	}
	return constants.KeyUnassigned
}
