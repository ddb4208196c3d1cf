package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// PopupWindow is the SDL window the popup draws into. It implements
// optionmenu.Window, optionmenu.TextMeasurer and optionmenu.Surface.
type PopupWindow struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	regular *ttf.Font
	bold    *ttf.Font
	cache   *textureCache

	clip *sdl.Rect

	focusOut  internal.Handlers[struct{}]
	unrealize internal.Handlers[struct{}]

	dirty     bool
	destroyed bool

	hasVSync        bool
	lastPresentTime uint64
}

func newPopupWindow(opts Options) (*PopupWindow, error) {
	winOpts := opts.Window
	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	window, err := sdl.CreateWindow(opts.Title, 0, 0, 1, 1, winOpts.ToSDLFlags())
	if err != nil {
		return nil, optionmenu.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, optionmenu.NewInfrastructureError("create_renderer", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	regular, err := openFont(opts.FontPath, goregular.TTF, opts.FontSize)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, optionmenu.NewInfrastructureError("load_font", err)
	}

	bold, err := openFont(opts.BoldFontPath, gobold.TTF, opts.FontSize)
	if err != nil {
		regular.Close()
		renderer.Destroy()
		window.Destroy()
		return nil, optionmenu.NewInfrastructureError("load_font", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &PopupWindow{
		Window:   window,
		Renderer: renderer,
		regular:  regular,
		bold:     bold,
		cache:    newTextureCache(opts.TextureCacheSize),
		hasVSync: vsync,
	}, nil
}

// ID is the SDL window id that events for this window carry.
func (w *PopupWindow) ID() uint32 {
	id, err := w.Window.GetID()
	if err != nil {
		return 0
	}
	return id
}

func (w *PopupWindow) Move(x, y int32) {
	w.Window.SetPosition(x, y)
}

func (w *PopupWindow) Resize(width, height int32) {
	w.Window.SetSize(width, height)
}

func (w *PopupWindow) Show() {
	w.Window.Show()
	w.dirty = true
}

func (w *PopupWindow) Hide() {
	w.Window.Hide()
	w.dirty = false
}

func (w *PopupWindow) GrabFocus() {
	w.Window.Raise()
	if err := w.Window.SetInputFocus(); err != nil {
		internal.GetInternalLogger().Debug("Popup could not take input focus", "error", err)
	}
}

func (w *PopupWindow) QueueRedraw() {
	w.dirty = true
}

func (w *PopupWindow) OnFocusOut(fn func()) func() {
	return w.focusOut.Add(func(struct{}) { fn() })
}

func (w *PopupWindow) OnUnrealize(fn func()) func() {
	return w.unrealize.Add(func(struct{}) { fn() })
}

// NeedsRedraw reports whether QueueRedraw was called since the last Present.
func (w *PopupWindow) NeedsRedraw() bool {
	return w.dirty
}

// Origin returns the window's screen position.
func (w *PopupWindow) Origin() optionmenu.Point {
	x, y := w.Window.GetPosition()
	return optionmenu.Point{X: x, Y: y}
}

func (w *PopupWindow) MeasureText(text string, bold bool) int32 {
	font := w.regular
	if bold {
		font = w.bold
	}
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to measure text", "text", text, "error", err)
		return 0
	}
	return int32(width)
}

// Begin clears the back buffer for a new frame.
func (w *PopupWindow) Begin() {
	w.ResetClip()
	w.Renderer.SetDrawColor(0, 0, 0, 0)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *PopupWindow) Present() {
	w.Renderer.Present()
	w.dirty = false

	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Destroy fires the unrealize handlers and releases every SDL resource. It
// is safe to call more than once.
func (w *PopupWindow) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true

	w.unrealize.Fire(struct{}{})

	w.cache.destroy()
	w.bold.Close()
	w.regular.Close()
	w.Renderer.Destroy()
	w.Window.Destroy()
}
