package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Anchor is the window hosting the <select> control. Button presses that
// Dispatch sees on it are forwarded to subscribers.
type Anchor struct {
	Window *sdl.Window
	press  internal.Handlers[optionmenu.ButtonEvent]
}

func (a *Anchor) OnButtonPress(fn func(optionmenu.ButtonEvent)) func() {
	return a.press.Add(fn)
}

func (a *Anchor) id() uint32 {
	id, err := a.Window.GetID()
	if err != nil {
		return 0
	}
	return id
}

func (a *Anchor) origin() optionmenu.Point {
	x, y := a.Window.GetPosition()
	return optionmenu.Point{X: x, Y: y}
}
