package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Display reports monitor work areas through SDL's video subsystem.
type Display struct{}

func (Display) UsableBounds(p optionmenu.Point) optionmenu.Rect {
	n, err := sdl.GetNumVideoDisplays()
	if err != nil || n < 1 {
		internal.GetInternalLogger().Debug("No video displays reported", "error", err)
		return optionmenu.Rect{}
	}

	index := 0
	for i := 0; i < n; i++ {
		bounds, err := sdl.GetDisplayBounds(i)
		if err != nil {
			continue
		}
		if p.X >= bounds.X && p.X < bounds.X+bounds.W && p.Y >= bounds.Y && p.Y < bounds.Y+bounds.H {
			index = i
			break
		}
	}

	usable, err := sdl.GetDisplayUsableBounds(index)
	if err != nil {
		usable, err = sdl.GetDisplayBounds(index)
		if err != nil {
			return optionmenu.Rect{}
		}
	}

	return optionmenu.Rect{X: usable.X, Y: usable.Y, W: usable.W, H: usable.H}
}
