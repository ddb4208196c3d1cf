package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Init starts the SDL video and TTF subsystems. Call it once, from the
// thread that will run the event loop, before creating a Host.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return optionmenu.NewInfrastructureError("sdl_init", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return optionmenu.NewInfrastructureError("ttf_init", err)
	}

	// Keep the mouse-down that opened the popup from also focusing it.
	sdl.SetHint(sdl.HINT_MOUSE_FOCUS_CLICKTHROUGH, "1")

	v := sdl.Version{}
	sdl.GetVersion(&v)
	internal.GetInternalLogger().Debug("SDL initialized", "version", fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch))

	return nil
}

// Quit shuts down what Init started. Close every Host first.
func Quit() {
	ttf.Quit()
	sdl.Quit()
}
