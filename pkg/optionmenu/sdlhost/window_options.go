package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags for the popup surface.
type WindowOptions struct {
	PopupMenu   bool // SDL_WINDOW_POPUP_MENU; lets the window manager treat it as a menu
	Borderless  bool // SDL_WINDOW_BORDERLESS
	SkipTaskbar bool // SDL_WINDOW_SKIP_TASKBAR
	AlwaysOnTop bool // SDL_WINDOW_ALWAYS_ON_TOP
	Shown       bool // create the window visible instead of hidden
}

// DefaultWindowOptions are the flags of an undecorated, initially hidden
// menu window.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		PopupMenu:   true,
		Borderless:  true,
		SkipTaskbar: true,
		AlwaysOnTop: true,
	}
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if wo.Shown {
		flags |= sdl.WINDOW_SHOWN
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	if wo.PopupMenu {
		flags |= sdl.WINDOW_POPUP_MENU
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.SkipTaskbar {
		flags |= sdl.WINDOW_SKIP_TASKBAR
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
