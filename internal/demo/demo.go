// Package demo runs the popup in a real SDL window.
package demo

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/inappwebview/optionmenu/internal/cli"
	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/sdlhost"
)

// NewCmd builds the demo subcommand. Register it with cli.Execute.
func NewCmd(s cli.Session) *cobra.Command {
	var minWidth int32

	cmd := &cobra.Command{
		Use:   "demo [items-file]",
		Short: "Open a window; click it to show the popup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := s.Items(args)
			if err != nil {
				return err
			}
			return run(s.Options(), items, minWidth)
		},
	}

	cmd.Flags().Int32Var(&minWidth, "min-width", 160, "width of the pretend <select> control")

	return cmd
}

func run(opts optionmenu.Options, items []optionmenu.MenuItem, minWidth int32) error {
	// SDL wants every call from the thread that initialized it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()

	parent, err := sdl.CreateWindow("optionmenu demo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 640, 480, sdl.WINDOW_SHOWN)
	if err != nil {
		return optionmenu.NewInfrastructureError("create_window", err)
	}
	defer parent.Destroy()

	renderer, err := sdl.CreateRenderer(parent, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return optionmenu.NewInfrastructureError("create_renderer", err)
	}
	defer renderer.Destroy()

	host, err := sdlhost.New(parent, sdlhost.Options{
		Title:        "optionmenu",
		FontPath:     opts.Theme.FontPath,
		BoldFontPath: opts.Theme.BoldFontPath,
		FontSize:     int(opts.Metrics.FontSize),
	})
	if err != nil {
		return err
	}
	defer host.Close()

	logger := optionmenu.GetLogger()

	popup := optionmenu.New(host.Host(), opts)
	defer popup.Destroy()
	if err := host.Attach(popup); err != nil {
		return err
	}
	popup.SetItemSource(items)

	popup.SetItemSelectedCallback(func(index int) {
		logger.Info("Item selected", "index", index, "label", items[index].Label)
		for i := range items {
			items[i].Selected = i == index
		}
		popup.SetItemSource(items)
	})
	popup.SetDismissedCallback(func() {
		logger.Info("Popup dismissed")
	})

	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			wasVisible := popup.IsVisible()

			if host.Dispatch(event) {
				continue
			}

			switch ev := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.MouseButtonEvent:
				if wasVisible || ev.Type != sdl.MOUSEBUTTONDOWN || ev.Button != sdl.BUTTON_LEFT {
					continue
				}
				px, py := parent.GetPosition()
				popup.Show(px+ev.X, py+ev.Y, minWidth)
			case *sdl.KeyboardEvent:
				if !wasVisible && ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		host.Tick()
		host.Render()

		renderer.SetDrawColor(0xEE, 0xEE, 0xEC, 0xFF)
		renderer.Clear()
		renderer.Present()
		sdl.Delay(16)
	}

	return nil
}
