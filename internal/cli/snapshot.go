package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/raster"
)

type snapshotFlags struct {
	output   string
	x, y     int32
	minWidth int32
	screen   string
	keys     []string
	scroll   int
	pointer  string
}

func newSnapshotCmd(s *settings) *cobra.Command {
	f := &snapshotFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot [items-file]",
		Short: "Render the popup to a PNG file",
		Long: `Show the popup on an offscreen monitor, optionally drive it with keys,
wheel notches and a pointer position, and write the resulting frame as PNG.

  optionmenu snapshot items.yaml --keys down,down --scroll 1 -o menu.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, s, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "optionmenu.png", "PNG file to write")
	cmd.Flags().Int32Var(&f.x, "x", 0, "anchor x in screen coordinates")
	cmd.Flags().Int32Var(&f.y, "y", 0, "anchor y in screen coordinates")
	cmd.Flags().Int32Var(&f.minWidth, "min-width", 0, "width of the originating control")
	cmd.Flags().StringVar(&f.screen, "screen", "1920x1080", "monitor work area as WIDTHxHEIGHT")
	cmd.Flags().StringSliceVar(&f.keys, "keys", nil, "keys to press after showing, e.g. down,pagedown,end")
	cmd.Flags().IntVar(&f.scroll, "scroll", 0, "wheel notches to scroll; negative scrolls up")
	cmd.Flags().StringVar(&f.pointer, "pointer", "", "popup-local pointer position as X,Y")

	return cmd
}

func runSnapshot(cmd *cobra.Command, s *settings, f *snapshotFlags, args []string) error {
	items, err := s.Items(args)
	if err != nil {
		return err
	}

	screen, err := parseScreen(f.screen)
	if err != nil {
		return err
	}

	keys := make([]constants.Key, 0, len(f.keys))
	for _, name := range f.keys {
		key, ok := constants.ParseKey(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown key %q", name)
		}
		keys = append(keys, key)
	}

	var pointer *optionmenu.Point
	if f.pointer != "" {
		p, err := parsePoint(f.pointer)
		if err != nil {
			return err
		}
		pointer = &p
	}

	opts := s.options
	fonts, err := raster.LoadFonts(opts.Metrics.FontSize, opts.Theme.FontPath, opts.Theme.BoldFontPath)
	if err != nil {
		return optionmenu.NewInfrastructureError("load_font", err)
	}
	defer fonts.Close()

	offscreen := raster.NewOffscreen(fonts, screen)
	popup := optionmenu.New(offscreen.Host(), opts)
	popup.SetItemSource(items)
	popup.Show(f.x, f.y, f.minWidth)

	if !popup.IsVisible() {
		return optionmenu.ErrNoItems
	}

	for i := 0; i < abs(f.scroll); i++ {
		dir := constants.ScrollDown
		if f.scroll < 0 {
			dir = constants.ScrollUp
		}
		popup.Scroll(optionmenu.ScrollEvent{Direction: dir})
	}

	for _, key := range keys {
		popup.KeyPress(key)
		if !popup.IsVisible() {
			return fmt.Errorf("popup closed after key %s", key.GetName())
		}
	}

	if pointer != nil {
		popup.PointerMotion(pointer.X, pointer.Y)
	}

	canvas := offscreen.Render(popup)
	if canvas == nil {
		return fmt.Errorf("popup is not showing")
	}

	out, err := os.Create(f.output)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	st := popup.State()
	optionmenu.GetLogger().Info("Snapshot written",
		"path", f.output,
		"x", st.AnchorX,
		"y", st.AnchorY,
		"width", st.Width,
		"height", st.Height,
		"hovered", st.HoveredIndex,
		"scroll", st.ScrollOffset)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d+%d+%d hover=%d scroll=%d\n",
		f.output, st.Width, st.Height, st.AnchorX, st.AnchorY, st.HoveredIndex, st.ScrollOffset)

	return nil
}

func parseScreen(v string) (optionmenu.Rect, error) {
	w, h, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return optionmenu.Rect{}, fmt.Errorf("screen %q: want WIDTHxHEIGHT", v)
	}
	width, err := strconv.ParseInt(w, 10, 32)
	if err != nil || width <= 0 {
		return optionmenu.Rect{}, fmt.Errorf("screen %q: bad width", v)
	}
	height, err := strconv.ParseInt(h, 10, 32)
	if err != nil || height <= 0 {
		return optionmenu.Rect{}, fmt.Errorf("screen %q: bad height", v)
	}
	return optionmenu.Rect{W: int32(width), H: int32(height)}, nil
}

func parsePoint(v string) (optionmenu.Point, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return optionmenu.Point{}, fmt.Errorf("point %q: want X,Y", v)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return optionmenu.Point{}, fmt.Errorf("point %q: %w", v, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return optionmenu.Point{}, fmt.Errorf("point %q: %w", v, err)
	}
	return optionmenu.Point{X: int32(x), Y: int32(y)}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
