package optionmenu_test

import (
	"fmt"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/raster"
)

func Example() {
	fonts, err := raster.LoadFonts(constants.DefaultFontSize, "", "")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fonts.Close()

	screen := raster.NewOffscreen(fonts, optionmenu.Rect{W: 1920, H: 1080})
	popup := optionmenu.New(screen.Host(), optionmenu.Options{})

	popup.SetItemSource([]optionmenu.MenuItem{
		{Label: "Apple", Enabled: true, Selected: true},
		{Label: "Banana", Enabled: true},
		{Label: "Fruit", IsGroupLabel: true},
	})
	popup.SetItemSelectedCallback(func(index int) {
		fmt.Println("selected", index)
	})
	popup.SetDismissedCallback(func() {
		fmt.Println("dismissed")
	})

	// Near the bottom-right corner the popup is pushed left and flipped up.
	popup.Show(1900, 1070, 0)
	st := popup.State()
	fmt.Printf("origin %d,%d size %dx%d hover %d\n", st.AnchorX, st.AnchorY, st.Width, st.Height, st.HoveredIndex)

	popup.KeyPress(constants.KeyDown)
	popup.KeyPress(constants.KeyEnter)
	fmt.Println("visible", popup.IsVisible())

	// Output:
	// origin 1800,982 size 120x88 hover 0
	// selected 1
	// visible false
}

func ExamplePopup_Hide() {
	fonts, err := raster.LoadFonts(constants.DefaultFontSize, "", "")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fonts.Close()

	screen := raster.NewOffscreen(fonts, optionmenu.Rect{W: 800, H: 600})
	popup := optionmenu.New(screen.Host(), optionmenu.Options{})
	popup.SetItemSource([]optionmenu.MenuItem{{Label: "Only", Enabled: true}})
	popup.SetDismissedCallback(func() { fmt.Println("dismissed") })

	popup.Show(0, 0, 0)
	popup.Hide()
	popup.Hide()
	fmt.Println("shown", screen.Shown())

	// Output:
	// dismissed
	// shown false
}
