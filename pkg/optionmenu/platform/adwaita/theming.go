// Package adwaita provides popup themes that match the stock GTK look,
// so the popup blends in next to the browser's native form controls.
package adwaita

import (
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Light returns the default light theme.
func Light() internal.Theme {
	return internal.Theme{
		BackgroundColor:      internal.HexToColorAlpha(0xFAFAFAFA),
		BorderColor:          internal.HexToColor(0xB3B3B3),
		HoverColor:           internal.HexToColor(0x3380E6),
		SelectedColor:        internal.HexToColor(0xD9E6FF),
		TextColor:            internal.HexToColor(0x1A1A1A),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		DisabledTextColor:    internal.HexToColor(0x999999),
		GroupLabelColor:      internal.HexToColor(0x666666),
		ScrollIndicatorColor: internal.HexToColorAlpha(0x808080CC),
	}
}

// Dark returns a dark variant for hosts running a dark GTK theme.
func Dark() internal.Theme {
	return internal.Theme{
		BackgroundColor:      internal.HexToColorAlpha(0x2D2D2DFA),
		BorderColor:          internal.HexToColor(0x1B1B1B),
		HoverColor:           internal.HexToColor(0x3584E4),
		SelectedColor:        internal.HexToColor(0x3A4A63),
		TextColor:            internal.HexToColor(0xEEEEEC),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		DisabledTextColor:    internal.HexToColor(0x7A7A7A),
		GroupLabelColor:      internal.HexToColor(0xA0A0A0),
		ScrollIndicatorColor: internal.HexToColorAlpha(0xA0A0A0CC),
	}
}

// ForName resolves a theme by name; unknown names fall back to Light.
func ForName(name string) internal.Theme {
	if name == "dark" {
		return Dark()
	}
	return Light()
}
