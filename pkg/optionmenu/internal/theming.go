package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme defines the visual appearance of the popup.
// Presets live under platform/; individual colors can be overridden from
// the [theme] table of a config file.
type Theme struct {
	BackgroundColor      color.NRGBA // Popup body
	BorderColor          color.NRGBA // 1px outline around the body
	HoverColor           color.NRGBA // Row under the pointer or keyboard cursor
	SelectedColor        color.NRGBA // Row matching the control's current value
	TextColor            color.NRGBA // Default item text
	HighlightedTextColor color.NRGBA // Text on the hovered row
	DisabledTextColor    color.NRGBA // Text of disabled items
	GroupLabelColor      color.NRGBA // <optgroup> headings
	ScrollIndicatorColor color.NRGBA // Overflow triangles
	FontPath             string      // Regular face; empty uses the host default
	BoldFontPath         string      // Bold face for group labels
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// HexToColorAlpha converts 0xRRGGBBAA to a color.
func HexToColorAlpha(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((hex >> 24) & 0xFF),
		G: uint8((hex >> 16) & 0xFF),
		B: uint8((hex >> 8) & 0xFF),
		A: uint8(hex & 0xFF),
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA"; the leading '#' is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(raw) == 6 {
		return HexToColor(uint32(v)), nil
	}
	return HexToColorAlpha(uint32(v)), nil
}
