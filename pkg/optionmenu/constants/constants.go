// Package constants defines shared constants, types, and configuration values
// used throughout the optionmenu popup.
package constants

import (
	"os"
	"strings"
)

// DebugEnvVar raises the internal logger to debug level when set.
const DebugEnvVar = "OPTIONMENU_DEBUG"

// ConfigPathEnvVar names a TOML file with metrics and theme overrides.
const ConfigPathEnvVar = "OPTIONMENU_CONFIG"

// IsDebug returns true if OPTIONMENU_DEBUG is set to a non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// NoIndex marks the absence of a hovered, pressed or selected item.
const NoIndex = -1

// MouseButton identifies a pointer button, numbered the way X11 and GDK do.
type MouseButton int

const (
	MouseButtonNone      MouseButton = 0
	MouseButtonPrimary   MouseButton = 1
	MouseButtonMiddle    MouseButton = 2
	MouseButtonSecondary MouseButton = 3
)

// Key is an abstract key, mapped from the host toolkit's key codes.
type Key int

const (
	KeyUnassigned Key = iota
	KeyEscape
	KeyEnter
	KeyKeypadEnter
	KeyUp
	KeyDown
	KeyKeypadUp
	KeyKeypadDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

func (k Key) GetName() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyKeypadEnter:
		return "KeypadEnter"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyKeypadUp:
		return "KeypadUp"
	case KeyKeypadDown:
		return "KeypadDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUnassigned:
		return "Unassigned"
	default:
		return "Unknown"
	}
}

// ParseKey looks a key up by its GetName, ignoring case.
func ParseKey(name string) (Key, bool) {
	for k := KeyEscape; k <= KeyPageDown; k++ {
		if strings.EqualFold(k.GetName(), name) {
			return k, true
		}
	}
	return KeyUnassigned, false
}

// ScrollDirection mirrors the discrete and smooth scroll kinds hosts report.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollSmooth // use the event's DeltaY, in units of one item row
)

// Default popup metrics, in pixels unless noted.
const (
	DefaultMinWidth            int32   = 120
	DefaultMaxWidth            int32   = 480
	DefaultItemHeight          int32   = 28
	DefaultGroupLabelHeight    int32   = 24
	DefaultVerticalPadding     int32   = 4
	DefaultHorizontalPadding   int32   = 48
	DefaultTextInset           int32   = 12
	DefaultGroupChildIndent    int32   = 16
	DefaultRowInset            int32   = 4
	DefaultMaxVisibleItems     int32   = 12
	DefaultCornerRadius        float64 = 6
	DefaultFontSize            float64 = 13 // points
	DefaultScrollIndicatorSize int32   = 6
	DefaultBorderWidth         float64 = 1
)
