package optionmenu

// DismissReason records why a popup closed without a selection.
type DismissReason int

const (
	DismissProgrammatic   DismissReason = iota // Hide called by the embedder
	DismissEscape                              // Escape key
	DismissSecondaryClick                      // Right click anywhere on the popup
	DismissOutsideClick                        // Press outside the popup's screen rectangle
	DismissAnchorClick                         // Press on the anchor window
	DismissFocusLost                           // Popup surface lost input focus
	DismissUnrealized                          // Popup surface was destroyed underneath us
	DismissDestroyed                           // Popup.Destroy
	dismissCommit                              // internal: teardown after a selection
)

func (r DismissReason) String() string {
	switch r {
	case DismissProgrammatic:
		return "programmatic"
	case DismissEscape:
		return "escape"
	case DismissSecondaryClick:
		return "secondary_click"
	case DismissOutsideClick:
		return "outside_click"
	case DismissAnchorClick:
		return "anchor_click"
	case DismissFocusLost:
		return "focus_lost"
	case DismissUnrealized:
		return "unrealized"
	case DismissDestroyed:
		return "destroyed"
	case dismissCommit:
		return "commit"
	default:
		return "unknown"
	}
}

// InputState is the pointer state machine's current state.
type InputState int

const (
	InputIdle     InputState = iota // nothing hovered or pressed
	InputHovering                   // HoveredIndex is set
	InputPressed                    // primary button went down on PressedIndex
)

func (s InputState) String() string {
	switch s {
	case InputHovering:
		return "hovering"
	case InputPressed:
		return "pressed"
	default:
		return "idle"
	}
}

// PopupState is a snapshot of the popup's presentation state.
type PopupState struct {
	Visible       bool
	Width         int32
	Height        int32
	ContentHeight int32 // sum of all row heights
	ScrollOffset  int32
	HoveredIndex  int   // -1 when nothing is hovered
	PressedIndex  int   // -1 when no press is in flight
	AnchorX       int32 // clamped screen origin
	AnchorY       int32
}

// InputState derives the state machine state from the indexes.
func (s PopupState) InputState() InputState {
	if s.PressedIndex >= 0 {
		return InputPressed
	}
	if s.HoveredIndex >= 0 {
		return InputHovering
	}
	return InputIdle
}

// Bounds returns the popup's screen rectangle.
func (s PopupState) Bounds() Rect {
	return Rect{X: s.AnchorX, Y: s.AnchorY, W: s.Width, H: s.Height}
}
