package optionmenu

import (
	"testing"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

func TestDismissReasonString(t *testing.T) {
	tests := map[DismissReason]string{
		DismissProgrammatic:   "programmatic",
		DismissEscape:         "escape",
		DismissSecondaryClick: "secondary_click",
		DismissOutsideClick:   "outside_click",
		DismissAnchorClick:    "anchor_click",
		DismissFocusLost:      "focus_lost",
		DismissUnrealized:     "unrealized",
		DismissDestroyed:      "destroyed",
		DismissReason(99):     "unknown",
	}
	for reason, want := range tests {
		if got := reason.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(reason), got, want)
		}
	}
}

func TestPopupStateInputState(t *testing.T) {
	tests := []struct {
		hovered, pressed int
		want             InputState
	}{
		{constants.NoIndex, constants.NoIndex, InputIdle},
		{2, constants.NoIndex, InputHovering},
		{2, 2, InputPressed},
		{constants.NoIndex, 1, InputPressed},
	}
	for _, tt := range tests {
		st := PopupState{HoveredIndex: tt.hovered, PressedIndex: tt.pressed}
		if got := st.InputState(); got != tt.want {
			t.Errorf("hovered %d pressed %d: %v, want %v", tt.hovered, tt.pressed, got, tt.want)
		}
	}
}
