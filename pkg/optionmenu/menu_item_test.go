package optionmenu

import (
	"testing"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

func TestItemModelInitialSelection(t *testing.T) {
	tests := []struct {
		name  string
		items []MenuItem
		want  int
	}{
		{"none selected", items("a", "b"), constants.NoIndex},
		{"first selected wins", []MenuItem{
			{Label: "a", Enabled: true},
			{Label: "b", Enabled: true, Selected: true},
			{Label: "c", Enabled: true, Selected: true},
		}, 1},
		{"disabled selection ignored", []MenuItem{
			{Label: "a", Enabled: false, Selected: true},
			{Label: "b", Enabled: true},
		}, constants.NoIndex},
		{"group label selection ignored", []MenuItem{
			{Label: "g", Enabled: true, Selected: true, IsGroupLabel: true},
			{Label: "b", Enabled: true, Selected: true},
		}, 1},
		{"empty", nil, constants.NoIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newItemModel()
			m.load(tt.items)
			if m.initialSelected != tt.want {
				t.Errorf("initialSelected = %d, want %d", m.initialSelected, tt.want)
			}
		})
	}
}

func TestItemModelCopiesInput(t *testing.T) {
	src := items("a", "b")
	m := newItemModel()
	m.load(src)

	src[0].Label = "changed"
	if m.items[0].Label != "a" {
		t.Fatalf("model aliases caller slice: %q", m.items[0].Label)
	}
}

func TestItemModelNormalizesLabels(t *testing.T) {
	m := newItemModel()
	m.load([]MenuItem{{Label: "Cafe\u0301", Enabled: true}})

	if m.items[0].Label != "Caf\u00e9" {
		t.Fatalf("label = %+q, want NFC form", m.items[0].Label)
	}
}

func TestItemModelNavigation(t *testing.T) {
	m := newItemModel()
	m.load([]MenuItem{
		{Label: "G", IsGroupLabel: true, Enabled: true},
		{Label: "a", Enabled: true},
		{Label: "b", Enabled: false},
		{Label: "c", Enabled: true},
		{Label: "H", IsGroupLabel: true, Enabled: true},
	})

	if got := m.firstSelectable(); got != 1 {
		t.Errorf("firstSelectable = %d, want 1", got)
	}
	if got := m.lastSelectable(); got != 3 {
		t.Errorf("lastSelectable = %d, want 3", got)
	}
	if got := m.nextSelectable(2, 1); got != 3 {
		t.Errorf("nextSelectable(2, +1) = %d, want 3", got)
	}
	if got := m.nextSelectable(2, -1); got != 1 {
		t.Errorf("nextSelectable(2, -1) = %d, want 1", got)
	}
	if got := m.nextSelectable(4, 1); got != constants.NoIndex {
		t.Errorf("nextSelectable(4, +1) = %d, want NoIndex", got)
	}
	if got := m.nextSelectable(-1, -1); got != constants.NoIndex {
		t.Errorf("nextSelectable(-1, -1) = %d, want NoIndex", got)
	}

	for _, idx := range []int{-1, 0, 2, 4, 5, 99} {
		if m.selectable(idx) {
			t.Errorf("selectable(%d) = true", idx)
		}
	}
}
