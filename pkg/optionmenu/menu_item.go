package optionmenu

import (
	"golang.org/x/text/unicode/norm"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

// MenuItem represents a single <option> or <optgroup> row in the popup.
type MenuItem struct {
	Label        string // Display text; may be empty
	Enabled      bool   // Disabled items are drawn dimmed and cannot be chosen
	Selected     bool   // Matches the control's current value
	IsGroupLabel bool   // <optgroup> heading, never selectable
	IsGroupChild bool   // <option> inside an <optgroup>, drawn indented
}

// Selectable reports whether the item can be hovered, pressed or committed.
func (m MenuItem) Selectable() bool {
	return m.Enabled && !m.IsGroupLabel
}

// itemModel holds the list presented by one popup and the index of the row
// that starts out highlighted.
type itemModel struct {
	items           []MenuItem
	initialSelected int
}

func newItemModel() itemModel {
	return itemModel{initialSelected: constants.NoIndex}
}

// load replaces the list. The initial selection is the first selected,
// selectable item.
func (m *itemModel) load(items []MenuItem) {
	m.items = make([]MenuItem, len(items))
	m.initialSelected = constants.NoIndex

	for i, item := range items {
		item.Label = norm.NFC.String(item.Label)
		m.items[i] = item

		if m.initialSelected == constants.NoIndex && item.Selected && item.Selectable() {
			m.initialSelected = i
		}
	}
}

func (m *itemModel) len() int {
	return len(m.items)
}

func (m *itemModel) empty() bool {
	return len(m.items) == 0
}

// at is bounds-checked; stale indexes yield ok == false.
func (m *itemModel) at(index int) (MenuItem, bool) {
	if index < 0 || index >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[index], true
}

func (m *itemModel) selectable(index int) bool {
	item, ok := m.at(index)
	return ok && item.Selectable()
}

// nextSelectable searches from start in the given direction (+1 or -1),
// including start itself, and stops at the list ends.
func (m *itemModel) nextSelectable(start, direction int) int {
	for i := start; i >= 0 && i < len(m.items); i += direction {
		if m.items[i].Selectable() {
			return i
		}
	}
	return constants.NoIndex
}

func (m *itemModel) firstSelectable() int {
	return m.nextSelectable(0, 1)
}

func (m *itemModel) lastSelectable() int {
	return m.nextSelectable(len(m.items)-1, -1)
}
