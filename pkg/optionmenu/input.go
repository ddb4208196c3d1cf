package optionmenu

import (
	"math"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// inputActions are the side effects the input state machine can request.
type inputActions interface {
	repaint()
	commit(index int)
	dismiss(reason DismissReason)
}

// inputRouter turns raw device events into hover, press and scroll updates
// and decides between commit and dismissal. It owns no state of its own
// apart from the last pointer position.
type inputRouter struct {
	items   *itemModel
	state   *PopupState
	metrics *Metrics
	actions inputActions

	pointer      Point
	pointerKnown bool

	// smoothRemainder carries the sub-pixel part of touchpad scrolling.
	smoothRemainder float64
}

func (r *inputRouter) reset() {
	r.state.ScrollOffset = 0
	r.state.HoveredIndex = constants.NoIndex
	r.state.PressedIndex = constants.NoIndex
	r.pointerKnown = false
	r.smoothRemainder = 0
}

// hitTest maps a popup-local point to a selectable item index.
func (r *inputRouter) hitTest(p Point) int {
	if p.X < 0 || p.X >= r.state.Width || p.Y < 0 || p.Y >= r.state.Height {
		return constants.NoIndex
	}

	top := r.metrics.padding().Top
	if p.Y < top || p.Y >= top+r.visibleHeight() {
		return constants.NoIndex
	}

	contentY := p.Y - top + r.state.ScrollOffset

	var rowY int32
	for i, item := range r.items.items {
		h := r.metrics.rowHeight(item)
		if contentY >= rowY && contentY < rowY+h {
			if !item.Selectable() {
				return constants.NoIndex
			}
			return i
		}
		rowY += h
	}

	return constants.NoIndex
}

func (r *inputRouter) visibleHeight() int32 {
	return r.metrics.visibleHeight(r.state.Height)
}

func (r *inputRouter) maxScroll() int32 {
	return internal.Max32(0, r.state.ContentHeight-r.visibleHeight())
}

func (r *inputRouter) setScroll(offset int32) {
	r.state.ScrollOffset = internal.Clamp32(offset, 0, r.maxScroll())
}

// scrollIntoView moves the viewport the minimum distance needed to show the
// whole row at index.
func (r *inputRouter) scrollIntoView(index int) {
	item, ok := r.items.at(index)
	if !ok {
		return
	}

	top := rowTop(r.items.items, *r.metrics, index)
	bottom := top + r.metrics.rowHeight(item)
	visible := r.visibleHeight()

	offset := r.state.ScrollOffset
	if top < offset {
		offset = top
	} else if bottom > offset+visible {
		offset = bottom - visible
	}
	r.setScroll(offset)
}

func (r *inputRouter) setHover(index int) bool {
	if index != constants.NoIndex && !r.items.selectable(index) {
		index = constants.NoIndex
	}
	if index == r.state.HoveredIndex {
		return false
	}
	r.state.HoveredIndex = index
	return true
}

func (r *inputRouter) pointerMotion(p Point) {
	r.pointer = p
	r.pointerKnown = true

	if r.setHover(r.hitTest(p)) {
		r.actions.repaint()
	}
}

func (r *inputRouter) pointerLeave() {
	r.pointerKnown = false

	if r.setHover(constants.NoIndex) {
		r.actions.repaint()
	}
}

func (r *inputRouter) buttonPress(ev ButtonEvent) {
	switch ev.Button {
	case constants.MouseButtonPrimary:
		index := r.hitTest(ev.Local)
		if !r.items.selectable(index) {
			index = constants.NoIndex
		}
		r.state.PressedIndex = index

	case constants.MouseButtonSecondary:
		// Right click closes the popup wherever it lands.
		r.actions.dismiss(DismissSecondaryClick)
	}
}

func (r *inputRouter) buttonRelease(ev ButtonEvent) {
	if ev.Button != constants.MouseButtonPrimary {
		return
	}

	pressed := r.state.PressedIndex
	r.state.PressedIndex = constants.NoIndex

	index := r.hitTest(ev.Local)
	if index != constants.NoIndex && index == pressed && r.items.selectable(index) {
		r.actions.commit(index)
	}
}

func (r *inputRouter) scroll(ev ScrollEvent) {
	step := r.metrics.ItemHeight

	var delta int32
	switch ev.Direction {
	case constants.ScrollUp:
		delta = -step
	case constants.ScrollDown:
		delta = step
	case constants.ScrollSmooth:
		exact := ev.DeltaY*float64(step) + r.smoothRemainder
		whole := math.Trunc(exact)
		r.smoothRemainder = exact - whole
		delta = int32(whole)
	}

	r.setScroll(r.state.ScrollOffset + delta)

	if r.pointerKnown {
		r.setHover(r.hitTest(r.pointer))
	}
	r.actions.repaint()
}

// keyPress returns true when the key was consumed.
func (r *inputRouter) keyPress(key constants.Key) bool {
	hovered := r.state.HoveredIndex

	switch key {
	case constants.KeyEscape:
		r.actions.dismiss(DismissEscape)
		return true

	case constants.KeyEnter, constants.KeyKeypadEnter:
		if r.items.selectable(hovered) {
			r.actions.commit(hovered)
			return true
		}
		return false

	case constants.KeyUp, constants.KeyKeypadUp:
		start := r.items.len() - 1
		if hovered >= 0 {
			start = hovered - 1
		}
		r.moveHover(r.items.nextSelectable(start, -1))
		return true

	case constants.KeyDown, constants.KeyKeypadDown:
		start := 0
		if hovered >= 0 {
			start = hovered + 1
		}
		r.moveHover(r.items.nextSelectable(start, 1))
		return true

	case constants.KeyHome:
		r.moveHover(r.items.firstSelectable())
		return true

	case constants.KeyEnd:
		r.moveHover(r.items.lastSelectable())
		return true

	case constants.KeyPageUp:
		target := internal.Max32(0, int32(hovered)-r.pageSize())
		if hovered < 0 {
			target = 0
		}
		index := r.items.nextSelectable(int(target), -1)
		if index == constants.NoIndex {
			index = r.items.firstSelectable()
		}
		r.moveHover(index)
		return true

	case constants.KeyPageDown:
		last := int32(r.items.len() - 1)
		target := internal.Min32(last, internal.Max32(int32(hovered), 0)+r.pageSize())
		index := r.items.nextSelectable(int(target), 1)
		if index == constants.NoIndex {
			index = r.items.lastSelectable()
		}
		r.moveHover(index)
		return true
	}

	return false
}

func (r *inputRouter) pageSize() int32 {
	return internal.Max32(1, r.visibleHeight()/r.metrics.ItemHeight)
}

func (r *inputRouter) moveHover(index int) {
	if index == constants.NoIndex {
		return
	}
	r.setHover(index)
	r.scrollIntoView(index)
	r.actions.repaint()
}
