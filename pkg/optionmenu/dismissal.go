package optionmenu

// dismissalCoordinator watches for events outside the popup surface and
// turns them into dismissal requests. Subscriptions exist only while armed.
type dismissalCoordinator struct {
	window Window
	anchor AnchorWindow

	onDismiss func(DismissReason)

	armed       bool
	bounds      Rect
	unsubscribe []func()
}

// arm starts observing the anchor window, focus loss and unrealize for a
// popup occupying bounds. Re-arming drops the previous subscriptions first.
func (d *dismissalCoordinator) arm(bounds Rect) {
	d.disarm()

	d.armed = true
	d.bounds = bounds

	if d.anchor != nil {
		d.track(d.anchor.OnButtonPress(func(ButtonEvent) {
			d.fire(DismissAnchorClick)
		}))
	}
	if d.window != nil {
		d.track(d.window.OnFocusOut(func() {
			d.fire(DismissFocusLost)
		}))
		d.track(d.window.OnUnrealize(func() {
			d.fire(DismissUnrealized)
		}))
	}
}

func (d *dismissalCoordinator) track(unsubscribe func()) {
	if unsubscribe != nil {
		d.unsubscribe = append(d.unsubscribe, unsubscribe)
	}
}

// disarm releases every subscription exactly once.
func (d *dismissalCoordinator) disarm() {
	if !d.armed {
		return
	}
	d.armed = false

	subs := d.unsubscribe
	d.unsubscribe = nil
	for _, unsubscribe := range subs {
		unsubscribe()
	}
}

// outside reports whether a press at screen point root landed beyond the
// popup while it is shown.
func (d *dismissalCoordinator) outside(root Point) bool {
	return d.armed && !d.bounds.Contains(root)
}

// pointerPress handles trigger (a): a press the popup surface saw but which
// falls outside its rectangle, e.g. during a pointer grab. It returns true
// when the press caused a dismissal.
func (d *dismissalCoordinator) pointerPress(root Point) bool {
	if !d.outside(root) {
		return false
	}
	d.fire(DismissOutsideClick)
	return true
}

func (d *dismissalCoordinator) fire(reason DismissReason) {
	if !d.armed || d.onDismiss == nil {
		return
	}
	d.onDismiss(reason)
}
