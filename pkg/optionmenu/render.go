package optionmenu

import (
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// paint draws one frame. It reads state and never changes it.
func paint(s Surface, st PopupState, items []MenuItem, m Metrics, theme internal.Theme) {
	body := Rect{W: st.Width, H: st.Height}
	s.FillRoundedRect(body, m.CornerRadius, theme.BackgroundColor)
	s.StrokeRoundedRect(body, m.CornerRadius, m.BorderWidth, theme.BorderColor)

	pad := m.padding()
	band := Rect{X: 0, Y: pad.Top, W: st.Width, H: m.visibleHeight(st.Height)}

	s.SetClip(band)
	y := band.Y - st.ScrollOffset
	for i, item := range items {
		h := m.rowHeight(item)
		row := Rect{X: 0, Y: y, W: st.Width, H: h}
		y += h

		if row.Bottom() <= band.Y {
			continue
		}
		if row.Y >= band.Bottom() {
			break
		}
		paintRow(s, i, item, row, st, m, theme)
	}
	s.ResetClip()

	paintScrollIndicators(s, st, band.H, m, theme)
}

func paintRow(s Surface, index int, item MenuItem, row Rect, st PopupState, m Metrics, theme internal.Theme) {
	if item.IsGroupLabel {
		if item.Label != "" {
			bounds := Rect{X: m.TextInset, Y: row.Y, W: row.W - 2*m.TextInset, H: row.H}
			s.DrawText(item.Label, bounds, TextStyle{Color: theme.GroupLabelColor, Bold: true})
		}
		return
	}

	hovered := index == st.HoveredIndex && item.Enabled
	fill := Rect{X: m.RowInset, Y: row.Y, W: row.W - 2*m.RowInset, H: row.H}

	switch {
	case hovered:
		s.FillRect(fill, theme.HoverColor)
	case item.Selected:
		s.FillRect(fill, theme.SelectedColor)
	}

	if item.Label == "" {
		return
	}

	x := m.TextInset
	if item.IsGroupChild {
		x += m.GroupChildIndent
	}

	textColor := theme.TextColor
	switch {
	case !item.Enabled:
		textColor = theme.DisabledTextColor
	case hovered:
		textColor = theme.HighlightedTextColor
	}

	bounds := Rect{X: x, Y: row.Y, W: row.W - x - m.TextInset, H: row.H}
	s.DrawText(item.Label, bounds, TextStyle{Color: textColor})
}

// paintScrollIndicators draws the up and down triangles when rows are hidden
// above or below the viewport.
func paintScrollIndicators(s Surface, st PopupState, visible int32, m Metrics, theme internal.Theme) {
	if st.ContentHeight <= visible {
		return
	}

	size := m.ScrollIndicatorSize
	cx := st.Width / 2

	if st.ScrollOffset > 0 {
		s.FillTriangle(
			Point{X: cx, Y: size},
			Point{X: cx - size, Y: 2 * size},
			Point{X: cx + size, Y: 2 * size},
			theme.ScrollIndicatorColor,
		)
	}

	if st.ScrollOffset < st.ContentHeight-visible {
		s.FillTriangle(
			Point{X: cx, Y: st.Height - size},
			Point{X: cx - size, Y: st.Height - 2*size},
			Point{X: cx + size, Y: st.Height - 2*size},
			theme.ScrollIndicatorColor,
		)
	}
}
