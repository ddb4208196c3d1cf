package optionmenu

import (
	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// Metrics holds every size the popup layout depends on.
type Metrics struct {
	MinWidth            int32   `toml:"min_width"`
	MaxWidth            int32   `toml:"max_width"`
	ItemHeight          int32   `toml:"item_height"`
	GroupLabelHeight    int32   `toml:"group_label_height"`
	VerticalPadding     int32   `toml:"vertical_padding"`
	HorizontalPadding   int32   `toml:"horizontal_padding"` // total, both sides
	TextInset           int32   `toml:"text_inset"`
	GroupChildIndent    int32   `toml:"group_child_indent"`
	RowInset            int32   `toml:"row_inset"`
	MaxVisibleItems     int32   `toml:"max_visible_items"`
	CornerRadius        float64 `toml:"corner_radius"`
	BorderWidth         float64 `toml:"border_width"`
	FontSize            float64 `toml:"font_size"`
	ScrollIndicatorSize int32   `toml:"scroll_indicator_size"`
}

// DefaultMetrics returns the stock popup metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		MinWidth:            constants.DefaultMinWidth,
		MaxWidth:            constants.DefaultMaxWidth,
		ItemHeight:          constants.DefaultItemHeight,
		GroupLabelHeight:    constants.DefaultGroupLabelHeight,
		VerticalPadding:     constants.DefaultVerticalPadding,
		HorizontalPadding:   constants.DefaultHorizontalPadding,
		TextInset:           constants.DefaultTextInset,
		GroupChildIndent:    constants.DefaultGroupChildIndent,
		RowInset:            constants.DefaultRowInset,
		MaxVisibleItems:     constants.DefaultMaxVisibleItems,
		CornerRadius:        constants.DefaultCornerRadius,
		BorderWidth:         constants.DefaultBorderWidth,
		FontSize:            constants.DefaultFontSize,
		ScrollIndicatorSize: constants.DefaultScrollIndicatorSize,
	}
}

// withDefaults fills zero fields from DefaultMetrics so partial configs work.
func (m Metrics) withDefaults() Metrics {
	d := DefaultMetrics()
	fill32 := func(v *int32, def int32) {
		if *v <= 0 {
			*v = def
		}
	}
	fill64 := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}

	fill32(&m.MinWidth, d.MinWidth)
	fill32(&m.MaxWidth, d.MaxWidth)
	fill32(&m.ItemHeight, d.ItemHeight)
	fill32(&m.GroupLabelHeight, d.GroupLabelHeight)
	fill32(&m.VerticalPadding, d.VerticalPadding)
	fill32(&m.HorizontalPadding, d.HorizontalPadding)
	fill32(&m.TextInset, d.TextInset)
	fill32(&m.GroupChildIndent, d.GroupChildIndent)
	fill32(&m.RowInset, d.RowInset)
	fill32(&m.MaxVisibleItems, d.MaxVisibleItems)
	fill64(&m.CornerRadius, d.CornerRadius)
	fill64(&m.BorderWidth, d.BorderWidth)
	fill64(&m.FontSize, d.FontSize)
	fill32(&m.ScrollIndicatorSize, d.ScrollIndicatorSize)

	if m.MaxWidth < m.MinWidth {
		m.MaxWidth = m.MinWidth
	}
	return m
}

func (m Metrics) padding() internal.Padding {
	return internal.SymmetricPadding(m.VerticalPadding, m.HorizontalPadding/2)
}

func (m Metrics) rowHeight(item MenuItem) int32 {
	if item.IsGroupLabel {
		return m.GroupLabelHeight
	}
	return m.ItemHeight
}

// visibleHeight is the part of the popup that shows rows.
func (m Metrics) visibleHeight(height int32) int32 {
	return internal.Max32(0, height-m.padding().Vertical())
}

// computeSize measures the labels and returns the popup size and the total
// height of all rows. minWidth, the width of the originating control, only
// ever widens the result.
func computeSize(items []MenuItem, m Metrics, text TextMeasurer, minWidth int32) (Size, int32) {
	pad := m.padding()

	var maxLabel, content int32
	for _, item := range items {
		if text != nil {
			maxLabel = internal.Max32(maxLabel, text.MeasureText(item.Label, item.IsGroupLabel))
		}
		content += m.rowHeight(item)
	}

	width := internal.Clamp32(maxLabel+pad.Horizontal(), m.MinWidth, m.MaxWidth)
	width = internal.Max32(width, minWidth)

	maxHeight := m.MaxVisibleItems*m.ItemHeight + pad.Vertical()
	height := internal.Clamp32(content+pad.Vertical(), pad.Vertical(), maxHeight)

	return Size{W: width, H: height}, content
}

// computePosition places a popup of the given size at anchor, then shifts it
// left, flips it above the anchor, and finally clamps it to the top-left of
// screen, in that order.
func computePosition(anchor Point, screen Rect, size Size) Point {
	x, y := anchor.X, anchor.Y

	if x+size.W > screen.Right() {
		x = screen.Right() - size.W
	}
	if y+size.H > screen.Bottom() {
		y -= size.H
		// An anchor below the monitor's bottom edge still has to land on it.
		if y+size.H > screen.Bottom() {
			y = screen.Bottom() - size.H
		}
	}
	if x < screen.X {
		x = screen.X
	}
	if y < screen.Y {
		y = screen.Y
	}

	return Point{X: x, Y: y}
}

// rowTop returns the content-space offset of the row at index.
func rowTop(items []MenuItem, m Metrics, index int) int32 {
	var y int32
	for i := 0; i < index && i < len(items); i++ {
		y += m.rowHeight(items[i])
	}
	return y
}
