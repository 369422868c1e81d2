// Package render.go renders one widget's box model line: borders with
// optional titles, padding, the widget's content strips, scrollbars and
// the background, tint and opacity treatments. The compositor slices the
// resulting strips per visible span.

package schirmwerk

import "strings"

// baseStyle derives the ambient text style of a widget from its computed
// styles: text color, background and text attributes.
func baseStyle(st *Styles) Style {
	style := st.TextStyle
	if st.HasColor {
		fg := st.Color
		style.FG = &fg
	}
	if !st.Background.IsTransparent() {
		bg := st.Background
		if !st.BackgroundTint.IsTransparent() {
			bg = bg.Tint(st.BackgroundTint)
		}
		style.BG = &bg
	}
	return style
}

// stripOnBase layers every segment's own style over the base style, so
// content spans keep their overrides while unset fields fall back to the
// widget's ambient style.
func stripOnBase(strip Strip, base Style) Strip {
	segments := strip.Segments()
	styled := make([]Segment, len(segments))
	for i, segment := range segments {
		styled[i] = Segment{Text: segment.Text, Style: base.Combine(segment.Style)}
	}
	return NewStrip(styled...)
}

// renderWidgetLine produces the full-width strip for one line of a
// widget's outer region. The line index is relative to the region top.
func renderWidgetLine(w Widget, line int) Strip {
	base := w.Base()
	st := w.Styles()
	region := base.Region()
	width := region.Width
	if width <= 0 || line < 0 || line >= region.Height {
		return Strip{}
	}

	ambient := baseStyle(st)
	borders := st.BorderSpacing()

	var strip Strip
	switch {
	case line < borders.Top:
		strip = borderLine(w, width, true, ambient)
	case line >= region.Height-borders.Bottom:
		strip = borderLine(w, width, false, ambient)
	default:
		inner := width - borders.Horizontal()
		strip = innerLine(w, line-borders.Top, inner, ambient)
		if borders.Left > 0 {
			strip = NewStrip(Segment{
				Text:  string(edgeRunes(st, EdgeLeft).Left),
				Style: borderStyle(st, EdgeLeft, ambient),
			}).Join(strip)
		}
		if borders.Right > 0 {
			strip = strip.Join(NewStrip(Segment{
				Text:  string(edgeRunes(st, EdgeRight).Right),
				Style: borderStyle(st, EdgeRight, ambient),
			}))
		}
	}
	if !st.Tint.IsTransparent() {
		strip = tintStrip(strip, st.Tint)
	}
	return applyOpacity(strip, st)
}

// innerLine renders the area inside the border: padding, content,
// scrollbars.
func innerLine(w Widget, line, width int, ambient Style) Strip {
	base := w.Base()
	st := w.Styles()
	region := base.Region()
	borders := st.BorderSpacing()
	innerHeight := region.Height - borders.Vertical()
	bars := base.ScrollbarSizes()

	// Horizontal scrollbar band at the bottom of the inner area.
	if bars.Height > 0 && line >= innerHeight-bars.Height {
		return horizontalScrollbar(w, width-bars.Width, ambient).
			Join(BlankStrip(bars.Width, ambient))
	}

	contentWidth := width - st.Padding.Horizontal() - bars.Width
	contentHeight := innerHeight - st.Padding.Vertical() - bars.Height
	contentLine := line - st.Padding.Top

	var body Strip
	if contentLine < 0 || contentLine >= contentHeight || contentWidth <= 0 {
		body = blankContent(st, max(contentWidth, 0), ambient)
	} else {
		body = contentStrip(w, contentLine, contentWidth, contentHeight, ambient)
	}

	strip := BlankStrip(st.Padding.Left, ambient).
		Join(body, BlankStrip(st.Padding.Right, ambient))
	if bars.Width > 0 {
		strip = strip.Join(verticalScrollbar(w, line, innerHeight-bars.Height, ambient))
	}
	return strip
}

// contentStrip fetches a content line from the widget, honoring vertical
// content alignment and the scroll offset.
func contentStrip(w Widget, line, width, height int, ambient Style) Strip {
	base := w.Base()
	st := w.Styles()
	virtual := base.VirtualSize()
	scroll := base.ScrollOffset()

	// Vertical content alignment shifts short content inside the box.
	contentRows := max(virtual.Height, 0)
	if contentRows == 0 {
		contentRows = height
	}
	shift := 0
	if contentRows < height {
		shift = alignShift(height-contentRows, alignVFactor(st.ContentAlignVertical))
	}

	virtualLine := line - shift + scroll.Y
	if virtualLine < 0 || (virtual.Height > 0 && virtualLine >= virtual.Height) {
		return blankContent(st, width, ambient)
	}

	renderWidth := max(width, virtual.Width)
	strip := base.cachedLine(virtualLine, renderWidth)
	strip = strip.AdjustLength(renderWidth, ambient)
	if scroll.X > 0 || renderWidth > width {
		strip = strip.Crop(scroll.X, scroll.X+width)
	}
	strip = stripOnBase(strip, ambient).AdjustLength(width, ambient)

	// Horizontal content alignment for content narrower than the box is
	// the widget's concern (it renders at the given width); nothing to
	// do here.
	return strip
}

// blankContent fills empty content rows with the background or hatch.
func blankContent(st *Styles, width int, ambient Style) Strip {
	if width <= 0 {
		return Strip{}
	}
	if st.Hatch.Rune != 0 {
		hatch := ambient
		fg := st.Hatch.Color
		hatch.FG = &fg
		return NewStrip(Segment{
			Text:  strings.Repeat(string(st.Hatch.Rune), width),
			Style: hatch,
		})
	}
	return BlankStrip(width, ambient)
}

// borderLine renders the top or bottom border row including the border
// title or subtitle.
func borderLine(w Widget, width int, top bool, ambient Style) Strip {
	st := w.Styles()
	edge := EdgeTop
	if !top {
		edge = EdgeBottom
	}
	runes := edgeRunes(st, edge)
	style := borderStyle(st, edge, ambient)

	var left, middle, right rune
	if top {
		left, middle, right = runes.TopLeft, runes.Top, runes.TopRight
	} else {
		left, middle, right = runes.BottomLeft, runes.Bottom, runes.BottomRight
	}
	if width == 1 {
		return NewStrip(Segment{Text: string(middle), Style: style})
	}

	inner := width - 2
	label := st.BorderTitle
	align := st.BorderTitleAlign
	if !top {
		label = st.BorderSubtitle
		align = st.BorderSubtitleAlign
	}

	var body Strip
	if label != "" && inner > 2 {
		text := " " + label + " "
		if cellWidth(text) > inner {
			text = string([]rune(text)[:inner])
		}
		labelStrip := NewStrip(Segment{Text: text, Style: ambient})
		pad := inner - labelStrip.CellLength()
		leading := alignShift(pad, int(align))
		body = NewStrip(Segment{Text: strings.Repeat(string(middle), leading), Style: style}).
			Join(labelStrip,
				NewStrip(Segment{Text: strings.Repeat(string(middle), pad-leading), Style: style}))
	} else {
		body = NewStrip(Segment{Text: strings.Repeat(string(middle), inner), Style: style})
	}

	return NewStrip(Segment{Text: string(left), Style: style}).
		Join(body, NewStrip(Segment{Text: string(right), Style: style}))
}

func edgeRunes(st *Styles, edge int) BorderRunes {
	kind := st.Border[edge].Kind
	if runes, ok := borderRunes[kind]; ok {
		return runes
	}
	return borderRunes["solid"]
}

func borderStyle(st *Styles, edge int, ambient Style) Style {
	style := ambient
	if !st.Border[edge].Color.IsTransparent() {
		fg := st.Border[edge].Color
		style.FG = &fg
	}
	return style
}

// verticalScrollbar renders the cells of the vertical scrollbar band for
// one inner line.
func verticalScrollbar(w Widget, line, trackHeight int, ambient Style) Strip {
	base := w.Base()
	bars := base.ScrollbarSizes()
	if bars.Width <= 0 || trackHeight <= 0 {
		return Strip{}
	}
	virtual := base.VirtualSize().Height
	window := trackHeight
	start, end := thumbRange(window, virtual, base.ScrollOffset().Y, trackHeight)

	glyph := "▐"
	if bars.Width > 1 {
		glyph = "█"
	}
	cellText := strings.Repeat(" ", bars.Width)
	if line >= start && line < end {
		cellText = strings.Repeat(glyph, bars.Width)
	}
	return NewStrip(Segment{Text: cellText, Style: ambient})
}

// horizontalScrollbar renders the horizontal scrollbar band.
func horizontalScrollbar(w Widget, width int, ambient Style) Strip {
	base := w.Base()
	if width <= 0 {
		return Strip{}
	}
	virtual := base.VirtualSize().Width
	start, end := thumbRange(width, virtual, base.ScrollOffset().X, width)
	var b strings.Builder
	for x := 0; x < width; x++ {
		if x >= start && x < end {
			b.WriteString("▄")
		} else {
			b.WriteString(" ")
		}
	}
	return NewStrip(Segment{Text: b.String(), Style: ambient})
}

// thumbRange computes the scrollbar thumb cells for a window over virtual
// content.
func thumbRange(window, virtual, offset, track int) (int, int) {
	if virtual <= window || virtual == 0 || track <= 0 {
		return 0, track
	}
	size := max(window*track/virtual, 1)
	maxOffset := virtual - window
	position := 0
	if maxOffset > 0 {
		position = offset * (track - size) / maxOffset
	}
	return position, min(position+size, track)
}

// applyOpacity multiplies the strip's color alphas by the widget's
// opacity properties.
func applyOpacity(strip Strip, st *Styles) Strip {
	if st.Opacity >= 1 && st.TextOpacity >= 1 {
		return strip
	}
	segments := strip.Segments()
	faded := make([]Segment, len(segments))
	for i, segment := range segments {
		style := segment.Style
		if style.FG != nil {
			fg := style.FG.MultiplyAlpha(st.Opacity * st.TextOpacity)
			style.FG = &fg
		}
		if style.BG != nil {
			bg := style.BG.MultiplyAlpha(st.Opacity)
			style.BG = &bg
		}
		faded[i] = Segment{Text: segment.Text, Style: style}
	}
	return NewStrip(faded...)
}
