// Package content.go implements the Content value: styled, possibly
// multi-line text that widgets lay out into strips at a given width.

package schirmwerk

import (
	"sort"
	"strings"
)

// TextWrap selects how content lines break at the render width.
type TextWrap int8

const (
	WrapWord TextWrap = iota // break between words, fold overlong words
	WrapChar                 // break at any grapheme
	WrapNone                 // no breaking; strips keep their natural width
)

// TextOverflow selects what happens to content wider than the render width.
type TextOverflow int8

const (
	OverflowFold     TextOverflow = iota // hard-break overlong runs
	OverflowClip                         // truncate at the width
	OverflowEllipsis                     // truncate and end with an ellipsis
)

// TextAlign selects horizontal placement of short lines within the width.
type TextAlign int8

const (
	AlignTextLeft TextAlign = iota
	AlignTextCenter
	AlignTextRight
)

// Span applies a style to the byte range [Start, End) of a content's text.
type Span struct {
	Start, End int
	Style      Style
}

// Content is styled text plus a base style: either plain or parsed from
// markup, or wrapped around pre-built strips. Content values are immutable.
type Content struct {
	text   string
	spans  []Span
	base   Style
	strips []Strip // set instead of text for pre-rendered content
}

// NewContent creates plain, unstyled content.
func NewContent(text string) Content {
	return Content{text: text}
}

// ContentFromMarkup parses markup, failing with ErrMarkup on bad input.
func ContentFromMarkup(markup string) (Content, error) {
	return ParseMarkup(markup, nil)
}

// MustContent parses markup and falls back to the raw text styled with an
// inline warning when the markup is malformed, so rendering always
// proceeds.
func MustContent(markup string) Content {
	content, err := ParseMarkup(markup, nil)
	if err != nil {
		warn := NewColor(255, 0, 0)
		return Content{
			text:  markup,
			spans: []Span{{Start: 0, End: len(markup), Style: Style{FG: &warn, Underline: TriOn}}},
		}
	}
	return content
}

// ContentFromStrips wraps pre-built strips as content.
func ContentFromStrips(strips []Strip) Content {
	return Content{strips: strips}
}

// WithBase returns the content with the given base style.
func (c Content) WithBase(style Style) Content {
	c.base = style
	return c
}

// Text returns the plain text of the content.
func (c Content) Text() string {
	if c.strips != nil {
		lines := make([]string, len(c.strips))
		for i, strip := range c.strips {
			lines[i] = strip.Text()
		}
		return strings.Join(lines, "\n")
	}
	return c.text
}

// Spans returns the styled ranges of the content.
func (c Content) Spans() []Span {
	return c.spans
}

// Width returns the cell width of the widest line.
func (c Content) Width() int {
	width := 0
	if c.strips != nil {
		for _, strip := range c.strips {
			width = max(width, strip.CellLength())
		}
		return width
	}
	for line := range strings.SplitSeq(c.text, "\n") {
		width = max(width, cellWidth(line))
	}
	return width
}

// RenderOptions controls how content is laid out into strips.
type RenderOptions struct {
	Wrap     TextWrap
	Overflow TextOverflow
	Align    TextAlign
}

// Render lays the content out into strips of exactly the given width, or of
// their natural width when wrapping is disabled. A non-positive width with
// wrapping enabled produces natural-width strips as well.
func (c Content) Render(width int, opts RenderOptions) []Strip {
	if c.strips != nil {
		return c.renderStrips(width, opts)
	}

	var result []Strip
	for _, line := range c.lines() {
		result = append(result, c.renderLine(line, width, opts)...)
	}
	if len(result) == 0 {
		if width > 0 && opts.Wrap != WrapNone {
			result = []Strip{BlankStrip(width, c.base)}
		} else {
			result = []Strip{{}}
		}
	}
	return result
}

func (c Content) renderStrips(width int, opts RenderOptions) []Strip {
	result := make([]Strip, len(c.strips))
	for i, strip := range c.strips {
		if width > 0 && opts.Wrap != WrapNone {
			strip = c.finishStrip(strip, width, opts)
		}
		result[i] = strip
	}
	return result
}

// lineRange is one source line as a byte range into the content text.
type lineRange struct {
	start, end int
}

func (c Content) lines() []lineRange {
	var result []lineRange
	start := 0
	for i := 0; i <= len(c.text); i++ {
		if i == len(c.text) || c.text[i] == '\n' {
			result = append(result, lineRange{start, i})
			start = i + 1
		}
	}
	return result
}

func (c Content) renderLine(line lineRange, width int, opts RenderOptions) []Strip {
	if width <= 0 || opts.Wrap == WrapNone {
		return []Strip{NewStrip(c.styledSlice(line.start, line.end)...)}
	}

	var raw []Strip
	switch opts.Wrap {
	case WrapChar:
		strip := NewStrip(c.styledSlice(line.start, line.end)...)
		raw = foldStrip(strip, width)
	default:
		raw = c.wrapWords(line, width, opts)
	}

	result := make([]Strip, len(raw))
	for i, strip := range raw {
		result[i] = c.finishStrip(strip, width, opts)
	}
	return result
}

// wrapWords performs greedy word wrapping of a source line. Words wider
// than the width are folded unless overflow asks for clipping.
func (c Content) wrapWords(line lineRange, width int, opts RenderOptions) []Strip {
	words := wordRanges(c.text, line.start, line.end)
	if len(words) == 0 {
		return []Strip{{}}
	}

	var result []Strip
	var current Strip
	for _, word := range words {
		piece := NewStrip(c.styledSlice(word.start, word.end)...)
		space := 0
		if current.CellLength() > 0 {
			space = 1
		}
		if current.CellLength()+space+piece.CellLength() <= width {
			if space > 0 {
				current = current.Join(NewStrip(Segment{Text: " ", Style: c.base}))
			}
			current = current.Join(piece)
			continue
		}
		if current.CellLength() > 0 {
			result = append(result, current)
			current = Strip{}
		}
		if piece.CellLength() > width && opts.Overflow == OverflowFold {
			folded := foldStrip(piece, width)
			result = append(result, folded[:len(folded)-1]...)
			current = folded[len(folded)-1]
			continue
		}
		current = piece
	}
	result = append(result, current)
	return result
}

// foldStrip hard-breaks a strip into width-sized pieces.
func foldStrip(strip Strip, width int) []Strip {
	if strip.CellLength() <= width {
		return []Strip{strip}
	}
	var result []Strip
	for start := 0; start < strip.CellLength(); start += width {
		end := min(start+width, strip.CellLength())
		result = append(result, strip.Crop(start, end))
	}
	return result
}

// finishStrip applies overflow handling, alignment and padding so that the
// strip is exactly the requested width.
func (c Content) finishStrip(strip Strip, width int, opts RenderOptions) Strip {
	if strip.CellLength() > width {
		switch opts.Overflow {
		case OverflowEllipsis:
			strip = strip.Crop(0, max(width-1, 0)).Join(NewStrip(Segment{Text: "…", Style: c.base}))
		default:
			strip = strip.Crop(0, width)
		}
	}
	if strip.CellLength() < width {
		pad := width - strip.CellLength()
		switch opts.Align {
		case AlignTextCenter:
			left := pad / 2
			strip = BlankStrip(left, c.base).Join(strip).Extend(width, c.base)
		case AlignTextRight:
			strip = BlankStrip(pad, c.base).Join(strip)
		default:
			strip = strip.Extend(width, c.base)
		}
	}
	return strip
}

// styledSlice returns the byte range of the text as segments with all
// covering span styles layered over the base style. Spans opened earlier
// sit lower in the stack, so inner tags override outer tags.
func (c Content) styledSlice(start, end int) []Segment {
	if start >= end {
		return nil
	}

	// Collect the boundaries that fall inside the range.
	bounds := []int{start, end}
	for _, span := range c.spans {
		if span.Start > start && span.Start < end {
			bounds = append(bounds, span.Start)
		}
		if span.End > start && span.End < end {
			bounds = append(bounds, span.End)
		}
	}
	sort.Ints(bounds)

	var segments []Segment
	for i := 0; i+1 < len(bounds); i++ {
		from, to := bounds[i], bounds[i+1]
		if from == to {
			continue
		}
		style := c.base
		for _, span := range c.spans {
			if span.Start <= from && to <= span.End {
				style = style.Combine(span.Style)
			}
		}
		segments = append(segments, NewSegment(c.text[from:to], style))
	}
	return segments
}

// wordRange is the byte range of one word in the content text.
type wordRange struct {
	start, end int
}

func wordRanges(text string, start, end int) []wordRange {
	var result []wordRange
	i := start
	for i < end {
		for i < end && text[i] == ' ' {
			i++
		}
		if i >= end {
			break
		}
		wordStart := i
		for i < end && text[i] != ' ' {
			i++
		}
		result = append(result, wordRange{wordStart, i})
	}
	return result
}

// Markup converts the content back to inline markup text. Brackets in the
// text are escaped; spans emit open tags with canonical style tokens and
// anonymous close tags.
func (c Content) Markup() string {
	type event struct {
		pos   int
		open  bool
		order int
		style Style
	}
	var events []event
	for i, span := range c.spans {
		events = append(events, event{pos: span.Start, open: true, order: i, style: span.Style})
		events = append(events, event{pos: span.End, open: false, order: i, style: span.Style})
	}
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].pos != events[b].pos {
			return events[a].pos < events[b].pos
		}
		// Closes before opens at the same position; outer opens first.
		if events[a].open != events[b].open {
			return !events[a].open
		}
		if events[a].open {
			return events[a].order < events[b].order
		}
		return events[a].order > events[b].order
	})

	var b strings.Builder
	pos := 0
	emit := func(to int) {
		b.WriteString(strings.ReplaceAll(c.text[pos:to], "[", "\\["))
		pos = to
	}
	for _, ev := range events {
		emit(ev.pos)
		if ev.open {
			b.WriteString("[" + ev.style.Markup() + "]")
		} else {
			b.WriteString("[/]")
		}
	}
	emit(len(c.text))
	return b.String()
}
