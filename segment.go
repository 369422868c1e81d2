package schirmwerk

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is a maximal run of text sharing a single style. The text never
// contains newlines; multi-line content is expressed as one Strip per line.
type Segment struct {
	Text  string
	Style Style
}

// NewSegment creates a segment. Newlines in the text are replaced by
// spaces; a segment always stays on one line.
func NewSegment(text string, style Style) Segment {
	if strings.ContainsRune(text, '\n') {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	return Segment{Text: text, Style: style}
}

// Width returns the cell width of the segment. Wide East-Asian characters
// and emoji count two cells, zero-width joiners count zero.
func (s Segment) Width() int {
	return cellWidth(s.Text)
}

// WithStyle returns the segment with the given style layered over its own.
func (s Segment) WithStyle(style Style) Segment {
	return Segment{Text: s.Text, Style: s.Style.Combine(style)}
}

// SplitAt splits the segment at the given cell offset. A double-width
// grapheme straddling the cut is replaced by single spaces in the segment's
// style on both sides, so both halves keep exact cell widths.
func (s Segment) SplitAt(at int) (Segment, Segment) {
	total := s.Width()
	if at <= 0 {
		return Segment{Text: "", Style: s.Style}, s
	}
	if at >= total {
		return s, Segment{Text: "", Style: s.Style}
	}

	var head strings.Builder
	pos := 0
	headPad := 0
	tailPad := 0
	consumed := 0
	graphemes := uniseg.NewGraphemes(s.Text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		width := cellWidth(cluster)
		if pos+width > at {
			if pos < at {
				// A wide grapheme straddles the cut.
				headPad = at - pos
				tailPad = pos + width - at
				_, consumed = graphemes.Positions()
			} else {
				consumed, _ = graphemes.Positions()
			}
			break
		}
		head.WriteString(cluster)
		pos += width
		_, consumed = graphemes.Positions()
	}
	head.WriteString(strings.Repeat(" ", headPad))
	tail := strings.Repeat(" ", tailPad) + s.Text[consumed:]
	return Segment{Text: head.String(), Style: s.Style}, Segment{Text: tail, Style: s.Style}
}

// cellWidth measures the cell width of a string, accounting for wide
// characters, combining marks and zero-width joiner sequences.
func cellWidth(text string) int {
	if text == "" {
		return 0
	}
	if isASCII(text) {
		return len(text)
	}
	width := 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		width += runewidth.StringWidth(graphemes.Str())
	}
	return width
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return false
		}
	}
	return true
}
