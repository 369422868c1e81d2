// Package strip.go implements the Strip type: the styled content of exactly
// one terminal line. Strips are immutable; every operation returns a new
// strip, and after every operation the sum of the segment cell widths
// equals the strip's cell length.

package schirmwerk

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Strip is an ordered list of segments spanning exactly one line.
type Strip struct {
	segments []Segment
	length   int
}

// NewStrip creates a strip from segments. Empty segments are dropped.
func NewStrip(segments ...Segment) Strip {
	kept := make([]Segment, 0, len(segments))
	length := 0
	for _, segment := range segments {
		if segment.Text == "" {
			continue
		}
		kept = append(kept, segment)
		length += segment.Width()
	}
	return Strip{segments: kept, length: length}
}

// BlankStrip creates a strip of the given width filled with spaces.
func BlankStrip(width int, style Style) Strip {
	if width <= 0 {
		return Strip{}
	}
	return Strip{
		segments: []Segment{{Text: strings.Repeat(" ", width), Style: style}},
		length:   width,
	}
}

// Segments returns the strip's segments. The returned slice must not be
// modified.
func (s Strip) Segments() []Segment {
	return s.segments
}

// CellLength returns the width of the strip in cells.
func (s Strip) CellLength() int {
	return s.length
}

// Text returns the unstyled text of the strip.
func (s Strip) Text() string {
	var b strings.Builder
	for _, segment := range s.segments {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// Crop returns the strip restricted to the cell range [start, end).
// Segments crossing a boundary are split; a double-width cell cut in the
// middle becomes a space of the segment's style.
func (s Strip) Crop(start, end int) Strip {
	start = clamp(start, 0, s.length)
	end = clamp(end, start, s.length)
	if start == 0 && end == s.length {
		return s
	}
	if start == end {
		return Strip{}
	}

	var result []Segment
	pos := 0
	for _, segment := range s.segments {
		width := segment.Width()
		if pos+width <= start {
			pos += width
			continue
		}
		if pos >= end {
			break
		}
		piece := segment
		if pos < start {
			_, piece = segment.SplitAt(start - pos)
		}
		offset := max(pos, start)
		if offset+piece.Width() > end {
			piece, _ = piece.SplitAt(end - offset)
		}
		if piece.Text != "" {
			result = append(result, piece)
		}
		pos += width
	}
	return Strip{segments: result, length: end - start}
}

// Extend pads the strip with spaces of the given style up to the width.
// A strip already at least that wide is returned unchanged.
func (s Strip) Extend(width int, style Style) Strip {
	if width <= s.length {
		return s
	}
	padded := make([]Segment, len(s.segments), len(s.segments)+1)
	copy(padded, s.segments)
	padded = append(padded, Segment{Text: strings.Repeat(" ", width-s.length), Style: style})
	return Strip{segments: padded, length: width}
}

// AdjustLength crops or extends the strip to exactly the given width.
func (s Strip) AdjustLength(width int, style Style) Strip {
	if s.length == width {
		return s
	}
	if s.length > width {
		return s.Crop(0, width)
	}
	return s.Extend(width, style)
}

// ApplyStyle layers the given style over every segment of the strip.
func (s Strip) ApplyStyle(style Style) Strip {
	if style.IsZero() {
		return s
	}
	styled := make([]Segment, len(s.segments))
	for i, segment := range s.segments {
		styled[i] = segment.WithStyle(style)
	}
	return Strip{segments: styled, length: s.length}
}

// Join concatenates the strips; the cell lengths sum.
func (s Strip) Join(others ...Strip) Strip {
	segments := make([]Segment, len(s.segments))
	copy(segments, s.segments)
	length := s.length
	for _, other := range others {
		segments = append(segments, other.segments...)
		length += other.length
	}
	return Strip{segments: segments, length: length}
}

// JoinStrips concatenates a list of strips into one.
func JoinStrips(strips []Strip) Strip {
	if len(strips) == 0 {
		return Strip{}
	}
	return strips[0].Join(strips[1:]...)
}

// Divide cuts the strip at the given sorted cell offsets and returns the
// pieces between consecutive cuts, starting at 0 and ending at the strip's
// cell length.
func (s Strip) Divide(cuts []int) []Strip {
	result := make([]Strip, 0, len(cuts)+1)
	previous := 0
	for _, cut := range cuts {
		cut = clamp(cut, previous, s.length)
		result = append(result, s.Crop(previous, cut))
		previous = cut
	}
	result = append(result, s.Crop(previous, s.length))
	return result
}

// Simplify merges adjacent segments sharing an identical style.
func (s Strip) Simplify() Strip {
	if len(s.segments) < 2 {
		return s
	}
	merged := make([]Segment, 0, len(s.segments))
	current := s.segments[0]
	for _, segment := range s.segments[1:] {
		if segment.Style.Equal(current.Style) {
			current.Text += segment.Text
			continue
		}
		merged = append(merged, current)
		current = segment
	}
	merged = append(merged, current)
	return Strip{segments: merged, length: s.length}
}

// Equal reports whether two strips render identically: same cell length and
// the same styled text after merging equal-styled neighbors.
func (s Strip) Equal(other Strip) bool {
	if s.length != other.length {
		return false
	}
	a := s.Simplify().segments
	b := other.Simplify().segments
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Text != b[i].Text || !a[i].Style.Equal(b[i].Style) {
			return false
		}
	}
	return true
}

// Change describes a replaced cell range within a line: the cells
// [Start, End) are overwritten by the given segments.
type Change struct {
	Start    int
	End      int
	Segments []Segment
}

// Changes compares two strips of equal length and returns the differing
// cell ranges with the replacement segments from the other strip. Equal
// strips produce no changes; strips of different lengths produce a single
// change covering the other strip entirely.
func (s Strip) Changes(other Strip) []Change {
	if s.length != other.length {
		return []Change{{Start: 0, End: other.length, Segments: other.segments}}
	}
	if s.Equal(other) {
		return nil
	}

	// Walk both strips cell by cell to find differing runs. Cells are
	// compared by their grapheme and effective style.
	before := s.cells()
	after := other.cells()
	if len(before) != len(after) {
		return []Change{{Start: 0, End: other.length, Segments: other.segments}}
	}
	var changes []Change
	i := 0
	for i < len(after) {
		if cellEqual(before[i], after[i]) {
			i++
			continue
		}
		start := i
		for i < len(after) && !cellEqual(before[i], after[i]) {
			i++
		}
		changes = append(changes, Change{
			Start:    start,
			End:      i,
			Segments: other.Crop(start, i).segments,
		})
	}
	return changes
}

// cell is one terminal cell for diffing: its grapheme (empty for the
// trailing half of a wide character) and style.
type cell struct {
	grapheme string
	style    Style
}

func cellEqual(a, b cell) bool {
	return a.grapheme == b.grapheme && a.style.Equal(b.style)
}

func (s Strip) cells() []cell {
	result := make([]cell, 0, s.length)
	for _, segment := range s.segments {
		graphemes := uniseg.NewGraphemes(segment.Text)
		for graphemes.Next() {
			cluster := graphemes.Str()
			width := cellWidth(cluster)
			result = append(result, cell{grapheme: cluster, style: segment.Style})
			for w := 1; w < width; w++ {
				result = append(result, cell{grapheme: "", style: segment.Style})
			}
		}
	}
	return result
}

func (s Strip) String() string {
	return s.Text()
}
