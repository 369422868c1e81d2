// Package grid-layout.go implements the grid flow pass: resolving column
// widths and row heights from the grid properties and placing children in
// row-major order with column and row spans.

package schirmwerk

import "math"

// flowGrid arranges children in a grid within the region and returns the
// virtual size of the arranged content.
func flowGrid(container Widget, flow []Widget, region Region, viewport Size) Size {
	styles := container.Styles()
	space := region.Size()

	columns := styles.GridSizeColumns
	if columns == 0 {
		columns = max(len(styles.GridColumns), 1)
	}
	gutterH := styles.GridGutterHorizontal
	gutterV := styles.GridGutterVertical

	widths := resolveTracks(styles.GridColumns, columns,
		space.Width-(columns-1)*gutterH, space, viewport, true)

	// Row count: explicit grid-size, or as many as placement needs.
	rows := styles.GridSizeRows
	if rows == 0 {
		rows = neededRows(flow, columns)
	}
	heights := resolveTracks(styles.GridRows, rows,
		space.Height-(rows-1)*gutterV, space, viewport, false)

	// Row-major placement with span handling. A span that does not fit
	// in the remainder of a row skips to the next row, leaving the
	// slots empty.
	occupied := make([][]bool, rows)
	for i := range occupied {
		occupied[i] = make([]bool, columns)
	}

	colOffsets := trackOffsets(widths, gutterH, region.X)
	rowOffsets := trackOffsets(heights, gutterV, region.Y)

	row, col := 0, 0
	for _, child := range flow {
		st := child.Styles()
		span := clamp(st.ColumnSpan, 1, columns)
		rowSpan := max(st.RowSpan, 1)

		row, col = nextFreeSlot(occupied, row, col, span)
		if row >= rows {
			// Out of grid slots; the child is not displayed.
			child.Base().SetRegion(Region{})
			continue
		}
		for r := row; r < min(row+rowSpan, rows); r++ {
			for c := col; c < col+span; c++ {
				occupied[r][c] = true
			}
		}

		width := spanExtent(widths, col, span, gutterH)
		height := spanExtent(heights, row, min(rowSpan, rows-row), gutterV)
		child.Base().SetRegion(Region{
			X:     colOffsets[col] + st.Margin.Left,
			Y:     rowOffsets[row] + st.Margin.Top,
			Width:  max(width-st.Margin.Horizontal(), 0),
			Height: max(height-st.Margin.Vertical(), 0),
		})

		col += span
		if col >= columns {
			col = 0
			row++
		}
	}

	virtualWidth := spanExtent(widths, 0, len(widths), gutterH)
	virtualHeight := spanExtent(heights, 0, len(heights), gutterV)
	return Size{Width: virtualWidth, Height: virtualHeight}
}

// resolveTracks converts track scalars to cell sizes. Missing tracks
// repeat the scalar pattern; with no pattern every track is one fraction.
// The fraction remainder goes to the last fractional track so the tracks
// exactly fill the space.
func resolveTracks(pattern []Scalar, count, space int, container Size, viewport Size, horizontal bool) []int {
	if count <= 0 {
		return nil
	}
	space = max(space, 0)
	scalars := make([]Scalar, count)
	for i := range scalars {
		if len(pattern) == 0 {
			scalars[i] = Fraction(1)
		} else {
			scalars[i] = pattern[i%len(pattern)]
		}
	}

	sizes := make([]int, count)
	fixed := 0
	fracSum := 0.0
	lastFrac := -1
	for i, scalar := range scalars {
		if scalar.IsFraction() {
			fracSum += scalar.Value
			lastFrac = i
			continue
		}
		if cells, ok := scalar.Resolve(container, viewport, horizontal); ok {
			sizes[i] = max(cells, 0)
		}
		fixed += sizes[i]
	}
	remaining := max(space-fixed, 0)
	distributed := 0
	for i, scalar := range scalars {
		if !scalar.IsFraction() {
			continue
		}
		if i == lastFrac {
			sizes[i] = remaining - distributed
		} else {
			sizes[i] = int(math.Round(scalar.Value / fracSum * float64(remaining)))
			distributed += sizes[i]
		}
	}
	return sizes
}

// trackOffsets returns the starting coordinate of each track.
func trackOffsets(sizes []int, gutter, origin int) []int {
	offsets := make([]int, len(sizes))
	pos := origin
	for i, size := range sizes {
		offsets[i] = pos
		pos += size + gutter
	}
	return offsets
}

// spanExtent returns the total extent of a span of tracks including the
// gutters between them.
func spanExtent(sizes []int, start, span, gutter int) int {
	if span <= 0 || start >= len(sizes) {
		return 0
	}
	end := min(start+span, len(sizes))
	total := 0
	for i := start; i < end; i++ {
		total += sizes[i]
	}
	return total + (end-start-1)*gutter
}

// nextFreeSlot advances through the grid to the first position where a
// span of free columns starts.
func nextFreeSlot(occupied [][]bool, row, col, span int) (int, int) {
	rows := len(occupied)
	if rows == 0 {
		return 0, 0
	}
	columns := len(occupied[0])
	for row < rows {
		for col <= columns-span {
			free := true
			for c := col; c < col+span; c++ {
				if occupied[row][c] {
					free = false
					break
				}
			}
			if free {
				return row, col
			}
			col++
		}
		row++
		col = 0
	}
	return row, col
}

// neededRows estimates how many rows the children occupy when placed in
// row-major order.
func neededRows(flow []Widget, columns int) int {
	cells := 0
	for _, child := range flow {
		st := child.Styles()
		cells += clamp(st.ColumnSpan, 1, columns) * max(st.RowSpan, 1)
	}
	return max((cells+columns-1)/columns, 1)
}
