// Package geometry.go contains the integer cell geometry primitives used by
// the layout engine and the compositor.
//
// All coordinates are terminal cells. Regions are always normalized to
// non-negative dimensions; operations that could produce a negative width or
// height clip to zero instead.

package schirmwerk

import "fmt"

// Offset is a point or translation vector in cell coordinates.
type Offset struct {
	X, Y int
}

// Add returns the offset translated by the other offset.
func (o Offset) Add(other Offset) Offset {
	return Offset{o.X + other.X, o.Y + other.Y}
}

// Sub returns the offset with the other offset subtracted.
func (o Offset) Sub(other Offset) Offset {
	return Offset{o.X - other.X, o.Y - other.Y}
}

// Neg returns the offset with both components negated.
func (o Offset) Neg() Offset {
	return Offset{-o.X, -o.Y}
}

// IsZero reports whether both components are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Clamp restricts both components to the given inclusive ranges.
func (o Offset) Clamp(minX, maxX, minY, maxY int) Offset {
	return Offset{clamp(o.X, minX, maxX), clamp(o.Y, minY, maxY)}
}

func (o Offset) String() string {
	return fmt.Sprintf("%d.%d", o.X, o.Y)
}

// Size is a width and height in cells. Both dimensions are never negative.
type Size struct {
	Width, Height int
}

// NewSize creates a size, clipping negative dimensions to zero.
func NewSize(width, height int) Size {
	return Size{max(width, 0), max(height, 0)}
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// IsEmpty reports whether the size covers no cells.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Contains reports whether the offset lies inside a region of this size
// anchored at the origin.
func (s Size) Contains(o Offset) bool {
	return o.X >= 0 && o.Y >= 0 && o.X < s.Width && o.Y < s.Height
}

// Region returns the size as a region anchored at the given origin.
func (s Size) Region(origin Offset) Region {
	return Region{origin.X, origin.Y, s.Width, s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%d:%d", s.Width, s.Height)
}

// Region is a rectangle in cell coordinates. Width and height are never
// negative; an empty region has width or height zero.
type Region struct {
	X, Y, Width, Height int
}

// NewRegion creates a region, clipping negative dimensions to zero.
func NewRegion(x, y, width, height int) Region {
	return Region{x, y, max(width, 0), max(height, 0)}
}

// Right returns the first x coordinate beyond the region.
func (r Region) Right() int {
	return r.X + r.Width
}

// Bottom returns the first y coordinate beyond the region.
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// Origin returns the top left corner of the region.
func (r Region) Origin() Offset {
	return Offset{r.X, r.Y}
}

// Size returns the dimensions of the region.
func (r Region) Size() Size {
	return Size{r.Width, r.Height}
}

// IsEmpty reports whether the region covers no cells.
func (r Region) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether the offset lies inside the region.
func (r Region) Contains(o Offset) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X < r.Right() && o.Y < r.Bottom()
}

// ContainsRegion reports whether the other region lies fully inside this one.
func (r Region) ContainsRegion(other Region) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Overlaps reports whether the two regions share at least one cell.
func (r Region) Overlaps(other Region) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersection returns the overlapping part of the two regions. The result
// is empty if the regions do not overlap.
func (r Region) Intersection(other Region) Region {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Region{}
	}
	return Region{x1, y1, x2 - x1, y2 - y1}
}

// Union returns the smallest region covering both regions. The union with an
// empty region is the other region unchanged.
func (r Region) Union(other Region) Region {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Region{x1, y1, x2 - x1, y2 - y1}
}

// Translate returns the region moved by the given offset.
func (r Region) Translate(o Offset) Region {
	return Region{r.X + o.X, r.Y + o.Y, r.Width, r.Height}
}

// Clip returns the part of the region inside the container. Equivalent to
// Intersection, provided under the name the rendering pipeline uses.
func (r Region) Clip(container Region) Region {
	return r.Intersection(container)
}

// Shrink returns the region reduced by the given spacing on each side.
// Dimensions clip to zero.
func (r Region) Shrink(s Spacing) Region {
	return NewRegion(
		r.X+s.Left,
		r.Y+s.Top,
		r.Width-s.Left-s.Right,
		r.Height-s.Top-s.Bottom,
	)
}

// Grow returns the region expanded by the given spacing on each side.
func (r Region) Grow(s Spacing) Region {
	return NewRegion(
		r.X-s.Left,
		r.Y-s.Top,
		r.Width+s.Left+s.Right,
		r.Height+s.Top+s.Bottom,
	)
}

// SplitVertical cuts the region at the absolute y coordinate and returns the
// parts above and below the cut. The cut is clamped to the region.
func (r Region) SplitVertical(y int) (Region, Region) {
	y = clamp(y, r.Y, r.Bottom())
	top := NewRegion(r.X, r.Y, r.Width, y-r.Y)
	bottom := NewRegion(r.X, y, r.Width, r.Bottom()-y)
	return top, bottom
}

// SplitHorizontal cuts the region at the absolute x coordinate and returns
// the parts left and right of the cut. The cut is clamped to the region.
func (r Region) SplitHorizontal(x int) (Region, Region) {
	x = clamp(x, r.X, r.Right())
	left := NewRegion(r.X, r.Y, x-r.X, r.Height)
	right := NewRegion(x, r.Y, r.Right()-x, r.Height)
	return left, right
}

// LineRange returns the inclusive first and exclusive last y coordinate
// covered by the region.
func (r Region) LineRange() (int, int) {
	return r.Y, r.Bottom()
}

func (r Region) String() string {
	return fmt.Sprintf("@%d.%d %d:%d", r.X, r.Y, r.Width, r.Height)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
