package schirmwerk

import "fmt"

// Spacing holds per-side cell counts for margins, padding and similar box
// model properties. Values are given in clockwise order starting at the top,
// following the CSS convention.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// NewSpacing creates a spacing using CSS-style shorthand notation.
//
// Value interpretation based on count:
//   - 0 values: all sides 0
//   - 1 value:  all sides the same
//   - 2 values: top/bottom = first, left/right = second
//   - 3 values: top = first, left/right = second, bottom = third
//   - 4+ values: top, right, bottom, left
func NewSpacing(values ...int) Spacing {
	var s Spacing
	s.Set(values...)
	return s
}

// Set configures the spacing using the same shorthand rules as NewSpacing.
func (s *Spacing) Set(values ...int) {
	switch len(values) {
	case 0:
		s.Top, s.Right, s.Bottom, s.Left = 0, 0, 0, 0
	case 1:
		s.Top, s.Right, s.Bottom, s.Left = values[0], values[0], values[0], values[0]
	case 2:
		s.Top, s.Right, s.Bottom, s.Left = values[0], values[1], values[0], values[1]
	case 3:
		s.Top, s.Right, s.Bottom, s.Left = values[0], values[1], values[2], values[1]
	default:
		s.Top, s.Right, s.Bottom, s.Left = values[0], values[1], values[2], values[3]
	}
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Totals returns the total spacing for both dimensions.
func (s Spacing) Totals() (int, int) {
	return s.Horizontal(), s.Vertical()
}

// Add returns the per-side sum of two spacings.
func (s Spacing) Add(other Spacing) Spacing {
	return Spacing{
		Top:    s.Top + other.Top,
		Right:  s.Right + other.Right,
		Bottom: s.Bottom + other.Bottom,
		Left:   s.Left + other.Left,
	}
}

// IsZero reports whether all sides are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

func (s Spacing) String() string {
	return fmt.Sprintf("(%d %d %d %d)", s.Top, s.Right, s.Bottom, s.Left)
}
