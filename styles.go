// Package styles.go defines the computed per-node style record: the result
// of running the cascade for one widget. Every property the stylesheet
// grammar recognizes has a field here; the layout engine, the compositor
// and the widget render path read from this record only.

package schirmwerk

// Display controls whether a widget participates in layout at all.
type Display int8

const (
	DisplayBlock Display = iota
	DisplayNone
)

// Visibility controls whether a laid-out widget paints.
type Visibility int8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
)

// BoxSizing selects whether width/height include border and padding.
type BoxSizing int8

const (
	BorderBox BoxSizing = iota
	ContentBox
)

// LayoutKind selects the flow algorithm of a container.
type LayoutKind int8

const (
	LayoutVertical LayoutKind = iota
	LayoutHorizontal
	LayoutGrid
)

// DockSide pins a child to a container edge outside the normal flow.
type DockSide int8

const (
	DockNone DockSide = iota
	DockTop
	DockRight
	DockBottom
	DockLeft
)

// OverflowMode controls scrolling on one container axis.
type OverflowMode int8

const (
	OverflowHiddenMode OverflowMode = iota
	OverflowAutoMode
	OverflowScrollMode
)

// AlignH is a horizontal alignment choice.
type AlignH int8

const (
	AlignLeft AlignH = iota
	AlignCenterH
	AlignRight
)

// AlignV is a vertical alignment choice.
type AlignV int8

const (
	AlignTop AlignV = iota
	AlignMiddle
	AlignBottom
)

// PositionMode selects flow-relative or absolute placement.
type PositionMode int8

const (
	PositionRelative PositionMode = iota
	PositionAbsolute
)

// HatchStyle is a repeating fill character with a color.
type HatchStyle struct {
	Rune  rune
	Color Color
}

// Edge indices for the Border array.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Styles is the complete set of computed style properties for one widget.
type Styles struct {
	Display    Display
	Visibility Visibility
	Layout     LayoutKind
	Dock       DockSide
	Position   PositionMode
	OffsetX    Scalar
	OffsetY    Scalar
	Overlay    bool
	ConstrainX bool
	ConstrainY bool

	Width     Scalar
	Height    Scalar
	MinWidth  *Scalar
	MinHeight *Scalar
	MaxWidth  *Scalar
	MaxHeight *Scalar
	BoxSizing BoxSizing

	Margin  Spacing
	Padding Spacing
	Border  [4]BorderEdge

	BorderTitle         string
	BorderSubtitle      string
	BorderTitleAlign    TextAlign
	BorderSubtitleAlign TextAlign

	Background     Color
	BackgroundTint Color
	Color          Color
	HasColor       bool
	Tint           Color
	Hatch          HatchStyle

	TextStyle    Style // attribute bits only; colors live above
	TextAlign    TextAlign
	TextWrap     TextWrap
	TextOverflow TextOverflow
	TextOpacity  float64
	Opacity      float64

	AlignHorizontal        AlignH
	AlignVertical          AlignV
	ContentAlignHorizontal AlignH
	ContentAlignVertical   AlignV

	OverflowX OverflowMode
	OverflowY OverflowMode
	// Scrollbar band sizes: vertical bar width and horizontal bar height.
	ScrollbarSizeVertical   int
	ScrollbarSizeHorizontal int
	ScrollbarGutter         bool

	Layer  string
	Layers []string

	GridSizeColumns int
	GridSizeRows    int
	GridColumns     []Scalar
	GridRows        []Scalar
	GridGutterHorizontal int
	GridGutterVertical   int
	ColumnSpan      int
	RowSpan         int

	LinkColor           Color
	LinkBackground      Color
	LinkStyle           Style
	LinkHoverColor      Color
	LinkHoverBackground Color
	LinkHoverStyle      Style
}

// DefaultStyles returns the property values a widget has before any
// stylesheet rule applies. Widgets fill their container horizontally and
// size to content vertically.
func DefaultStyles() Styles {
	return Styles{
		Width:                   Fraction(1),
		Height:                  Auto(),
		TextOpacity:             1,
		Opacity:                 1,
		ScrollbarSizeVertical:   2,
		ScrollbarSizeHorizontal: 1,
		ColumnSpan:              1,
		RowSpan:                 1,
	}
}

// BorderSpacing returns the cells reserved by the border on each side.
func (s *Styles) BorderSpacing() Spacing {
	spacing := Spacing{}
	if s.Border[EdgeTop].TakesSpace() {
		spacing.Top = 1
	}
	if s.Border[EdgeRight].TakesSpace() {
		spacing.Right = 1
	}
	if s.Border[EdgeBottom].TakesSpace() {
		spacing.Bottom = 1
	}
	if s.Border[EdgeLeft].TakesSpace() {
		spacing.Left = 1
	}
	return spacing
}

// Gutter returns the total border plus padding spacing: the distance from
// the widget's region to its content region.
func (s *Styles) Gutter() Spacing {
	return s.BorderSpacing().Add(s.Padding)
}

// HasBorder reports whether any edge draws a border.
func (s *Styles) HasBorder() bool {
	for _, edge := range s.Border {
		if edge.TakesSpace() {
			return true
		}
	}
	return false
}

// AllowsScroll reports whether either axis permits scrolling.
func (s *Styles) AllowsScroll() bool {
	return s.OverflowX != OverflowHiddenMode || s.OverflowY != OverflowHiddenMode
}

// RenderOptions derives the content layout options from the text
// properties.
func (s *Styles) RenderOptions() RenderOptions {
	return RenderOptions{
		Wrap:     s.TextWrap,
		Overflow: s.TextOverflow,
		Align:    s.TextAlign,
	}
}

// InheritFrom copies the inherited properties (text color, text style and
// the link colors and styles) from the parent's computed styles when this widget has no authored value.
// Called by the cascade before declarations apply, so authored values
// overwrite the inherited ones.
func (s *Styles) InheritFrom(parent *Styles) {
	if parent == nil {
		return
	}
	if parent.HasColor {
		s.Color = parent.Color
		s.HasColor = true
	}
	s.TextStyle = parent.TextStyle.Combine(s.TextStyle)
	if parent.LinkColor != (Color{}) {
		s.LinkColor = parent.LinkColor
	}
	if parent.LinkBackground != (Color{}) {
		s.LinkBackground = parent.LinkBackground
	}
	s.LinkStyle = parent.LinkStyle.Combine(s.LinkStyle)
	if parent.LinkHoverColor != (Color{}) {
		s.LinkHoverColor = parent.LinkHoverColor
	}
	if parent.LinkHoverBackground != (Color{}) {
		s.LinkHoverBackground = parent.LinkHoverBackground
	}
	s.LinkHoverStyle = parent.LinkHoverStyle.Combine(s.LinkHoverStyle)
}
