package schirmwerk

import "testing"

// layoutChild builds an unmounted widget with explicit dimension styles
// for layout tests.
func layoutChild(id string, width, height Scalar) *Static {
	w := NewStatic(id, id)
	w.Styles().Width = width
	w.Styles().Height = height
	return w
}

// Scenario: a vertical container with three fraction-height children
// splits 24 rows as 6/12/6 at y positions 0, 6 and 18.
func TestLayoutVerticalFractions(t *testing.T) {
	a := layoutChild("a", Fraction(1), Fraction(1))
	b := layoutChild("b", Fraction(1), Fraction(2))
	c := layoutChild("c", Fraction(1), Fraction(1))
	root := NewVerticalScroll("root", a, b, c)
	root.Styles().OverflowY = OverflowAutoMode

	LayoutTree(root, Size{Width: 80, Height: 24})

	wants := []Region{
		{X: 0, Y: 0, Width: 80, Height: 6},
		{X: 0, Y: 6, Width: 80, Height: 12},
		{X: 0, Y: 18, Width: 80, Height: 6},
	}
	for i, child := range []Widget{a, b, c} {
		if child.Base().Region() != wants[i] {
			t.Errorf("child %d region = %v, want %v", i, child.Base().Region(), wants[i])
		}
	}

	total := 0
	for _, child := range []Widget{a, b, c} {
		total += child.Base().Region().Height
	}
	if total != 24 {
		t.Errorf("fraction children fill %d rows, want 24", total)
	}
}

// Space accounting: any fraction mix fills the container exactly.
func TestLayoutFractionAccounting(t *testing.T) {
	cases := [][]float64{
		{1, 1, 1},
		{1, 2, 4},
		{3, 5},
		{1, 1, 1, 1, 1, 1, 1},
	}
	for _, fractions := range cases {
		var children []Widget
		for _, f := range fractions {
			children = append(children, layoutChild("", Fraction(1), Fraction(f)))
		}
		root := NewVertical("root", children...)
		LayoutTree(root, Size{Width: 10, Height: 23})

		total := 0
		for _, child := range children {
			total += child.Base().Region().Height
		}
		if total != 23 {
			t.Errorf("fractions %v fill %d rows, want 23", fractions, total)
		}
	}
}

// Scenario: docked header and footer reduce the space for the flowing
// content child.
func TestLayoutDocking(t *testing.T) {
	header := layoutChild("header", Fraction(1), Cells(3))
	header.Styles().Dock = DockTop
	footer := layoutChild("footer", Fraction(1), Cells(1))
	footer.Styles().Dock = DockBottom
	content := layoutChild("content", Fraction(1), Fraction(1))

	root := NewVertical("root", header, footer, content)
	LayoutTree(root, Size{Width: 40, Height: 10})

	if got := header.Base().Region(); got != (Region{X: 0, Y: 0, Width: 40, Height: 3}) {
		t.Errorf("header region = %v", got)
	}
	if got := content.Base().Region(); got != (Region{X: 0, Y: 3, Width: 40, Height: 6}) {
		t.Errorf("content region = %v", got)
	}
	if got := footer.Base().Region(); got != (Region{X: 0, Y: 9, Width: 40, Height: 1}) {
		t.Errorf("footer region = %v", got)
	}
}

// Scenario: a 3x2 grid with a column-span child.
func TestLayoutGridSpans(t *testing.T) {
	children := make([]Widget, 5)
	for i := range children {
		children[i] = layoutChild("", Fraction(1), Fraction(1))
	}
	children[0].Styles().ColumnSpan = 2

	root := NewVertical("root", children...)
	root.Styles().Layout = LayoutGrid
	root.Styles().GridSizeColumns = 3
	root.Styles().GridSizeRows = 2
	root.Styles().GridColumns = []Scalar{Fraction(1), Fraction(1), Fraction(1)}
	root.Styles().GridRows = []Scalar{Fraction(1), Fraction(1)}

	LayoutTree(root, Size{Width: 30, Height: 10})

	wants := []Region{
		{X: 0, Y: 0, Width: 20, Height: 5},
		{X: 20, Y: 0, Width: 10, Height: 5},
		{X: 0, Y: 5, Width: 10, Height: 5},
		{X: 10, Y: 5, Width: 10, Height: 5},
		{X: 20, Y: 5, Width: 10, Height: 5},
	}
	for i, child := range children {
		if got := child.Base().Region(); got != wants[i] {
			t.Errorf("grid child %d region = %v, want %v", i, got, wants[i])
		}
	}
}

func TestLayoutHorizontal(t *testing.T) {
	a := layoutChild("a", Cells(10), Fraction(1))
	b := layoutChild("b", Fraction(1), Fraction(1))
	c := layoutChild("c", Fraction(1), Fraction(1))
	root := NewHorizontal("root", a, b, c)
	LayoutTree(root, Size{Width: 40, Height: 5})

	if got := a.Base().Region(); got != (Region{X: 0, Y: 0, Width: 10, Height: 5}) {
		t.Errorf("a = %v", got)
	}
	if got := b.Base().Region(); got != (Region{X: 10, Y: 0, Width: 15, Height: 5}) {
		t.Errorf("b = %v", got)
	}
	if got := c.Base().Region(); got != (Region{X: 25, Y: 0, Width: 15, Height: 5}) {
		t.Errorf("c = %v", got)
	}
}

// Auto sizing is a fixed point: laying out twice yields identical
// regions.
func TestLayoutFixedPoint(t *testing.T) {
	text := NewStatic("text", "hello world, this wraps at some width")
	text.Styles().Height = Auto()
	box := layoutChild("box", Percent(50), Auto())
	box.Styles().Padding = NewSpacing(1)
	root := NewVertical("root", box, text)

	LayoutTree(root, Size{Width: 40, Height: 12})
	first := map[Widget]Region{}
	Traverse(root, func(w Widget) { first[w] = w.Base().Region() })

	LayoutTree(root, Size{Width: 40, Height: 12})
	Traverse(root, func(w Widget) {
		if first[w] != w.Base().Region() {
			t.Errorf("%s region changed between passes: %v vs %v",
				w.ID(), first[w], w.Base().Region())
		}
	})
}

func TestLayoutAutoHeightFromContent(t *testing.T) {
	text := NewStatic("text", "one\ntwo\nthree")
	root := NewVertical("root", text)
	LayoutTree(root, Size{Width: 20, Height: 10})

	if got := text.Base().Region().Height; got != 3 {
		t.Errorf("auto height = %d, want 3", got)
	}
}

func TestLayoutMinMaxClamp(t *testing.T) {
	minw := Cells(30)
	maxh := Cells(2)
	w := layoutChild("w", Cells(10), Fraction(1))
	w.Styles().MinWidth = &minw
	w.Styles().MaxHeight = &maxh
	root := NewVertical("root", w)
	LayoutTree(root, Size{Width: 20, Height: 10})

	region := w.Base().Region()
	if region.Width != 30 {
		t.Errorf("min-width not applied: %v", region)
	}
	if region.Height != 2 {
		t.Errorf("max-height not applied: %v", region)
	}
}

func TestLayoutMargins(t *testing.T) {
	w := layoutChild("w", Fraction(1), Cells(3))
	w.Styles().Margin = NewSpacing(1, 2)
	root := NewVertical("root", w)
	LayoutTree(root, Size{Width: 20, Height: 10})

	if got := w.Base().Region(); got != (Region{X: 2, Y: 1, Width: 16, Height: 3}) {
		t.Errorf("margin region = %v", got)
	}
}

func TestLayoutGutterShrinksContent(t *testing.T) {
	root := NewVertical("root", layoutChild("w", Fraction(1), Fraction(1)))
	root.Styles().Padding = NewSpacing(1)
	root.Styles().Border = [4]BorderEdge{
		{Kind: "solid"}, {Kind: "solid"}, {Kind: "solid"}, {Kind: "solid"},
	}
	LayoutTree(root, Size{Width: 20, Height: 10})

	content := root.ContentRegion()
	if content != (Region{X: 2, Y: 2, Width: 16, Height: 6}) {
		t.Errorf("content region = %v", content)
	}
	child := root.Children()[0]
	if got := child.Base().Region(); got != (Region{X: 0, Y: 0, Width: 16, Height: 6}) {
		t.Errorf("child region = %v", got)
	}
}

func TestLayoutDisplayNoneSkipsChild(t *testing.T) {
	a := layoutChild("a", Fraction(1), Fraction(1))
	b := layoutChild("b", Fraction(1), Fraction(1))
	b.Styles().Display = DisplayNone
	c := layoutChild("c", Fraction(1), Fraction(1))
	root := NewVertical("root", a, b, c)
	LayoutTree(root, Size{Width: 10, Height: 10})

	if a.Base().Region().Height != 5 || c.Base().Region().Height != 5 {
		t.Errorf("display:none child still takes space: %v %v",
			a.Base().Region(), c.Base().Region())
	}
}

func TestLayoutScrollbarReservation(t *testing.T) {
	var children []Widget
	for i := 0; i < 30; i++ {
		children = append(children, layoutChild("", Fraction(1), Cells(1)))
	}
	root := NewVerticalScroll("root", children...)
	root.Styles().OverflowY = OverflowAutoMode
	root.Styles().ScrollbarSizeVertical = 2
	LayoutTree(root, Size{Width: 20, Height: 10})

	if root.VirtualSize().Height != 30 {
		t.Errorf("virtual height = %d, want 30", root.VirtualSize().Height)
	}
	if root.ScrollbarSizes().Width != 2 {
		t.Errorf("vertical scrollbar not reserved: %v", root.ScrollbarSizes())
	}
	// Children lay out in the narrowed band.
	if got := children[0].Base().Region().Width; got != 18 {
		t.Errorf("child width = %d, want 18", got)
	}
}

func TestLayoutAlignment(t *testing.T) {
	w := layoutChild("w", Cells(4), Cells(2))
	root := NewVertical("root", w)
	root.Styles().AlignHorizontal = AlignCenterH
	root.Styles().AlignVertical = AlignMiddle
	LayoutTree(root, Size{Width: 10, Height: 10})

	if got := w.Base().Region(); got != (Region{X: 3, Y: 4, Width: 4, Height: 2}) {
		t.Errorf("aligned region = %v", got)
	}
}
