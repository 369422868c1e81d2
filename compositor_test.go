package schirmwerk

import (
	"strings"
	"testing"
)

// buildComposited lays out a tree and returns its compositor.
func buildComposited(root Widget, size Size) *Compositor {
	c := NewCompositor()
	c.Reflow(root, size)
	return c
}

func frameText(frame Frame) []string {
	lines := make([]string, len(frame.Lines))
	for i, strip := range frame.Lines {
		lines[i] = strip.Text()
	}
	return lines
}

func TestCompositorRendersContent(t *testing.T) {
	text := NewStatic("text", "hello")
	text.Styles().Height = Cells(1)
	root := NewVertical("root", text)
	c := buildComposited(root, Size{Width: 10, Height: 3})

	frame := c.Render(nil)
	if frame.Size != (Size{Width: 10, Height: 3}) {
		t.Fatalf("frame size = %v", frame.Size)
	}
	if len(frame.Lines) != 3 {
		t.Fatalf("line count = %d", len(frame.Lines))
	}
	for _, strip := range frame.Lines {
		if strip.CellLength() != 10 {
			t.Errorf("line width = %d, want 10", strip.CellLength())
		}
	}
	if got := frame.Lines[0].Text(); got != "hello     " {
		t.Errorf("line 0 = %q", got)
	}
}

// Idempotence: composing twice with no mutation yields identical frames.
func TestCompositorIdempotent(t *testing.T) {
	root := NewVertical("root",
		NewStatic("a", "alpha [b]beta[/b]"),
		NewStatic("b", "gamma"),
	)
	c := buildComposited(root, Size{Width: 20, Height: 6})

	first := c.Render(nil)
	second := c.Render(nil)
	if !FrameEqual(first, second) {
		t.Error("repeated composition produced different frames")
	}

	c.Reflow(root, Size{Width: 20, Height: 6})
	third := c.Render(nil)
	if !FrameEqual(first, third) {
		t.Error("reflow without mutation produced a different frame")
	}
}

// Occlusion: the topmost widget's cells win where regions overlap.
func TestCompositorOcclusion(t *testing.T) {
	under := NewStatic("under", strings.Repeat("u", 10))
	under.Styles().Height = Cells(1)
	over := NewStatic("over", "OO")
	over.Styles().Position = PositionAbsolute
	over.Styles().Width = Cells(2)
	over.Styles().Height = Cells(1)
	over.Styles().OffsetX = Cells(4)
	over.Styles().OffsetY = Cells(0)
	bg := NewColor(20, 20, 20)
	over.Styles().Background = bg

	root := NewVertical("root", under, over)
	c := buildComposited(root, Size{Width: 10, Height: 2})
	frame := c.Render(nil)

	if got := frame.Lines[0].Text(); got != "uuuuOOuuuu" {
		t.Errorf("line 0 = %q, want occluding content in the middle", got)
	}
}

// Translucent backgrounds blend with the widget below.
func TestCompositorTranslucentBackground(t *testing.T) {
	under := NewStatic("under", "")
	under.Styles().Height = Cells(1)
	under.Styles().Background = NewColor(0, 0, 0)
	over := NewStatic("over", "")
	over.Styles().Position = PositionAbsolute
	over.Styles().Width = Cells(10)
	over.Styles().Height = Cells(1)
	over.Styles().Background = ColorWhite.WithAlpha(0.5)

	root := NewVertical("root", under, over)
	c := buildComposited(root, Size{Width: 10, Height: 1})
	frame := c.Render(nil)

	segment := frame.Lines[0].Segments()[0]
	if segment.Style.BG == nil {
		t.Fatal("no background on composited segment")
	}
	if segment.Style.BG.R != 128 {
		t.Errorf("blended background R = %d, want 128", segment.Style.BG.R)
	}
}

// Partial update soundness: applying the diff to the previous frame
// yields exactly the new frame.
func TestCompositorDiffSoundness(t *testing.T) {
	text := NewStatic("text", "before text here")
	root := NewVertical("root", text)
	c := buildComposited(root, Size{Width: 20, Height: 4})
	first := c.Render(nil)

	text.Update("after text here")
	c.Reflow(root, Size{Width: 20, Height: 4})
	second := c.Render(nil)

	diff := DiffFrames(&first, &second)
	applied := ApplyDiff(first, diff)
	if !FrameEqual(applied, second) {
		t.Errorf("diff application mismatch:\n%v\nvs\n%v", frameText(applied), frameText(second))
	}
}

// Scenario: frames differing in one cell produce a single-span diff.
func TestCompositorDiffSingleCell(t *testing.T) {
	size := Size{Width: 80, Height: 24}
	makeFrame := func(ch string) Frame {
		frame := Frame{Size: size, Lines: make([]Strip, size.Height)}
		for y := range frame.Lines {
			frame.Lines[y] = BlankStrip(size.Width, Style{})
		}
		line := BlankStrip(10, Style{}).
			Join(NewStrip(NewSegment(ch, Style{}))).
			Extend(size.Width, Style{})
		frame.Lines[5] = line
		return frame
	}

	before := makeFrame("x")
	after := makeFrame("y")
	diff := DiffFrames(&before, &after)

	if diff.Full {
		t.Fatal("single-cell change must not be a full update")
	}
	if len(diff.Lines) != 1 || diff.Lines[0].Y != 5 {
		t.Fatalf("diff lines = %+v", diff.Lines)
	}
	spans := diff.Lines[0].Spans
	if len(spans) != 1 || spans[0].Start != 10 || spans[0].End != 11 {
		t.Fatalf("diff spans = %+v", spans)
	}
}

func TestCompositorScrolling(t *testing.T) {
	var children []Widget
	for _, line := range []string{"line0", "line1", "line2", "line3", "line4", "line5"} {
		child := NewStatic("", line)
		child.Styles().Height = Cells(1)
		children = append(children, child)
	}
	root := NewVerticalScroll("root", children...)
	root.Styles().OverflowY = OverflowHiddenMode // no scrollbar band for easier asserts

	c := buildComposited(root, Size{Width: 6, Height: 3})
	frame := c.Render(nil)
	if got := frame.Lines[0].Text(); got != "line0 " {
		t.Fatalf("unscrolled line 0 = %q", got)
	}

	root.ScrollTo(Offset{Y: 2})
	c.Reflow(root, Size{Width: 6, Height: 3})
	frame = c.Render(nil)
	if got := frame.Lines[0].Text(); got != "line2 " {
		t.Errorf("scrolled line 0 = %q, want line2", got)
	}
}

func TestCompositorClipsChildren(t *testing.T) {
	inner := NewStatic("inner", strings.Repeat("x", 30))
	inner.Styles().Width = Cells(30)
	inner.Styles().Height = Cells(1)
	root := NewVertical("root", inner)
	c := buildComposited(root, Size{Width: 10, Height: 2})
	frame := c.Render(nil)

	for _, strip := range frame.Lines {
		if strip.CellLength() != 10 {
			t.Errorf("overflowing child leaked beyond the viewport: %d", strip.CellLength())
		}
	}
}

func TestCompositorWidgetAt(t *testing.T) {
	a := NewStatic("a", "aa")
	a.Styles().Height = Cells(2)
	b := NewStatic("b", "bb")
	b.Styles().Height = Cells(2)
	root := NewVertical("root", a, b)
	c := buildComposited(root, Size{Width: 10, Height: 4})

	got, ok := c.WidgetAt(Offset{X: 1, Y: 0})
	if !ok || got.ID() != "a" {
		t.Errorf("WidgetAt(1,0) = %v", got)
	}
	got, ok = c.WidgetAt(Offset{X: 1, Y: 3})
	if !ok || got.ID() != "b" {
		t.Errorf("WidgetAt(1,3) = %v", got)
	}
}

func TestCompositorScreenOpacity(t *testing.T) {
	belowWidget := NewStatic("below", "below text")
	belowWidget.Styles().Height = Cells(1)
	belowRoot := NewVertical("belowroot", belowWidget)
	belowC := buildComposited(belowRoot, Size{Width: 12, Height: 1})
	belowFrame := belowC.Render(nil)

	topRoot := NewVertical("toproot")
	topRoot.Styles().Background = ColorBlack.WithAlpha(0.5)
	topC := buildComposited(topRoot, Size{Width: 12, Height: 1})
	frame := topC.Render(&belowFrame)

	if got := frame.Lines[0].Text(); got != "below text  " {
		t.Errorf("translucent screen hides content below: %q", got)
	}
}

func TestSpatialMap(t *testing.T) {
	m := NewSpatialMap(10, 5)
	a := &placement{region: NewRegion(0, 0, 25, 3), clip: NewRegion(0, 0, 100, 100), order: 0}
	b := &placement{region: NewRegion(50, 0, 10, 3), clip: NewRegion(0, 0, 100, 100), order: 1}
	m.Insert(a)
	m.Insert(b)

	t.Run("Deduplicates across tiles", func(t *testing.T) {
		got := m.PlacementsIn(NewRegion(0, 0, 30, 1))
		if len(got) != 1 || got[0] != a {
			t.Errorf("PlacementsIn = %v", got)
		}
	})

	t.Run("Finds by tile", func(t *testing.T) {
		got := m.PlacementsIn(NewRegion(48, 0, 20, 1))
		if len(got) != 1 || got[0] != b {
			t.Errorf("PlacementsIn = %v", got)
		}
	})

	t.Run("Preserves paint order", func(t *testing.T) {
		got := m.PlacementsIn(NewRegion(0, 0, 100, 5))
		if len(got) != 2 || got[0] != a || got[1] != b {
			t.Errorf("PlacementsIn = %v", got)
		}
	})

	t.Run("Empty query", func(t *testing.T) {
		if got := m.PlacementsIn(NewRegion(0, 50, 10, 1)); len(got) != 0 {
			t.Errorf("PlacementsIn = %v", got)
		}
	})
}
