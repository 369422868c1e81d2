package schirmwerk

import "testing"

func makeStrip(parts ...string) Strip {
	segments := make([]Segment, len(parts))
	for i, part := range parts {
		segments[i] = NewSegment(part, Style{})
	}
	return NewStrip(segments...)
}

func TestStripCellLength(t *testing.T) {
	s := makeStrip("Hello", ", ", "world")
	if s.CellLength() != 12 {
		t.Fatalf("CellLength = %d, want 12", s.CellLength())
	}
	total := 0
	for _, segment := range s.Segments() {
		total += segment.Width()
	}
	if total != s.CellLength() {
		t.Errorf("segment widths sum to %d, cell length is %d", total, s.CellLength())
	}
}

func TestStripCrop(t *testing.T) {
	s := makeStrip("Hello", ", ", "world")

	t.Run("Length invariant", func(t *testing.T) {
		for a := 0; a <= s.CellLength(); a++ {
			for b := a; b <= s.CellLength(); b++ {
				cropped := s.Crop(a, b)
				if cropped.CellLength() != b-a {
					t.Fatalf("Crop(%d,%d).CellLength = %d, want %d", a, b, cropped.CellLength(), b-a)
				}
			}
		}
	})

	t.Run("Full crop is identity", func(t *testing.T) {
		if !s.Crop(0, s.CellLength()).Equal(s) {
			t.Error("Crop(0, n) must equal the original strip")
		}
	})

	t.Run("Crop and join reassemble", func(t *testing.T) {
		for k := 0; k <= s.CellLength(); k++ {
			joined := s.Crop(0, k).Join(s.Crop(k, s.CellLength()))
			if !joined.Equal(s) {
				t.Fatalf("crop at %d does not reassemble: %q", k, joined.Text())
			}
		}
	})

	t.Run("Text content", func(t *testing.T) {
		if got := s.Crop(7, 12).Text(); got != "world" {
			t.Errorf("Crop(7,12).Text = %q", got)
		}
	})
}

func TestStripCropWideChars(t *testing.T) {
	s := makeStrip("a", "世界", "b") // cells: a=1, 世=2, 界=2, b=1 => 6

	if s.CellLength() != 6 {
		t.Fatalf("CellLength = %d, want 6", s.CellLength())
	}

	t.Run("Split wide cell yields space", func(t *testing.T) {
		got := s.Crop(2, 3) // the middle of 世..界 boundary region
		if got.CellLength() != 1 {
			t.Fatalf("CellLength = %d, want 1", got.CellLength())
		}
		if got.Text() != " " {
			t.Errorf("cropped middle of wide char = %q, want space", got.Text())
		}
	})

	t.Run("Aligned crop keeps glyph", func(t *testing.T) {
		got := s.Crop(1, 3)
		if got.Text() != "世" {
			t.Errorf("Crop(1,3).Text = %q, want 世", got.Text())
		}
	})
}

func TestStripExtendAndAdjust(t *testing.T) {
	s := makeStrip("ab")
	extended := s.Extend(5, Style{})
	if extended.CellLength() != 5 || extended.Text() != "ab   " {
		t.Errorf("Extend = %q (%d)", extended.Text(), extended.CellLength())
	}
	if s.Extend(1, Style{}).CellLength() != 2 {
		t.Error("Extend must not shrink")
	}
	if s.AdjustLength(1, Style{}).Text() != "a" {
		t.Error("AdjustLength must crop when too long")
	}
}

func TestStripDivide(t *testing.T) {
	s := makeStrip("abcdefgh")
	pieces := s.Divide([]int{2, 5})
	if len(pieces) != 3 {
		t.Fatalf("Divide returned %d pieces", len(pieces))
	}
	wants := []string{"ab", "cde", "fgh"}
	for i, want := range wants {
		if pieces[i].Text() != want {
			t.Errorf("piece %d = %q, want %q", i, pieces[i].Text(), want)
		}
	}
}

func TestStripApplyStyle(t *testing.T) {
	s := makeStrip("ab", "cd")
	styled := s.ApplyStyle(Style{Bold: TriOn})
	for _, segment := range styled.Segments() {
		if segment.Style.Bold != TriOn {
			t.Error("ApplyStyle must set bold on every segment")
		}
	}
	if styled.CellLength() != s.CellLength() {
		t.Error("ApplyStyle must preserve cell length")
	}
}

func TestStripSimplify(t *testing.T) {
	s := NewStrip(
		NewSegment("ab", Style{Bold: TriOn}),
		NewSegment("cd", Style{Bold: TriOn}),
		NewSegment("ef", Style{}),
	)
	simplified := s.Simplify()
	if len(simplified.Segments()) != 2 {
		t.Fatalf("Simplify left %d segments, want 2", len(simplified.Segments()))
	}
	if simplified.Segments()[0].Text != "abcd" {
		t.Errorf("merged text = %q", simplified.Segments()[0].Text)
	}
	if !simplified.Equal(s) {
		t.Error("Simplify must not change rendering")
	}
}

func TestStripChanges(t *testing.T) {
	before := makeStrip("hello world")
	after := makeStrip("hello_world")

	changes := before.Changes(after)
	if len(changes) != 1 {
		t.Fatalf("Changes = %d entries, want 1", len(changes))
	}
	if changes[0].Start != 5 || changes[0].End != 6 {
		t.Errorf("change range = [%d,%d), want [5,6)", changes[0].Start, changes[0].End)
	}

	t.Run("No changes for equal strips", func(t *testing.T) {
		if got := before.Changes(makeStrip("hello world")); got != nil {
			t.Errorf("equal strips produced changes: %v", got)
		}
	})

	t.Run("Applying changes reproduces the strip", func(t *testing.T) {
		result := before
		for _, change := range before.Changes(after) {
			head := result.Crop(0, change.Start)
			tail := result.Crop(change.End, result.CellLength())
			result = head.Join(NewStrip(change.Segments...), tail)
		}
		if !result.Equal(after) {
			t.Errorf("applied changes = %q, want %q", result.Text(), after.Text())
		}
	})
}
