package schirmwerk

import "testing"

func TestRegionIntersection(t *testing.T) {
	a := NewRegion(0, 0, 10, 10)
	b := NewRegion(5, 5, 10, 10)

	t.Run("Commutative", func(t *testing.T) {
		if a.Intersection(b) != b.Intersection(a) {
			t.Errorf("intersection not commutative: %v vs %v", a.Intersection(b), b.Intersection(a))
		}
	})

	t.Run("Overlap", func(t *testing.T) {
		got := a.Intersection(b)
		want := NewRegion(5, 5, 5, 5)
		if got != want {
			t.Errorf("Intersection = %v, want %v", got, want)
		}
	})

	t.Run("Self", func(t *testing.T) {
		if a.Intersection(a) != a {
			t.Errorf("A.Intersection(A) = %v, want %v", a.Intersection(a), a)
		}
	})

	t.Run("Disjoint is empty", func(t *testing.T) {
		c := NewRegion(100, 100, 5, 5)
		if !a.Intersection(c).IsEmpty() {
			t.Errorf("disjoint intersection not empty: %v", a.Intersection(c))
		}
	})

	t.Run("Empty absorbs", func(t *testing.T) {
		var empty Region
		if !empty.Intersection(a).IsEmpty() {
			t.Error("empty region intersected with anything must be empty")
		}
	})
}

func TestRegionUnion(t *testing.T) {
	a := NewRegion(0, 0, 10, 10)
	b := NewRegion(20, 20, 5, 5)
	c := NewRegion(-5, -5, 3, 3)

	t.Run("Bounding", func(t *testing.T) {
		got := a.Union(b)
		want := NewRegion(0, 0, 25, 25)
		if got != want {
			t.Errorf("Union = %v, want %v", got, want)
		}
	})

	t.Run("Identity with empty", func(t *testing.T) {
		var empty Region
		if a.Union(empty) != a || empty.Union(a) != a {
			t.Error("union with empty region must be identity")
		}
	})

	t.Run("Associative", func(t *testing.T) {
		left := a.Union(b).Union(c)
		right := a.Union(b.Union(c))
		if left != right {
			t.Errorf("union not associative: %v vs %v", left, right)
		}
	})
}

func TestRegionClipDistributes(t *testing.T) {
	// A.Intersection(B).Clip(C) == A.Clip(C).Intersection(B.Clip(C))
	cases := []struct {
		a, b, c Region
	}{
		{NewRegion(0, 0, 10, 10), NewRegion(5, 5, 10, 10), NewRegion(2, 2, 6, 6)},
		{NewRegion(-3, -3, 8, 8), NewRegion(0, 0, 4, 4), NewRegion(1, 1, 2, 2)},
		{NewRegion(0, 0, 100, 1), NewRegion(50, 0, 100, 1), NewRegion(60, 0, 10, 1)},
		{NewRegion(0, 0, 5, 5), NewRegion(10, 10, 5, 5), NewRegion(0, 0, 20, 20)},
	}
	for _, tc := range cases {
		left := tc.a.Intersection(tc.b).Clip(tc.c)
		right := tc.a.Clip(tc.c).Intersection(tc.b.Clip(tc.c))
		if left != right {
			t.Errorf("clip does not distribute for %v %v %v: %v vs %v", tc.a, tc.b, tc.c, left, right)
		}
	}
}

func TestRegionSplit(t *testing.T) {
	r := NewRegion(2, 3, 10, 8)

	top, bottom := r.SplitVertical(5)
	if top != NewRegion(2, 3, 10, 2) || bottom != NewRegion(2, 5, 10, 6) {
		t.Errorf("SplitVertical = %v, %v", top, bottom)
	}
	if top.Union(bottom) != r {
		t.Error("vertical split parts must union to the original")
	}

	left, right := r.SplitHorizontal(6)
	if left != NewRegion(2, 3, 4, 8) || right != NewRegion(6, 3, 6, 8) {
		t.Errorf("SplitHorizontal = %v, %v", left, right)
	}

	t.Run("Cut clamps", func(t *testing.T) {
		top, bottom := r.SplitVertical(-10)
		if !top.IsEmpty() || bottom != r {
			t.Errorf("clamped split = %v, %v", top, bottom)
		}
	})
}

func TestRegionShrinkGrow(t *testing.T) {
	r := NewRegion(0, 0, 10, 10)
	s := NewSpacing(1, 2, 3, 4)

	shrunk := r.Shrink(s)
	if shrunk != NewRegion(4, 1, 4, 6) {
		t.Errorf("Shrink = %v", shrunk)
	}
	if shrunk.Grow(s) != r {
		t.Errorf("Grow(Shrink) = %v, want %v", shrunk.Grow(s), r)
	}

	t.Run("Never negative", func(t *testing.T) {
		tiny := NewRegion(0, 0, 2, 2).Shrink(NewSpacing(5))
		if tiny.Width != 0 || tiny.Height != 0 {
			t.Errorf("over-shrunk region = %v", tiny)
		}
	})
}

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: -1, Y: 2}
	if a.Add(b) != (Offset{X: 2, Y: 6}) {
		t.Errorf("Add = %v", a.Add(b))
	}
	if a.Sub(b) != (Offset{X: 4, Y: 2}) {
		t.Errorf("Sub = %v", a.Sub(b))
	}
	if !a.Sub(a).IsZero() {
		t.Error("a - a must be zero")
	}
	if !NewRegion(0, 0, 5, 5).Contains(Offset{X: 4, Y: 4}) {
		t.Error("region must contain its last cell")
	}
	if NewRegion(0, 0, 5, 5).Contains(Offset{X: 5, Y: 0}) {
		t.Error("region must not contain its right edge")
	}
}

func TestSpacingShorthand(t *testing.T) {
	cases := []struct {
		values []int
		want   Spacing
	}{
		{nil, Spacing{}},
		{[]int{2}, Spacing{2, 2, 2, 2}},
		{[]int{1, 4}, Spacing{1, 4, 1, 4}},
		{[]int{1, 2, 3}, Spacing{1, 2, 3, 2}},
		{[]int{1, 2, 3, 4}, Spacing{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		if got := NewSpacing(tc.values...); got != tc.want {
			t.Errorf("NewSpacing(%v) = %v, want %v", tc.values, got, tc.want)
		}
	}
}
