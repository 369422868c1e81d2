package schirmwerk

import "testing"

func TestParseScalar(t *testing.T) {
	cases := map[string]Scalar{
		"12":   Cells(12),
		"1fr":  Fraction(1),
		"2.5fr": {Value: 2.5, Unit: UnitFraction},
		"50%":  Percent(50),
		"30w":  {Value: 30, Unit: UnitWidth},
		"40h":  {Value: 40, Unit: UnitHeight},
		"25vw": {Value: 25, Unit: UnitViewW},
		"75vh": {Value: 75, Unit: UnitViewH},
		"auto": Auto(),
	}
	for input, want := range cases {
		got, err := ParseScalar(input)
		if err != nil {
			t.Fatalf("ParseScalar(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("ParseScalar(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseScalar("fr"); err == nil {
		t.Error("ParseScalar(\"fr\") must fail")
	}
	if _, err := ParseScalar(""); err == nil {
		t.Error("ParseScalar(\"\") must fail")
	}
}

func TestScalarResolve(t *testing.T) {
	container := Size{Width: 80, Height: 24}
	viewport := Size{Width: 120, Height: 40}

	cases := []struct {
		scalar     Scalar
		horizontal bool
		want       int
	}{
		{Cells(7), true, 7},
		{Percent(50), true, 40},
		{Percent(50), false, 12},
		{{Value: 25, Unit: UnitWidth}, false, 20},
		{{Value: 50, Unit: UnitHeight}, true, 12},
		{{Value: 50, Unit: UnitViewW}, true, 60},
		{{Value: 25, Unit: UnitViewH}, false, 10},
	}
	for _, tc := range cases {
		got, ok := tc.scalar.Resolve(container, viewport, tc.horizontal)
		if !ok {
			t.Fatalf("%v did not resolve", tc.scalar)
		}
		if got != tc.want {
			t.Errorf("%v resolves to %d, want %d", tc.scalar, got, tc.want)
		}
	}

	if _, ok := Auto().Resolve(container, viewport, true); ok {
		t.Error("auto must not resolve directly")
	}
	if _, ok := Fraction(1).Resolve(container, viewport, true); ok {
		t.Error("fractions must not resolve directly")
	}
}

func TestScalarString(t *testing.T) {
	cases := map[string]Scalar{
		"12":   Cells(12),
		"1fr":  Fraction(1),
		"50%":  Percent(50),
		"auto": Auto(),
	}
	for want, scalar := range cases {
		if scalar.String() != want {
			t.Errorf("String = %q, want %q", scalar.String(), want)
		}
	}
}
