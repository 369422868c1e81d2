package schirmwerk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#f00":            {R: 255, A: 1},
		"#ff0000":         {R: 255, A: 1},
		"#00ff0080":       {G: 255, A: 128.0 / 255},
		"rgb(1, 2, 3)":    {R: 1, G: 2, B: 3, A: 1},
		"rgba(1,2,3,0.5)": {R: 1, G: 2, B: 3, A: 0.5},
		"red":             {R: 255, A: 1},
		"Navy":            {B: 128, A: 1},
		"transparent":     {},
		"auto":            {Auto: true, A: 1},
	}
	for input, want := range cases {
		got, err := ParseColor(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseColorHSL(t *testing.T) {
	got, err := ParseColor("hsl(0, 100%, 50%)")
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(0), got.B)

	gray, err := ParseColor("hsl(120, 0%, 50%)")
	assert.NoError(t, err)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"", "#12345", "rgb(300,0,0)", "nonsense", "rgb(1,2)", "hsl(0,0,0,0)"} {
		_, err := ParseColor(input)
		assert.True(t, errors.Is(err, ErrInvalidColor), "input %q: %v", input, err)
	}
}

func TestColorBlend(t *testing.T) {
	base := NewColor(0, 0, 0)

	t.Run("Opaque replaces", func(t *testing.T) {
		assert.Equal(t, ColorWhite, base.Blend(ColorWhite))
	})

	t.Run("Transparent keeps", func(t *testing.T) {
		assert.Equal(t, base, base.Blend(Transparent))
	})

	t.Run("Half mixes", func(t *testing.T) {
		got := base.Blend(ColorWhite.WithAlpha(0.5))
		assert.Equal(t, uint8(128), got.R)
		assert.True(t, got.IsOpaque())
	})
}

func TestColorContrast(t *testing.T) {
	assert.Equal(t, ColorWhite, ColorBlack.ContrastText())
	assert.Equal(t, ColorBlack, ColorWhite.ContrastText())
	assert.Equal(t, ColorBlack, NewColor(255, 255, 0).ContrastText())

	ratio := ColorBlack.ContrastRatio(ColorWhite)
	assert.InDelta(t, 21, ratio, 0.1)
	assert.Equal(t, ratio, ColorWhite.ContrastRatio(ColorBlack))
}

func TestColorResolveAuto(t *testing.T) {
	resolved := ColorAuto.ResolveAuto(ColorBlack)
	assert.Equal(t, ColorWhite, resolved)
	fixed := NewColor(1, 2, 3)
	assert.Equal(t, fixed, fixed.ResolveAuto(ColorWhite))
}

func TestStyleCombine(t *testing.T) {
	red := NewColor(255, 0, 0)
	blue := NewColor(0, 0, 255)

	lower := Style{FG: &red, Bold: TriOn, Italic: TriOn}
	upper := Style{FG: &blue, Italic: TriOff, Underline: TriOn}
	combined := lower.Combine(upper)

	assert.Equal(t, blue, *combined.FG)
	assert.Equal(t, TriOn, combined.Bold, "unset upper field keeps lower value")
	assert.Equal(t, TriOff, combined.Italic, "explicit off overrides on")
	assert.Equal(t, TriOn, combined.Underline)
	assert.Nil(t, combined.BG)
}

func TestStyleCombineMeta(t *testing.T) {
	lower := Style{Meta: map[string]string{"@click": "one", "keep": "x"}}
	upper := Style{Meta: map[string]string{"@click": "two"}}
	combined := lower.Combine(upper)
	assert.Equal(t, "two", combined.Meta["@click"])
	assert.Equal(t, "x", combined.Meta["keep"])
}

func TestStyleResolveAuto(t *testing.T) {
	auto := ColorAuto
	style := Style{FG: &auto}
	resolved := style.ResolveAuto(ColorBlack)
	assert.Equal(t, ColorWhite, *resolved.FG)
}
