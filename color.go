// Package color.go implements the color model of the rendering core.
//
// Colors are RGB with a straight (non-premultiplied) alpha component. The
// special "auto" color defers resolution to render time, where it picks
// black or white depending on which reads better against the effective
// background.

package schirmwerk

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with straight alpha. The zero value is fully
// transparent black. Auto colors carry no channel information; they resolve
// against a background via ResolveAuto.
type Color struct {
	R, G, B uint8
	A       float64
	Auto    bool
}

// Predefined colors used throughout the core.
var (
	Transparent = Color{}
	ColorBlack  = Color{A: 1}
	ColorWhite  = Color{R: 255, G: 255, B: 255, A: 1}
	ColorAuto   = Color{Auto: true, A: 1}
)

// NewColor creates an opaque color from 8-bit channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseColor interprets a color string. Accepted forms are #RGB, #RRGGBB,
// #RRGGBBAA, rgb(r,g,b), rgba(r,g,b,a), hsl(h,s%,l%), the fixed named color
// table, "transparent" and "auto". Returns ErrInvalidColor when the string
// cannot be interpreted.
func ParseColor(s string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch text {
	case "":
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case "auto":
		return ColorAuto, nil
	case "transparent":
		return Transparent, nil
	}

	if named, ok := namedColors[text]; ok {
		return named, nil
	}

	if strings.HasPrefix(text, "#") {
		return parseHex(text)
	}

	if fn, args, ok := splitColorFunc(text); ok {
		switch fn {
		case "rgb", "rgba":
			return parseRGB(text, args)
		case "hsl":
			return parseHSL(text, args)
		}
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(text string) (Color, error) {
	digits := text[1:]
	var r, g, b uint64
	a := 1.0
	var err error
	switch len(digits) {
	case 3:
		if r, err = strconv.ParseUint(strings.Repeat(digits[0:1], 2), 16, 8); err != nil {
			break
		}
		if g, err = strconv.ParseUint(strings.Repeat(digits[1:2], 2), 16, 8); err != nil {
			break
		}
		b, err = strconv.ParseUint(strings.Repeat(digits[2:3], 2), 16, 8)
	case 6, 8:
		if r, err = strconv.ParseUint(digits[0:2], 16, 8); err != nil {
			break
		}
		if g, err = strconv.ParseUint(digits[2:4], 16, 8); err != nil {
			break
		}
		if b, err = strconv.ParseUint(digits[4:6], 16, 8); err != nil {
			break
		}
		if len(digits) == 8 {
			var alpha uint64
			if alpha, err = strconv.ParseUint(digits[6:8], 16, 8); err == nil {
				a = float64(alpha) / 255
			}
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: a}, nil
}

// splitColorFunc splits "fn(a, b, c)" into its name and arguments.
func splitColorFunc(text string) (string, []string, bool) {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(text[:open])
	inner := text[open+1 : len(text)-1]
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return name, args, true
}

func parseRGB(text string, args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	var channels [3]uint8
	for i := range 3 {
		value, err := strconv.Atoi(args[i])
		if err != nil || value < 0 || value > 255 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
		}
		channels[i] = uint8(value)
	}
	alpha := 1.0
	if len(args) == 4 {
		value, err := strconv.ParseFloat(args[3], 64)
		if err != nil || value < 0 || value > 1 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
		}
		alpha = value
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

func parseHSL(text string, args []string) (Color, error) {
	if len(args) != 3 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	h, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	s, err := parsePercent(args[1])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	l, err := parsePercent(args[2])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	rgb := colorful.Hsl(h, s, l).Clamped()
	return Color{
		R: uint8(math.Round(rgb.R * 255)),
		G: uint8(math.Round(rgb.G * 255)),
		B: uint8(math.Round(rgb.B * 255)),
		A: 1,
	}, nil
}

func parsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(s, "%")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 || value > 100 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return value / 100, nil
}

// IsTransparent reports whether the color contributes nothing when blended.
func (c Color) IsTransparent() bool {
	return c.A == 0 && !c.Auto
}

// IsOpaque reports whether the color fully covers what it is drawn over.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = math.Max(0, math.Min(1, a))
	return c
}

// MultiplyAlpha returns the color with its alpha scaled by the factor.
// Used to apply opacity and text-opacity during rendering.
func (c Color) MultiplyAlpha(factor float64) Color {
	return c.WithAlpha(c.A * factor)
}

// Blend composites the other color over this one using the straight-alpha
// "over" operator. The result is opaque if this color is opaque.
func (c Color) Blend(over Color) Color {
	if over.IsOpaque() {
		return over
	}
	if over.IsTransparent() {
		return c
	}
	a := over.A + c.A*(1-over.A)
	if a == 0 {
		return Transparent
	}
	mix := func(under, top uint8) uint8 {
		v := (float64(top)*over.A + float64(under)*c.A*(1-over.A)) / a
		return uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	return Color{R: mix(c.R, over.R), G: mix(c.G, over.G), B: mix(c.B, over.B), A: a}
}

// Tint blends the other color over this one, interpreting the other color's
// alpha as the tint strength, and keeps this color's alpha.
func (c Color) Tint(other Color) Color {
	blended := c.Blend(other)
	blended.A = c.A
	return blended
}

// Luminance returns the relative luminance of the color per WCAG 2.1.
func (c Color) Luminance() float64 {
	linear := func(channel uint8) float64 {
		v := float64(channel) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between the two colors,
// a value between 1 and 21.
func (c Color) ContrastRatio(other Color) float64 {
	l1 := c.Luminance()
	l2 := other.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastText returns black or white, whichever has the higher contrast
// ratio against this color used as a background.
func (c Color) ContrastText() Color {
	if c.ContrastRatio(ColorWhite) >= c.ContrastRatio(ColorBlack) {
		return ColorWhite
	}
	return ColorBlack
}

// ResolveAuto returns the color itself, or for auto colors the black/white
// choice with better contrast against the given background.
func (c Color) ResolveAuto(background Color) Color {
	if !c.Auto {
		return c
	}
	resolved := background.ContrastText()
	resolved.A = c.A
	return resolved
}

// Hex returns the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) Hex() string {
	if c.IsOpaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(math.Round(c.A*255)))
}

func (c Color) String() string {
	if c.Auto {
		return "auto"
	}
	if c.IsTransparent() {
		return "transparent"
	}
	return c.Hex()
}
