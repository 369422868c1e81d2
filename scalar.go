// Package scalar.go implements the dimension values of the style system.
// A scalar expresses a length in cells, fractions of the remaining space,
// percentages of the container or viewport, or automatic content sizing.

package schirmwerk

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ScalarUnit enumerates the units a scalar can carry.
type ScalarUnit int8

const (
	UnitCells    ScalarUnit = iota // absolute cells
	UnitFraction                   // share of the remaining space ("fr")
	UnitPercent                    // percent of the container on the same axis
	UnitWidth                      // percent of the container width ("w")
	UnitHeight                     // percent of the container height ("h")
	UnitViewW                      // percent of the viewport width ("vw")
	UnitViewH                      // percent of the viewport height ("vh")
	UnitAuto                       // size to content
)

// Scalar is a dimension value with a unit.
type Scalar struct {
	Value float64
	Unit  ScalarUnit
}

// Convenience scalar constructors.
func Cells(n int) Scalar        { return Scalar{Value: float64(n), Unit: UnitCells} }
func Fraction(n float64) Scalar { return Scalar{Value: n, Unit: UnitFraction} }
func Percent(p float64) Scalar  { return Scalar{Value: p, Unit: UnitPercent} }
func Auto() Scalar              { return Scalar{Unit: UnitAuto} }

// ParseScalar interprets a scalar literal: "12", "1fr", "50%", "30w",
// "40h", "25vw", "75vh" or "auto".
func ParseScalar(s string) (Scalar, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "auto" {
		return Auto(), nil
	}
	unit := UnitCells
	number := text
	for _, suffix := range []struct {
		text string
		unit ScalarUnit
	}{
		{"fr", UnitFraction}, {"%", UnitPercent}, {"vw", UnitViewW},
		{"vh", UnitViewH}, {"w", UnitWidth}, {"h", UnitHeight},
	} {
		if strings.HasSuffix(text, suffix.text) {
			unit = suffix.unit
			number = strings.TrimSpace(strings.TrimSuffix(text, suffix.text))
			break
		}
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Scalar{}, fmt.Errorf("invalid scalar %q", s)
	}
	return Scalar{Value: value, Unit: unit}, nil
}

// IsAuto reports whether the scalar sizes to content.
func (s Scalar) IsAuto() bool {
	return s.Unit == UnitAuto
}

// IsFraction reports whether the scalar takes a share of remaining space.
func (s Scalar) IsFraction() bool {
	return s.Unit == UnitFraction
}

// Resolve converts the scalar to cells against the container and viewport.
// The axis selects the container dimension for percent values. Fraction and
// auto scalars cannot be resolved in isolation; for them the second return
// value is false.
func (s Scalar) Resolve(container Size, viewport Size, horizontal bool) (int, bool) {
	switch s.Unit {
	case UnitCells:
		return int(math.Round(s.Value)), true
	case UnitPercent:
		if horizontal {
			return roundPercent(s.Value, container.Width), true
		}
		return roundPercent(s.Value, container.Height), true
	case UnitWidth:
		return roundPercent(s.Value, container.Width), true
	case UnitHeight:
		return roundPercent(s.Value, container.Height), true
	case UnitViewW:
		return roundPercent(s.Value, viewport.Width), true
	case UnitViewH:
		return roundPercent(s.Value, viewport.Height), true
	default:
		return 0, false
	}
}

func roundPercent(percent float64, total int) int {
	return int(math.Round(percent / 100 * float64(total)))
}

func (s Scalar) String() string {
	switch s.Unit {
	case UnitAuto:
		return "auto"
	case UnitFraction:
		return trimFloat(s.Value) + "fr"
	case UnitPercent:
		return trimFloat(s.Value) + "%"
	case UnitWidth:
		return trimFloat(s.Value) + "w"
	case UnitHeight:
		return trimFloat(s.Value) + "h"
	case UnitViewW:
		return trimFloat(s.Value) + "vw"
	case UnitViewH:
		return trimFloat(s.Value) + "vh"
	default:
		return trimFloat(s.Value)
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
