// Package style.go defines the visual text style record attached to
// segments. A Style layers over another style by combination: set fields of
// the upper style win, unset fields show through. Boolean attributes are
// tri-valued so that a style can explicitly switch an attribute off without
// clobbering unrelated layers.

package schirmwerk

import (
	"maps"
	"sort"
	"strings"
)

// Tristate is a boolean attribute that can also be unset. Unset attributes
// inherit from the style below them when styles are combined.
type Tristate int8

const (
	TriUnset Tristate = iota
	TriOn
	TriOff
)

// On reports whether the attribute is explicitly enabled.
func (t Tristate) On() bool {
	return t == TriOn
}

// Combine returns the other value if it is set, this value otherwise.
func (t Tristate) Combine(other Tristate) Tristate {
	if other != TriUnset {
		return other
	}
	return t
}

// Tri converts a plain boolean to the corresponding set tristate.
func Tri(on bool) Tristate {
	if on {
		return TriOn
	}
	return TriOff
}

// Style describes the visual presentation of a run of text: colors, text
// attributes, an optional hyperlink and free-form metadata. The zero value
// is the fully unset style, which renders with the ambient defaults.
type Style struct {
	FG        *Color
	BG        *Color
	Bold      Tristate
	Italic    Tristate
	Underline Tristate
	Strike    Tristate
	Reverse   Tristate
	Dim       Tristate
	Link      string
	Meta      map[string]string
}

// StyleWith is a convenience constructor for a foreground/background style.
// Nil pointers leave the corresponding color unset.
func StyleWith(fg, bg *Color) Style {
	return Style{FG: fg, BG: bg}
}

// IsZero reports whether no field of the style is set.
func (s Style) IsZero() bool {
	return s.FG == nil && s.BG == nil &&
		s.Bold == TriUnset && s.Italic == TriUnset && s.Underline == TriUnset &&
		s.Strike == TriUnset && s.Reverse == TriUnset && s.Dim == TriUnset &&
		s.Link == "" && len(s.Meta) == 0
}

// Combine layers the other style over this one. Set fields of the other
// style win; unset fields keep this style's values. Metadata maps merge,
// with the other style's keys taking precedence.
func (s Style) Combine(other Style) Style {
	result := s
	if other.FG != nil {
		result.FG = other.FG
	}
	if other.BG != nil {
		result.BG = other.BG
	}
	result.Bold = s.Bold.Combine(other.Bold)
	result.Italic = s.Italic.Combine(other.Italic)
	result.Underline = s.Underline.Combine(other.Underline)
	result.Strike = s.Strike.Combine(other.Strike)
	result.Reverse = s.Reverse.Combine(other.Reverse)
	result.Dim = s.Dim.Combine(other.Dim)
	if other.Link != "" {
		result.Link = other.Link
	}
	if len(other.Meta) > 0 {
		merged := make(map[string]string, len(s.Meta)+len(other.Meta))
		maps.Copy(merged, s.Meta)
		maps.Copy(merged, other.Meta)
		result.Meta = merged
	}
	return result
}

// ResolveAuto replaces an auto foreground color by the black/white choice
// with better contrast against the given background.
func (s Style) ResolveAuto(background Color) Style {
	if s.FG != nil && s.FG.Auto {
		resolved := s.FG.ResolveAuto(background)
		s.FG = &resolved
	}
	return s
}

// Equal reports whether two styles are observably identical.
func (s Style) Equal(other Style) bool {
	if !colorPtrEqual(s.FG, other.FG) || !colorPtrEqual(s.BG, other.BG) {
		return false
	}
	if s.Bold != other.Bold || s.Italic != other.Italic || s.Underline != other.Underline ||
		s.Strike != other.Strike || s.Reverse != other.Reverse || s.Dim != other.Dim {
		return false
	}
	if s.Link != other.Link {
		return false
	}
	return maps.Equal(s.Meta, other.Meta)
}

func colorPtrEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Markup returns the style's attribute tokens in the inline markup syntax,
// used when content is converted back to markup text.
func (s Style) Markup() string {
	var tokens []string
	if s.FG != nil {
		tokens = append(tokens, "fg="+s.FG.String())
	}
	if s.BG != nil {
		tokens = append(tokens, "bg="+s.BG.String())
	}
	for _, attr := range []struct {
		name  string
		value Tristate
	}{
		{"bold", s.Bold}, {"italic", s.Italic}, {"underline", s.Underline},
		{"strike", s.Strike}, {"reverse", s.Reverse}, {"dim", s.Dim},
	} {
		switch attr.value {
		case TriOn:
			tokens = append(tokens, attr.name)
		case TriOff:
			tokens = append(tokens, "not "+attr.name)
		}
	}
	if s.Link != "" {
		tokens = append(tokens, "link="+s.Link)
	}
	meta := make([]string, 0, len(s.Meta))
	for key, value := range s.Meta {
		meta = append(meta, key+"="+value)
	}
	sort.Strings(meta)
	tokens = append(tokens, meta...)
	return strings.Join(tokens, ",")
}
