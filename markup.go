// Package markup.go implements the restricted inline markup grammar for
// styled content:
//
//	content  := (escape | tag_open | tag_close | text)*
//	escape   := "\" "["
//	tag_open := "[" style_list "]"
//	tag_close:= "[/" (style_list)? "]"
//	style_list := style ("," style)*
//	style    := ident ("=" value)?
//
// "[/]" closes the most recently opened tag, "[/x]" the most recent tag
// opened as "[x]". A backslash before "[" yields a literal bracket. Style
// idents cover the text attributes (with single-letter aliases), fg/bg/link
// assignments, "@" action tags and bare color names (foreground).

package schirmwerk

import (
	"fmt"
	"strings"
	"unicode"
)

// maxMarkupDepth bounds tag nesting to guard against runaway input.
const maxMarkupDepth = 64

type openTag struct {
	tokens string // raw style list, used to match named close tags
	style  Style
	start  int // offset into the plain text where the tag opened
}

// ParseMarkup parses inline markup into content. Variables referenced as
// $name are substituted from the given map; unknown variables are kept
// verbatim. Unterminated tags, unknown style tokens and nesting beyond the
// supported depth fail with ErrMarkup.
func ParseMarkup(markup string, variables map[string]string) (Content, error) {
	var plain strings.Builder
	var spans []Span
	var stack []openTag

	source := markup
	i := 0
	for i < len(source) {
		ch := source[i]
		switch {
		case ch == '\\' && i+1 < len(source) && source[i+1] == '[':
			plain.WriteByte('[')
			i += 2

		case ch == '[':
			end := strings.IndexByte(source[i:], ']')
			if end < 0 {
				return Content{}, fmt.Errorf("%w: unterminated tag at offset %d", ErrMarkup, i)
			}
			body := source[i+1 : i+end]
			i += end + 1
			if strings.HasPrefix(body, "/") {
				name := strings.TrimSpace(body[1:])
				tag, rest, ok := popTag(stack, name)
				if !ok {
					return Content{}, fmt.Errorf("%w: closing tag [/%s] without opening tag", ErrMarkup, name)
				}
				stack = rest
				if tag.start < plain.Len() {
					spans = append(spans, Span{Start: tag.start, End: plain.Len(), Style: tag.style})
				}
				continue
			}
			if len(stack) >= maxMarkupDepth {
				return Content{}, fmt.Errorf("%w: tag nesting deeper than %d", ErrMarkup, maxMarkupDepth)
			}
			style, err := ParseStyleTokens(body)
			if err != nil {
				return Content{}, fmt.Errorf("%w: %v", ErrMarkup, err)
			}
			stack = append(stack, openTag{tokens: strings.TrimSpace(body), style: style, start: plain.Len()})

		case ch == '$':
			name, width := scanVariable(source[i:])
			if name != "" {
				if value, ok := variables[name]; ok {
					plain.WriteString(value)
					i += width
					continue
				}
			}
			plain.WriteByte('$')
			i++

		default:
			plain.WriteByte(ch)
			i++
		}
	}

	if len(stack) > 0 {
		return Content{}, fmt.Errorf("%w: unterminated tag [%s]", ErrMarkup, stack[len(stack)-1].tokens)
	}

	return Content{text: plain.String(), spans: spans}, nil
}

// popTag removes the matching open tag from the stack. An empty name pops
// the top; a named close pops the most recent tag with that style list.
func popTag(stack []openTag, name string) (openTag, []openTag, bool) {
	if len(stack) == 0 {
		return openTag{}, stack, false
	}
	if name == "" {
		return stack[len(stack)-1], stack[:len(stack)-1], true
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].tokens == name {
			rest := make([]openTag, 0, len(stack)-1)
			rest = append(rest, stack[:i]...)
			rest = append(rest, stack[i+1:]...)
			return stack[i], rest, true
		}
	}
	return openTag{}, stack, false
}

// scanVariable reads a $name reference and returns the name and the number
// of bytes consumed including the dollar sign.
func scanVariable(s string) (string, int) {
	i := 1
	for i < len(s) {
		ch := rune(s[i])
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' && ch != '-' {
			break
		}
		i++
	}
	if i == 1 {
		return "", 0
	}
	return s[1:i], i
}

// ParseStyleTokens interprets a comma-separated style list from a markup
// tag. Unknown tokens fail with ErrInvalidStyle.
func ParseStyleTokens(list string) (Style, error) {
	var style Style
	for token := range strings.SplitSeq(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if err := applyStyleToken(&style, token); err != nil {
			return Style{}, err
		}
	}
	return style, nil
}

func applyStyleToken(style *Style, token string) error {
	negate := false
	if rest, ok := strings.CutPrefix(token, "not "); ok {
		negate = true
		token = strings.TrimSpace(rest)
	}
	value := Tri(!negate)

	name, assigned, hasValue := strings.Cut(token, "=")
	name = strings.TrimSpace(name)
	assigned = strings.TrimSpace(assigned)

	if strings.HasPrefix(name, "@") {
		if !hasValue {
			return fmt.Errorf("%w: action token %q needs a value", ErrInvalidStyle, token)
		}
		if style.Meta == nil {
			style.Meta = map[string]string{}
		}
		style.Meta[name] = assigned
		return nil
	}

	switch name {
	case "bold", "b":
		style.Bold = value
	case "italic", "i":
		style.Italic = value
	case "underline", "u":
		style.Underline = value
	case "strike", "s":
		style.Strike = value
	case "reverse", "r":
		style.Reverse = value
	case "dim", "d":
		style.Dim = value
	case "fg", "color":
		color, err := ParseColor(assigned)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidStyle, token)
		}
		style.FG = &color
	case "bg", "background":
		color, err := ParseColor(assigned)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidStyle, token)
		}
		style.BG = &color
	case "link":
		style.Link = assigned
	default:
		if hasValue {
			return fmt.Errorf("%w: %q", ErrInvalidStyle, token)
		}
		color, err := ParseColor(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidStyle, token)
		}
		style.FG = &color
	}
	return nil
}
