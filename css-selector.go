// Package css-selector.go implements the selector model of the style
// engine: compound selectors joined by combinators, specificity and
// matching against the widget tree.

package schirmwerk

import (
	"fmt"
	"strings"
)

// Combinator joins two compound selectors.
type Combinator int8

const (
	Descendant Combinator = iota
	Child
	Adjacent
	Sibling
)

// AttributeSelector matches the presence or value of a widget attribute.
// The core recognizes the "id" and "name" attributes.
type AttributeSelector struct {
	Name     string
	Value    string
	HasValue bool
}

// CompoundSelector matches a single widget by type, id, classes,
// pseudo-classes and attributes.
type CompoundSelector struct {
	Type       string
	ID         string
	Universal  bool
	Classes    []string
	Pseudos    []string
	Attributes []AttributeSelector
}

// IsEmpty reports whether the compound has no constraints at all.
func (c CompoundSelector) IsEmpty() bool {
	return c.Type == "" && c.ID == "" && !c.Universal &&
		len(c.Classes) == 0 && len(c.Pseudos) == 0 && len(c.Attributes) == 0
}

// Selector is a chain of compound selectors joined by combinators. The
// combinator at index i joins compound i and i+1.
type Selector struct {
	Compounds   []CompoundSelector
	Combinators []Combinator
}

// Specificity orders selectors: (ids, classes+pseudos+attributes, types).
// Compared lexicographically; the important flag and source order are
// handled by the cascade itself.
type Specificity [3]int

// Less reports whether this specificity sorts before the other.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

// Specificity computes the selector's specificity.
func (sel Selector) Specificity() Specificity {
	var spec Specificity
	for _, compound := range sel.Compounds {
		if compound.ID != "" {
			spec[0]++
		}
		spec[1] += len(compound.Classes) + len(compound.Pseudos) + len(compound.Attributes)
		if compound.Type != "" {
			spec[2]++
		}
	}
	return spec
}

func (sel Selector) String() string {
	var b strings.Builder
	for i, compound := range sel.Compounds {
		if i > 0 {
			switch sel.Combinators[i-1] {
			case Child:
				b.WriteString(" > ")
			case Adjacent:
				b.WriteString(" + ")
			case Sibling:
				b.WriteString(" ~ ")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString(compound.String())
	}
	return b.String()
}

func (c CompoundSelector) String() string {
	var b strings.Builder
	if c.Universal {
		b.WriteString("*")
	}
	b.WriteString(c.Type)
	if c.ID != "" {
		b.WriteString("#" + c.ID)
	}
	for _, class := range c.Classes {
		b.WriteString("." + class)
	}
	for _, pseudo := range c.Pseudos {
		b.WriteString(":" + pseudo)
	}
	for _, attr := range c.Attributes {
		if attr.HasValue {
			fmt.Fprintf(&b, "[%s=%s]", attr.Name, attr.Value)
		} else {
			fmt.Fprintf(&b, "[%s]", attr.Name)
		}
	}
	return b.String()
}

// Matches reports whether the selector matches the widget, walking
// combinators from the rightmost compound towards the tree root.
func (sel Selector) Matches(w Widget) bool {
	if len(sel.Compounds) == 0 {
		return false
	}
	return matchChain(sel.Compounds, sel.Combinators, w)
}

func matchChain(compounds []CompoundSelector, combinators []Combinator, w Widget) bool {
	last := len(compounds) - 1
	if !matchCompound(compounds[last], w) {
		return false
	}
	if last == 0 {
		return true
	}
	head := compounds[:last]
	joins := combinators[:last-1]
	switch combinators[last-1] {
	case Child:
		parent := w.Parent()
		return parent != nil && matchChain(head, joins, parent)
	case Adjacent:
		previous := previousSibling(w)
		return previous != nil && matchChain(head, joins, previous)
	case Sibling:
		for _, sibling := range earlierSiblings(w) {
			if matchChain(head, joins, sibling) {
				return true
			}
		}
		return false
	default: // Descendant
		for parent := w.Parent(); parent != nil; parent = parent.Parent() {
			if matchChain(head, joins, parent) {
				return true
			}
		}
		return false
	}
}

func matchCompound(c CompoundSelector, w Widget) bool {
	if c.Type != "" && c.Type != w.TypeName() {
		return false
	}
	if c.ID != "" && c.ID != w.ID() {
		return false
	}
	for _, class := range c.Classes {
		if !w.HasClass(class) {
			return false
		}
	}
	for _, pseudo := range c.Pseudos {
		if !matchPseudo(pseudo, w) {
			return false
		}
	}
	for _, attr := range c.Attributes {
		if !matchAttribute(attr, w) {
			return false
		}
	}
	return true
}

// matchPseudo evaluates the pseudo-classes recognized by the core.
func matchPseudo(pseudo string, w Widget) bool {
	switch pseudo {
	case "hover":
		return w.PseudoState("hover")
	case "focus":
		return w.PseudoState("focus")
	case "focus-within":
		return w.PseudoState("focus-within")
	case "disabled":
		return w.PseudoState("disabled")
	case "enabled":
		return !w.PseudoState("disabled")
	case "first-child":
		index, count := siblingPosition(w)
		return count > 0 && index == 0
	case "last-child":
		index, count := siblingPosition(w)
		return count > 0 && index == count-1
	case "even":
		index, _ := siblingPosition(w)
		return index%2 == 0
	case "odd":
		index, _ := siblingPosition(w)
		return index%2 == 1
	case "light":
		return w.PseudoState("light")
	case "dark":
		return w.PseudoState("dark")
	case "inline":
		return w.PseudoState("inline")
	default:
		return false
	}
}

func matchAttribute(attr AttributeSelector, w Widget) bool {
	var value string
	switch attr.Name {
	case "id":
		value = w.ID()
	case "name":
		value = w.TypeName()
	default:
		return false
	}
	if !attr.HasValue {
		return value != ""
	}
	return value == attr.Value
}

func siblingPosition(w Widget) (int, int) {
	parent := w.Parent()
	if parent == nil {
		return 0, 1
	}
	siblings := parent.Children()
	for i, sibling := range siblings {
		if sibling == w {
			return i, len(siblings)
		}
	}
	return 0, len(siblings)
}

func previousSibling(w Widget) Widget {
	parent := w.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.Children()
	for i, sibling := range siblings {
		if sibling == w {
			if i == 0 {
				return nil
			}
			return siblings[i-1]
		}
	}
	return nil
}

func earlierSiblings(w Widget) []Widget {
	parent := w.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.Children()
	for i, sibling := range siblings {
		if sibling == w {
			return siblings[:i]
		}
	}
	return nil
}

// parseSelectorList parses a comma-separated selector list from the tokens
// of a rule prelude.
func parseSelectorList(tokens []Token) ([]Selector, error) {
	var selectors []Selector
	start := 0
	for i := 0; i <= len(tokens); i++ {
		if i == len(tokens) || tokens[i].Kind == TokenComma {
			selector, err := parseSelector(tokens[start:i])
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, selector)
			start = i + 1
		}
	}
	return selectors, nil
}

// parseSelector parses a single selector from its tokens.
func parseSelector(tokens []Token) (Selector, error) {
	var sel Selector
	var current CompoundSelector
	started := false

	flush := func() {
		sel.Compounds = append(sel.Compounds, current)
		current = CompoundSelector{}
		started = false
	}

	i := 0
	for i < len(tokens) {
		token := tokens[i]

		// An explicit combinator, or a whitespace-separated compound.
		if started {
			switch token.Kind {
			case TokenGreater:
				flush()
				sel.Combinators = append(sel.Combinators, Child)
				i++
				continue
			case TokenPlus:
				flush()
				sel.Combinators = append(sel.Combinators, Adjacent)
				i++
				continue
			case TokenTilde:
				flush()
				sel.Combinators = append(sel.Combinators, Sibling)
				i++
				continue
			}
			if token.Space {
				flush()
				sel.Combinators = append(sel.Combinators, Descendant)
				continue // reprocess the token as the start of a compound
			}
		}

		switch token.Kind {
		case TokenStar:
			current.Universal = true
			started = true
			i++
		case TokenIdent:
			if current.Type != "" {
				return Selector{}, fmt.Errorf("unexpected type %q", token.Text)
			}
			current.Type = token.Text
			started = true
			i++
		case TokenHash:
			current.ID = strings.TrimPrefix(token.Text, "#")
			started = true
			i++
		case TokenDot:
			if i+1 >= len(tokens) || tokens[i+1].Kind != TokenIdent || tokens[i+1].Space {
				return Selector{}, fmt.Errorf("expected class name after '.'")
			}
			current.Classes = append(current.Classes, tokens[i+1].Text)
			started = true
			i += 2
		case TokenColon:
			if i+1 >= len(tokens) || tokens[i+1].Kind != TokenIdent || tokens[i+1].Space {
				return Selector{}, fmt.Errorf("expected pseudo-class name after ':'")
			}
			current.Pseudos = append(current.Pseudos, tokens[i+1].Text)
			started = true
			i += 2
		case TokenLBracket:
			attr, consumed, err := parseAttribute(tokens[i:])
			if err != nil {
				return Selector{}, err
			}
			current.Attributes = append(current.Attributes, attr)
			started = true
			i += consumed
		default:
			return Selector{}, fmt.Errorf("unexpected token %q in selector", token.Text)
		}
	}

	if !started {
		return Selector{}, fmt.Errorf("empty selector")
	}
	flush()
	return sel, nil
}

func parseAttribute(tokens []Token) (AttributeSelector, int, error) {
	// tokens[0] is TokenLBracket.
	if len(tokens) < 3 || tokens[1].Kind != TokenIdent {
		return AttributeSelector{}, 0, fmt.Errorf("malformed attribute selector")
	}
	attr := AttributeSelector{Name: tokens[1].Text}
	if tokens[2].Kind == TokenRBracket {
		return attr, 3, nil
	}
	if len(tokens) >= 5 && tokens[2].Kind == TokenEquals && tokens[4].Kind == TokenRBracket {
		switch tokens[3].Kind {
		case TokenIdent, TokenString, TokenNumber:
			attr.Value = tokens[3].Text
			attr.HasValue = true
			return attr, 5, nil
		}
	}
	return AttributeSelector{}, 0, fmt.Errorf("malformed attribute selector")
}
