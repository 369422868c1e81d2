// Package stylesheet.go implements the stylesheet: parsing rule sets,
// storing variables and running the cascade that produces a widget's
// computed styles.
//
// Parsing is resilient: a malformed rule is dropped with a diagnostic and
// the rest of the sheet still loads. Unknown properties warn but do not
// fail, so stylesheets written for newer cores degrade gracefully.

package schirmwerk

import (
	"fmt"
	"sort"
	"strings"
)

// Declaration is one "property: value" entry of a rule.
type Declaration struct {
	Property  string
	Value     []Token
	Important bool
	Line      int
	Col       int
	sequence  int // global source order across all parsed sources
}

// Rule pairs a selector list with its declarations.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Stylesheet is an ordered rule set plus the variables visible to it.
type Stylesheet struct {
	Rules     []Rule
	Variables map[string][]Token

	// Errors holds the per-rule parse failures; the offending rules were
	// dropped. Warnings holds diagnostics that did not drop anything,
	// such as unknown properties and variable cycles.
	Errors   []*CssError
	Warnings []string

	sequence int
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{Variables: map[string][]Token{}}
}

// ParseStylesheet parses a stylesheet source. The returned stylesheet
// contains every rule that parsed; per-rule failures are collected in
// Errors.
func ParseStylesheet(source string) *Stylesheet {
	ss := NewStylesheet()
	ss.AddSource(source, "")
	return ss
}

// AddSource parses an additional source into the stylesheet. The path is
// used in diagnostics only.
func (ss *Stylesheet) AddSource(source, path string) {
	tokens := tokenizeCSS(source)
	i := 0

	fail := func(token Token, format string, args ...any) {
		ss.Errors = append(ss.Errors, &CssError{
			Path:    path,
			Line:    token.Line,
			Col:     token.Col,
			Message: fmt.Sprintf(format, args...),
		})
	}

	// skipTo advances past the next token of the given kind.
	skipTo := func(kinds ...TokenKind) {
		for i < len(tokens) && tokens[i].Kind != TokenEOF {
			for _, kind := range kinds {
				if tokens[i].Kind == kind {
					i++
					return
				}
			}
			i++
		}
	}

	for i < len(tokens) && tokens[i].Kind != TokenEOF {
		token := tokens[i]

		// Top-level variable definition: $name: value;
		if token.Kind == TokenVariable {
			name := token.Text
			i++
			if i >= len(tokens) || tokens[i].Kind != TokenColon {
				fail(token, "expected ':' after $%s", name)
				skipTo(TokenSemicolon)
				continue
			}
			i++
			value := ss.collectValue(tokens, &i)
			ss.Variables[name] = value
			if i < len(tokens) && tokens[i].Kind == TokenSemicolon {
				i++
			}
			continue
		}

		// Rule: selector list { declarations }
		preludeStart := i
		for i < len(tokens) && tokens[i].Kind != TokenLBrace && tokens[i].Kind != TokenEOF {
			if tokens[i].Kind == TokenSemicolon {
				break
			}
			i++
		}
		if i >= len(tokens) || tokens[i].Kind != TokenLBrace {
			fail(token, "expected '{' after selector")
			skipTo(TokenSemicolon, TokenRBrace)
			continue
		}
		selectors, err := parseSelectorList(tokens[preludeStart:i])
		i++ // consume '{'
		if err != nil {
			fail(token, "bad selector: %v", err)
			skipTo(TokenRBrace)
			continue
		}

		rule := Rule{Selectors: selectors}
		malformed := false
		for i < len(tokens) && tokens[i].Kind != TokenRBrace && tokens[i].Kind != TokenEOF {
			declToken := tokens[i]
			switch declToken.Kind {
			case TokenSemicolon:
				i++
			case TokenVariable:
				// Nested variable definitions share the sheet scope;
				// the last definition wins.
				name := declToken.Text
				i++
				if i < len(tokens) && tokens[i].Kind == TokenColon {
					i++
					ss.Variables[name] = ss.collectValue(tokens, &i)
					if i < len(tokens) && tokens[i].Kind == TokenSemicolon {
						i++
					}
				} else {
					fail(declToken, "expected ':' after $%s", name)
					malformed = true
					skipTo(TokenSemicolon, TokenRBrace)
				}
			case TokenIdent:
				property := declToken.Text
				i++
				if i >= len(tokens) || tokens[i].Kind != TokenColon {
					fail(declToken, "expected ':' after property %q", property)
					malformed = true
					skipTo(TokenSemicolon)
					continue
				}
				i++
				value := ss.collectValue(tokens, &i)
				if bad, ok := invalidValueToken(value); ok {
					fail(declToken, "unexpected %q in value of %q", bad.Text, property)
					malformed = true
					continue
				}
				important := false
				if n := len(value); n > 0 && value[n-1].Kind == TokenImportant {
					important = true
					value = value[:n-1]
				}
				ss.sequence++
				rule.Declarations = append(rule.Declarations, Declaration{
					Property:  property,
					Value:     value,
					Important: important,
					Line:      declToken.Line,
					Col:       declToken.Col,
					sequence:  ss.sequence,
				})
				if i < len(tokens) && tokens[i].Kind == TokenSemicolon {
					i++
				}
			default:
				fail(declToken, "unexpected %q in rule body", declToken.Text)
				malformed = true
				skipTo(TokenSemicolon, TokenRBrace)
				if i > 0 && tokens[i-1].Kind == TokenRBrace {
					i-- // keep the brace for the outer loop
				}
			}
		}
		if i < len(tokens) && tokens[i].Kind == TokenRBrace {
			i++
		}
		if !malformed {
			ss.Rules = append(ss.Rules, rule)
		}
	}
}

// invalidValueToken reports a token that may not appear inside a
// declaration value.
func invalidValueToken(value []Token) (Token, bool) {
	for _, token := range value {
		switch token.Kind {
		case TokenColon, TokenInvalid, TokenLBrace:
			return token, true
		}
	}
	return Token{}, false
}

// collectValue gathers the value tokens of a declaration up to the next
// semicolon or closing brace.
func (ss *Stylesheet) collectValue(tokens []Token, i *int) []Token {
	var value []Token
	for *i < len(tokens) {
		switch tokens[*i].Kind {
		case TokenSemicolon, TokenRBrace, TokenEOF:
			return value
		}
		value = append(value, tokens[*i])
		*i = *i + 1
	}
	return value
}

// Merge appends the other stylesheet's rules and variables; the other
// sheet's definitions win on variable name clashes and sort after this
// sheet's rules in the cascade.
func (ss *Stylesheet) Merge(other *Stylesheet) {
	base := ss.sequence
	for _, rule := range other.Rules {
		merged := rule
		merged.Declarations = make([]Declaration, len(rule.Declarations))
		for i, decl := range rule.Declarations {
			decl.sequence += base
			merged.Declarations[i] = decl
		}
		ss.Rules = append(ss.Rules, merged)
	}
	ss.sequence += other.sequence
	for name, value := range other.Variables {
		ss.Variables[name] = value
	}
	ss.Errors = append(ss.Errors, other.Errors...)
	ss.Warnings = append(ss.Warnings, other.Warnings...)
}

// matchedDeclaration is a declaration that matched a widget, with its
// cascade sort key.
type matchedDeclaration struct {
	specificity Specificity
	declaration Declaration
}

// ComputeStyles runs the cascade for one widget: defaults, inheritance
// from the parent's computed styles, then every matching declaration in
// (importance, specificity, source order) order, last wins.
func (ss *Stylesheet) ComputeStyles(w Widget, parent *Styles) Styles {
	styles := DefaultStyles()
	styles.InheritFrom(parent)

	var plain, important []matchedDeclaration
	for _, rule := range ss.Rules {
		// The most specific matching selector determines the rule's
		// position in the cascade.
		var best Specificity
		matched := false
		for _, selector := range rule.Selectors {
			if !selector.Matches(w) {
				continue
			}
			spec := selector.Specificity()
			if !matched || best.Less(spec) {
				best = spec
			}
			matched = true
		}
		if !matched {
			continue
		}
		for _, decl := range rule.Declarations {
			entry := matchedDeclaration{specificity: best, declaration: decl}
			if decl.Important {
				important = append(important, entry)
			} else {
				plain = append(plain, entry)
			}
		}
	}

	order := func(list []matchedDeclaration) {
		sort.SliceStable(list, func(a, b int) bool {
			if list[a].specificity != list[b].specificity {
				return list[a].specificity.Less(list[b].specificity)
			}
			return list[a].declaration.sequence < list[b].declaration.sequence
		})
	}
	order(plain)
	order(important)

	for _, matched := range append(plain, important...) {
		ss.applyDeclaration(&styles, matched.declaration)
	}
	return styles
}

// applyDeclaration resolves variables in the declaration value and applies
// the property. Failures become warnings; the previous value stays.
func (ss *Stylesheet) applyDeclaration(styles *Styles, decl Declaration) {
	value, err := ss.expandVariables(decl.Value, nil)
	if err != nil {
		ss.Warnings = append(ss.Warnings, err.Error())
	}
	if err := applyProperty(styles, decl.Property, value); err != nil {
		ss.Warnings = append(ss.Warnings,
			fmt.Sprintf("%d:%d: %v", decl.Line, decl.Col, err))
	}
}

// expandVariables substitutes $name references. Reference cycles resolve
// the offending variable to "transparent" and report CssVariableCycle.
func (ss *Stylesheet) expandVariables(tokens []Token, visiting []string) ([]Token, error) {
	var result []Token
	var firstErr error
	for _, token := range tokens {
		if token.Kind != TokenVariable {
			result = append(result, token)
			continue
		}
		name := token.Text
		if contains(visiting, name) {
			if firstErr == nil {
				firstErr = &CssVariableCycle{Variable: name, Chain: append(append([]string{}, visiting...), name)}
			}
			result = append(result, Token{Kind: TokenIdent, Text: "transparent", Line: token.Line, Col: token.Col, Space: token.Space})
			continue
		}
		value, ok := ss.Variables[name]
		if !ok {
			result = append(result, Token{Kind: TokenIdent, Text: "transparent", Line: token.Line, Col: token.Col, Space: token.Space})
			if firstErr == nil {
				firstErr = fmt.Errorf("undefined variable $%s", name)
			}
			continue
		}
		expanded, err := ss.expandVariables(value, append(visiting, name))
		if err != nil && firstErr == nil {
			firstErr = err
		}
		// The reference site's spacing carries over to the first token.
		for i, t := range expanded {
			if i == 0 {
				t.Space = token.Space
			}
			result = append(result, t)
		}
	}
	return result, firstErr
}

func contains(list []string, item string) bool {
	for _, entry := range list {
		if entry == item {
			return true
		}
	}
	return false
}

// tokenFields splits value tokens into whitespace-separated fields,
// keeping function calls like rgb(...) together regardless of the spaces
// inside their parentheses.
func tokenFields(tokens []Token) []string {
	var fields []string
	var current strings.Builder
	depth := 0
	for i, token := range tokens {
		if i > 0 && token.Space && depth == 0 && current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
		switch token.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			if depth > 0 {
				depth--
			}
		}
		current.WriteString(token.Text)
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields
}
