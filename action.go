// Package action.go implements action expressions: the small language key
// bindings and inline links use to invoke behavior on widgets. An action
// is "[namespace.]name(args)" where the arguments are restricted literals:
// numbers, quoted strings, booleans, none, lists and maps.

package schirmwerk

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ActionHandler runs a named action with its parsed arguments.
type ActionHandler func(args ...any) error

// Action is a parsed action expression.
type Action struct {
	Namespace string // "", "app", "screen", "focused" or a widget id
	Name      string
	Args      []any
}

// ParseAction parses an action expression. Accepted forms: "name",
// "name()", "name(1, 'x')", "app.quit", "focused.submit(true)".
func ParseAction(expr string) (Action, error) {
	text := strings.TrimSpace(expr)
	if text == "" {
		return Action{}, fmt.Errorf("empty action")
	}

	var argsText string
	if open := strings.IndexByte(text, '('); open >= 0 {
		if !strings.HasSuffix(text, ")") {
			return Action{}, fmt.Errorf("unterminated argument list in %q", expr)
		}
		argsText = text[open+1 : len(text)-1]
		text = text[:open]
	}

	action := Action{Name: text}
	if dot := strings.LastIndexByte(text, '.'); dot >= 0 {
		action.Namespace = text[:dot]
		action.Name = text[dot+1:]
	}
	if action.Name == "" || !validActionName(action.Name) {
		return Action{}, fmt.Errorf("invalid action name in %q", expr)
	}

	if strings.TrimSpace(argsText) != "" {
		args, err := parseActionArgs(argsText)
		if err != nil {
			return Action{}, fmt.Errorf("bad arguments in %q: %w", expr, err)
		}
		action.Args = args
	}
	return action, nil
}

func validActionName(name string) bool {
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// parseActionArgs parses a comma-separated list of literals.
func parseActionArgs(text string) ([]any, error) {
	p := &literalParser{src: text}
	args, err := p.parseList(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("trailing input at %d", p.pos)
	}
	return args, nil
}

// literalParser parses restricted literals: numbers, quoted strings,
// true/false, none, [lists] and {maps}.
type literalParser struct {
	src string
	pos int
}

func (p *literalParser) parseList(terminator byte) ([]any, error) {
	var items []any
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return items, nil
		}
		if terminator != 0 && p.src[p.pos] == terminator {
			return items, nil
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, value)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		return items, nil
	}
}

func (p *literalParser) parseValue() (any, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	ch := p.src[p.pos]
	switch {
	case ch == '\'' || ch == '"':
		return p.parseString(ch)
	case ch == '[':
		p.pos++
		items, err := p.parseList(']')
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return items, nil
	case ch == '{':
		return p.parseMap()
	case ch == '-' || ch == '+' || (ch >= '0' && ch <= '9'):
		return p.parseNumber()
	default:
		return p.parseWord()
	}
}

func (p *literalParser) parseString(quote byte) (string, error) {
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		if ch == quote {
			p.pos++
			return b.String(), nil
		}
		if ch == '\\' && p.pos+1 < len(p.src) {
			p.pos++
			ch = p.src[p.pos]
		}
		b.WriteByte(ch)
		p.pos++
	}
	return "", fmt.Errorf("unterminated string")
}

func (p *literalParser) parseNumber() (any, error) {
	start := p.pos
	if p.src[p.pos] == '-' || p.src[p.pos] == '+' {
		p.pos++
	}
	seenDot, seenExp := false, false
scan:
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch {
		case ch >= '0' && ch <= '9':
		case ch == '.' && !seenDot && !seenExp:
			seenDot = true
		case (ch == 'e' || ch == 'E') && !seenExp:
			seenExp = true
		case (ch == '-' || ch == '+') && seenExp &&
			(p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E'):
		default:
			break scan
		}
		p.pos++
	}
	isFloat := seenDot || seenExp
	text := p.src[start:p.pos]
	if isFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", text)
		}
		return value, nil
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("bad number %q", text)
	}
	return value, nil
}

func (p *literalParser) parseWord() (any, error) {
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		p.pos++
	}
	word := p.src[start:p.pos]
	switch strings.ToLower(word) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "none", "null":
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected literal %q", word)
}

func (p *literalParser) parseMap() (map[string]any, error) {
	p.pos++ // consume '{'
	result := map[string]any{}
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '}' {
			p.pos++
			return result, nil
		}
		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("map keys must be strings")
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		result[name] = value
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
		}
	}
}

func (p *literalParser) expect(ch byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ch {
		return fmt.Errorf("expected %q", string(ch))
	}
	p.pos++
	return nil
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}
