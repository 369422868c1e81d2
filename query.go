// Package query.go provides CSS-selector queries over the widget tree.
// Queries return explicit results instead of raising on empty matches.

package schirmwerk

import "fmt"

// Query returns all widgets in the subtree matching the selector list, in
// depth-first tree order. The root itself is included when it matches.
func Query(root Widget, selector string) ([]Widget, error) {
	selectors, err := parseSelectorList(trimEOF(tokenizeCSS(selector)))
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", selector, err)
	}
	var result []Widget
	Traverse(root, func(w Widget) {
		for _, sel := range selectors {
			if sel.Matches(w) {
				result = append(result, w)
				return
			}
		}
	})
	return result, nil
}

// QueryOne returns the first widget matching the selector. The boolean is
// false when nothing matches; the error reports invalid selectors only.
func QueryOne(root Widget, selector string) (Widget, bool, error) {
	matches, err := Query(root, selector)
	if err != nil {
		return nil, false, err
	}
	if len(matches) == 0 {
		return nil, false, nil
	}
	return matches[0], true, nil
}

// MustQueryOne returns the single required match or ErrNoMatches.
func MustQueryOne(root Widget, selector string) (Widget, error) {
	w, ok, err := QueryOne(root, selector)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, selector)
	}
	return w, nil
}

func trimEOF(tokens []Token) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenEOF {
		return tokens[:n-1]
	}
	return tokens
}
