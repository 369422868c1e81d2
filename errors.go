package schirmwerk

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable failure modes of the rendering core.
// User code errors are converted to diagnostics at the dispatch boundary;
// only driver failures terminate the application.
var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidStyle is returned for unknown tokens in style markup.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrMarkup is returned for malformed content markup, including
	// unterminated tags and excessive nesting.
	ErrMarkup = errors.New("markup error")

	// ErrActionNotFound is returned when action dispatch cannot resolve
	// a target method for an action name.
	ErrActionNotFound = errors.New("action not found")

	// ErrNoMatches is returned by query operations that require at least
	// one matching widget.
	ErrNoMatches = errors.New("no matching widgets")

	// ErrDriver wraps fatal terminal driver failures. This is the only
	// error class that terminates the application loop.
	ErrDriver = errors.New("driver error")
)

// CssError describes a stylesheet problem with its source position. Parse
// errors drop the offending rule; the rest of the stylesheet still loads.
type CssError struct {
	Path    string // Stylesheet path, empty for inline sources
	Line    int    // 1-based source line
	Col     int    // 1-based source column
	Message string
}

func (e *CssError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// CssVariableCycle reports a reference cycle between stylesheet variables.
// The offending variable resolves to "transparent" and loading continues.
type CssVariableCycle struct {
	Variable string   // The variable where the cycle was detected
	Chain    []string // The reference chain forming the cycle
}

func (e *CssVariableCycle) Error() string {
	return fmt.Sprintf("variable cycle detected at $%s (chain %v)", e.Variable, e.Chain)
}

// MountError reports that a widget failed to compose while mounting. The
// failing widget stays in the tree without children; its composed subtree
// is not mounted.
type MountError struct {
	Widget string // Type name of the failing widget
	Err    error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount of %s failed: %v", e.Widget, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}
